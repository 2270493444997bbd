package smartstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchCategoryTree(t *testing.T) {
	var req *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"categories":[{"id":"50000000","name":"패션의류","subCategories":[{"id":"50000830","name":"티셔츠","wholeCategoryName":"패션의류>여성의류>티셔츠","last":true}]}]}`))
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{
		BaseURL:      ts.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Token:        "token",
	})
	tree, err := client.FetchCategoryTree(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, []CategoryNode{
		{
			ID:   "50000000",
			Name: "패션의류",
			SubCategories: []CategoryNode{
				{
					ID:        "50000830",
					Name:      "티셔츠",
					WholeName: "패션의류>여성의류>티셔츠",
					Last:      true,
				},
			},
		},
	}, tree)
	assert.Equal(t, "/v1/categories", req.URL.Path)
	assert.Equal(t, "Bearer token", req.Header.Get("Authorization"))
	assert.Equal(t, "client-id", req.Header.Get("x-api-client-id"))
	assert.NotEmpty(t, req.Header.Get("x-api-timestamp"))
	assert.Equal(t,
		CalculateRequestSignature("client-id", "client-secret", req.Header.Get("x-api-timestamp")),
		req.Header.Get("x-api-sign"))
}

func TestFetchOriginAreas(t *testing.T) {
	var req *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"contents":[{"originAreaCode":"00","originAreaName":"국산"},{"originAreaCode":"0200036","originAreaName":"베트남"}]}`))
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	areas, err := client.FetchOriginAreas(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, []OriginArea{
		{Code: "00", Name: "국산"},
		{Code: "0200036", Name: "베트남"},
	}, areas)
	assert.Equal(t, "/v1/product-origin-areas", req.URL.Path)
}

func TestHostImage(t *testing.T) {
	var req *http.Request
	var body []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = r
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"images":[{"url":"https://shop-phinf.pstatic.net/20260101_1/tee.jpg"}]}`))
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	hosted, err := client.HostImage(context.Background(), "https://cdn.example.com/tee.jpg")
	assert.Nil(t, err)
	assert.Equal(t, "https://shop-phinf.pstatic.net/20260101_1/tee.jpg", hosted)

	assert.Equal(t, "/v1/product-images/upload", req.URL.Path)
	assert.JSONEq(t, `{"imageUrls":["https://cdn.example.com/tee.jpg"]}`, string(body))
}

func TestHostImageEmptyResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"images":[]}`))
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	_, err := client.HostImage(context.Background(), "https://cdn.example.com/tee.jpg")
	assert.ErrorContains(t, err, "no images")
}

func TestSubmitListing(t *testing.T) {
	var req *http.Request
	var got ListingPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = r
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"originProductNo":"8400123456","smartstoreChannelProductNo":"9100123456"}`))
	}))
	defer ts.Close()

	payload := &ListingPayload{
		OriginProduct: OriginProduct{
			StatusType:     SaleStatusSale,
			LeafCategoryID: "50000830",
			Name:           "베이직 티셔츠",
		},
	}

	client := NewClient(ClientOpts{BaseURL: ts.URL, Token: "token"})
	res, err := client.SubmitListing(context.Background(), payload)
	assert.Nil(t, err)
	assert.Equal(t, SubmitResponse{
		ProductNo:        "8400123456",
		ChannelProductNo: "9100123456",
	}, res)
	assert.Equal(t, "/v2/products", req.URL.Path)
	assert.Equal(t, "50000830", got.OriginProduct.LeafCategoryID)
}

func TestSubmitGroupListing(t *testing.T) {
	var req *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"originProductNo":"8400123457"}`))
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	res, err := client.SubmitGroupListing(context.Background(), &GroupListingPayload{GroupName: "티셔츠 모음"})
	assert.Nil(t, err)
	assert.Equal(t, "8400123457", res.ProductNo)
	assert.Equal(t, "/v2/group-products", req.URL.Path)
}

func TestClientErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	_, err := client.FetchCategoryTree(context.Background())
	assert.ErrorContains(t, err, "status: 401")
}
