package smartstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	ApiBaseUrl = "https://api.commerce.naver.com/external"
)

type ClientOpts struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Token        string
}

// Client talks to the marketplace commerce API. It is the concrete
// implementation of all collaborator interfaces the engine consumes.
type Client struct {
	httpClient   *resty.Client
	baseURL      string
	clientID     string
	clientSecret string
	token        string
}

func NewClient(opts ClientOpts) *Client {
	c := Client{baseURL: ApiBaseUrl}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	c.clientID = opts.ClientID
	c.clientSecret = opts.ClientSecret
	c.token = opts.Token

	c.httpClient = resty.New().
		SetDebug(false).
		SetBaseURL(c.baseURL).
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		})

	return &c
}

func (c *Client) req(ctx context.Context, result any) *resty.Request {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	request := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.token).
		SetHeader("x-api-client-id", c.clientID).
		SetHeader("x-api-timestamp", timestamp).
		SetHeader("x-api-sign", CalculateRequestSignature(c.clientID, c.clientSecret, timestamp))

	if result != nil {
		request.SetResult(result)
	}

	return request
}

// FetchCategoryTree returns the full category tree.
func (c *Client) FetchCategoryTree(ctx context.Context) ([]CategoryNode, error) {
	result := &struct {
		Categories []CategoryNode `json:"categories"`
	}{}

	_, err := handleError(c.req(ctx, result).
		Get("/v1/categories"))

	return result.Categories, err
}

// FetchOriginAreas returns the origin area code table.
func (c *Client) FetchOriginAreas(ctx context.Context) ([]OriginArea, error) {
	result := &struct {
		Contents []OriginArea `json:"contents"`
	}{}

	_, err := handleError(c.req(ctx, result).
		Get("/v1/product-origin-areas"))

	return result.Contents, err
}

// HostImage uploads an image by its source URL and returns the hosted URL.
func (c *Client) HostImage(ctx context.Context, url string) (string, error) {
	result := &struct {
		Images []ProductImage `json:"images"`
	}{}

	_, err := handleError(c.req(ctx, result).
		SetBody(map[string]any{"imageUrls": []string{url}}).
		Post("/v1/product-images/upload"))
	if err != nil {
		return "", err
	}
	if len(result.Images) == 0 {
		return "", fmt.Errorf("image host returned no images for %s", url)
	}
	return result.Images[0].URL, nil
}

// SubmitListing registers a single-item listing.
func (c *Client) SubmitListing(ctx context.Context, payload *ListingPayload) (SubmitResponse, error) {
	result := &SubmitResponse{}

	_, err := handleError(c.req(ctx, result).
		SetBody(payload).
		Post("/v2/products"))

	return *result, err
}

// SubmitGroupListing registers a grouped listing.
func (c *Client) SubmitGroupListing(ctx context.Context, payload *GroupListingPayload) (SubmitResponse, error) {
	result := &SubmitResponse{}

	_, err := handleError(c.req(ctx, result).
		SetBody(payload).
		Post("/v2/group-products"))

	return *result, err
}

// handleError is a generic error handler for failing responses (>399 status
// code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return res, nil
}
