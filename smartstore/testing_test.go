package smartstore

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

// fakeCategorySource serves a fixed tree and counts fetches.
type fakeCategorySource struct {
	tree    []CategoryNode
	err     error
	fetches int32
}

func (f *fakeCategorySource) FetchCategoryTree(ctx context.Context) ([]CategoryNode, error) {
	atomic.AddInt32(&f.fetches, 1)
	return f.tree, f.err
}

func (f *fakeCategorySource) fetchCount() int {
	return int(atomic.LoadInt32(&f.fetches))
}

type fakeOriginSource struct {
	areas []OriginArea
	err   error
}

func (f *fakeOriginSource) FetchOriginAreas(ctx context.Context) ([]OriginArea, error) {
	return f.areas, f.err
}

// fakeImageHost prefixes URLs, or fails for URLs in failFor.
type fakeImageHost struct {
	failFor map[string]bool
}

func (f *fakeImageHost) HostImage(ctx context.Context, url string) (string, error) {
	if f.failFor[url] {
		return "", errors.Errorf("upload rejected: %s", url)
	}
	return "https://shop-phinf.example.com/" + url, nil
}

func testTree() []CategoryNode {
	return []CategoryNode{
		{
			ID: "50000000", Name: "패션의류",
			SubCategories: []CategoryNode{
				{
					ID: "50000001", Name: "여성의류",
					SubCategories: []CategoryNode{
						{ID: "50000830", Name: "티셔츠", Last: true, WholeName: "패션의류>여성의류>티셔츠"},
						{ID: "50000831", Name: "니트/스웨터", Last: true, WholeName: "패션의류>여성의류>니트/스웨터"},
					},
				},
			},
		},
		{
			ID: "50000003", Name: "디지털/가전",
			SubCategories: []CategoryNode{
				{ID: "50000204", Name: "모니터", Last: true},
				{ID: "50000209", Name: "USB 메모리", Last: true},
			},
		},
		{
			ID: "50000006", Name: "식품",
			SubCategories: []CategoryNode{
				{
					ID: "50006800", Name: "과자/베이커리",
					SubCategories: []CategoryNode{
						{ID: "50006843", Name: "과자", Last: true, WholeName: "식품>과자/베이커리>과자"},
					},
				},
				{
					ID: "50007000", Name: "수산물",
					SubCategories: []CategoryNode{
						{ID: "50007021", Name: "오징어", Last: true},
					},
				},
			},
		},
		{
			ID: "50001500", Name: "가구/인테리어",
			SubCategories: []CategoryNode{
				{ID: "50001534", Name: "의자", Last: true},
			},
		},
		{
			ID: "50004000", Name: "주방용품",
			SubCategories: []CategoryNode{
				{ID: "50004418", Name: "의자", Last: true},
			},
		},
	}
}

func builtTestIndex() *CategoryIndex {
	index := NewCategoryIndex(&fakeCategorySource{tree: testTree()}, nil)
	_ = index.EnsureBuilt(context.Background())
	return index
}
