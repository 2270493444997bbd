package smartstore

import "context"

// CategorySource supplies the full marketplace category tree. Fetch errors
// are not fatal: the index falls back to a snapshot or the seed table.
type CategorySource interface {
	FetchCategoryTree(ctx context.Context) ([]CategoryNode, error)
}

// OriginSource supplies the marketplace's origin area code table. Fetch
// errors leave the resolver in heuristic-only mode.
type OriginSource interface {
	FetchOriginAreas(ctx context.Context) ([]OriginArea, error)
}

// ImageHost uploads an image by URL and returns the marketplace-hosted URL.
// A hosting failure fails the whole assembly request.
type ImageHost interface {
	HostImage(ctx context.Context, url string) (string, error)
}

// Submitter sends an assembled payload to the marketplace.
type Submitter interface {
	SubmitListing(ctx context.Context, payload *ListingPayload) (SubmitResponse, error)
	SubmitGroupListing(ctx context.Context, payload *GroupListingPayload) (SubmitResponse, error)
}

// SnapshotStore persists the last successfully built category index so a
// later tree-fetch failure can degrade to recent data instead of the seed.
type SnapshotStore interface {
	SaveCategories(entries []CategoryEntry) error
	LoadCategories() ([]CategoryEntry, error)
}

// Ensure Client implements the collaborator interfaces
var (
	_ CategorySource = (*Client)(nil)
	_ OriginSource   = (*Client)(nil)
	_ ImageHost      = (*Client)(nil)
	_ Submitter      = (*Client)(nil)
)
