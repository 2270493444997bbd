package smartstore

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/sync/singleflight"
)

const (
	// PathDelimiter is the canonical category path delimiter. Upstream data
	// drifts between "A > B" and "A>B", so both variants are registered as
	// index keys.
	PathDelimiter      = " > "
	pathDelimiterTight = ">"
)

// CategoryNode is one node of the marketplace category tree as returned by
// the categories endpoint.
type CategoryNode struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	WholeName     string         `json:"wholeCategoryName,omitempty"`
	Last          bool           `json:"last"`
	SubCategories []CategoryNode `json:"subCategories,omitempty"`
}

// CategoryEntry is one leaf of the flattened index.
type CategoryEntry struct {
	Path string
	ID   string
}

// SplitPath splits a category path on ">" and trims each segment. Empty
// segments are dropped.
func SplitPath(path string) []string {
	parts := strings.Split(path, pathDelimiterTight)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// JoinPath renders segments in the canonical " > " form.
func JoinPath(segments []string) string {
	return strings.Join(segments, PathDelimiter)
}

// CategoryIndex maps leaf category path strings to leaf category ids. It is
// process-scoped: built lazily on first use and kept until Invalidate.
type CategoryIndex struct {
	source CategorySource
	store  SnapshotStore

	mu       sync.RWMutex
	entries  *orderedmap.OrderedMap
	built    bool
	degraded bool

	group singleflight.Group
}

// NewCategoryIndex creates an unbuilt index. store may be nil, in which
// case a tree-fetch failure falls straight back to the built-in seed table.
func NewCategoryIndex(source CategorySource, store SnapshotStore) *CategoryIndex {
	return &CategoryIndex{
		source:  source,
		store:   store,
		entries: orderedmap.New(),
	}
}

// EnsureBuilt builds the index if it has not been built yet. Concurrent
// first callers share a single tree fetch. The returned error is always
// nil once the index holds any entries, including degraded seed data.
func (x *CategoryIndex) EnsureBuilt(ctx context.Context) error {
	x.mu.RLock()
	built := x.built
	x.mu.RUnlock()
	if built {
		return nil
	}

	_, err, _ := x.group.Do("build", func() (any, error) {
		return nil, x.build(ctx)
	})
	return err
}

func (x *CategoryIndex) build(ctx context.Context) error {
	x.mu.RLock()
	if x.built {
		x.mu.RUnlock()
		return nil
	}
	x.mu.RUnlock()

	entries := orderedmap.New()
	degraded := false

	tree, err := x.source.FetchCategoryTree(ctx)
	if err != nil || len(tree) == 0 {
		if err != nil {
			log.Warn().Err(err).Msg("category tree fetch failed, entering degraded mode")
		} else {
			log.Warn().Msg("category tree is empty, entering degraded mode")
		}
		degraded = true
		x.seedEntries(entries)
	} else {
		for i := range tree {
			registerLeafPaths(entries, &tree[i], nil)
		}
		log.Info().Int("leafPaths", entries.Len()).Msg("category index built")
		x.persistSnapshot(entries)
	}

	x.mu.Lock()
	x.entries = entries
	x.built = true
	x.degraded = degraded
	x.mu.Unlock()
	return nil
}

// seedEntries fills the index from the persisted snapshot if one exists,
// falling back to the built-in seed table.
func (x *CategoryIndex) seedEntries(entries *orderedmap.OrderedMap) {
	if x.store != nil {
		snapshot, err := x.store.LoadCategories()
		if err != nil {
			log.Warn().Err(err).Msg("failed to load category snapshot")
		} else if len(snapshot) > 0 {
			for _, e := range snapshot {
				registerPathVariants(entries, e.Path, e.ID)
			}
			log.Info().Int("leafPaths", entries.Len()).Msg("category index built from snapshot")
			return
		}
	}
	for _, e := range seedCategories {
		registerPathVariants(entries, e.Path, e.ID)
	}
	log.Info().Int("leafPaths", entries.Len()).Msg("category index built from seed table")
}

func (x *CategoryIndex) persistSnapshot(entries *orderedmap.OrderedMap) {
	if x.store == nil {
		return
	}
	// Persist only the canonical " > " keys; variants are re-derived on load.
	snapshot := make([]CategoryEntry, 0, entries.Len()/2)
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		path := pair.Key.(string)
		if strings.Contains(path, PathDelimiter) || !strings.Contains(path, pathDelimiterTight) {
			snapshot = append(snapshot, CategoryEntry{Path: path, ID: pair.Value.(string)})
		}
	}
	if err := x.store.SaveCategories(snapshot); err != nil {
		log.Warn().Err(err).Msg("failed to persist category snapshot")
	}
}

// registerLeafPaths walks the tree and registers every leaf. The node's
// whole-name field wins when present; otherwise the path is synthesized
// from ancestor names.
func registerLeafPaths(entries *orderedmap.OrderedMap, node *CategoryNode, ancestors []string) {
	names := append(ancestors, strings.TrimSpace(node.Name))

	if node.Last || len(node.SubCategories) == 0 {
		path := JoinPath(names)
		if whole := strings.TrimSpace(node.WholeName); whole != "" {
			path = JoinPath(SplitPath(whole))
		}
		registerPathVariants(entries, path, node.ID)
		return
	}

	for i := range node.SubCategories {
		registerLeafPaths(entries, &node.SubCategories[i], names)
	}
}

// registerPathVariants registers both delimiter forms of path as keys for
// the same id.
func registerPathVariants(entries *orderedmap.OrderedMap, path string, id string) {
	segments := SplitPath(path)
	if len(segments) == 0 || id == "" {
		return
	}
	entries.Set(JoinPath(segments), id)
	entries.Set(strings.Join(segments, pathDelimiterTight), id)
}

// Lookup returns the leaf id for an already-normalized key.
func (x *CategoryIndex) Lookup(key string) (string, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	v, ok := x.entries.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Each calls fn for every key/id pair in insertion order, stopping early
// when fn returns false. Insertion order keeps fuzzy scans deterministic
// for a given index snapshot.
func (x *CategoryIndex) Each(fn func(path string, id string) bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	for pair := x.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key.(string), pair.Value.(string)) {
			return
		}
	}
}

func (x *CategoryIndex) IsEmpty() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.entries.Len() == 0
}

// Degraded reports whether the index was built from fallback data.
func (x *CategoryIndex) Degraded() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.degraded
}

// Invalidate drops the built index so the next EnsureBuilt fetches again.
func (x *CategoryIndex) Invalidate() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.entries = orderedmap.New()
	x.built = false
	x.degraded = false
}
