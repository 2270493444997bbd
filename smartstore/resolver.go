package smartstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrCategoryNotFound means no cascade stage produced a match. Callers must
// treat this as a hard validation error; defaulting to some category would
// mis-list the product.
var ErrCategoryNotFound = errors.New("category not found")

// fuzzyMatcher is one stage of the fuzzy cascade. Stages are evaluated in
// slice order and the first hit wins, which keeps resolution deterministic
// for a given index snapshot.
type fuzzyMatcher struct {
	name          string
	weak          bool
	lowConfidence bool
	match         func(query, candidate []string) bool
}

func segmentEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

func segmentContains(a, b string) bool {
	return strings.Contains(strings.ToLower(a), strings.ToLower(b))
}

func mutualSubstring(a, b string) bool {
	return segmentContains(a, b) || segmentContains(b, a)
}

func countWithinOne(a, b []string) bool {
	d := len(a) - len(b)
	return d >= -1 && d <= 1
}

func leaf(p []string) string {
	return p[len(p)-1]
}

// countSegmentHits returns how many non-root query segments appear as
// substrings anywhere in the candidate path.
func countSegmentHits(query, candidate []string) (hits, total int) {
	for _, q := range query[1:] {
		total++
		for _, c := range candidate {
			if segmentContains(c, q) {
				hits++
				break
			}
		}
	}
	return hits, total
}

var fuzzyMatchers = []fuzzyMatcher{
	{
		name: "root and leaf equal",
		match: func(q, c []string) bool {
			return segmentEqual(q[0], c[0]) && segmentEqual(leaf(q), leaf(c)) && countWithinOne(q, c)
		},
	},
	{
		name: "root equal, leaf substring",
		match: func(q, c []string) bool {
			return segmentEqual(q[0], c[0]) && mutualSubstring(leaf(q), leaf(c)) && countWithinOne(q, c)
		},
	},
	{
		name: "leaf equal",
		weak: true,
		match: func(q, c []string) bool {
			return segmentEqual(leaf(q), leaf(c))
		},
	},
	{
		name: "leaf substring",
		weak: true,
		match: func(q, c []string) bool {
			return mutualSubstring(leaf(q), leaf(c))
		},
	},
	{
		name: "root equal, all segments contained",
		match: func(q, c []string) bool {
			if !segmentEqual(q[0], c[0]) || !countWithinOne(q, c) {
				return false
			}
			hits, total := countSegmentHits(q, c)
			return total > 0 && hits == total
		},
	},
	{
		name:          "root equal, half of segments contained",
		weak:          true,
		lowConfidence: true,
		match: func(q, c []string) bool {
			if !segmentEqual(q[0], c[0]) {
				return false
			}
			hits, total := countSegmentHits(q, c)
			return total > 0 && hits >= (total+1)/2
		},
	},
}

// CategoryResolver resolves a free-text category path or numeric id to a
// leaf category id using a cascading match strategy over the index.
type CategoryResolver struct {
	index *CategoryIndex
}

func NewCategoryResolver(index *CategoryIndex) *CategoryResolver {
	return &CategoryResolver{index: index}
}

// Resolve returns the leaf category id for pathOrID, or ErrCategoryNotFound.
func (r *CategoryResolver) Resolve(ctx context.Context, pathOrID string) (string, error) {
	id, _, err := r.resolveWithStage(ctx, pathOrID)
	return id, err
}

// resolveWithStage additionally reports the cascade stage that matched,
// which the tests use to pin stage ordering.
func (r *CategoryResolver) resolveWithStage(ctx context.Context, pathOrID string) (string, string, error) {
	input := strings.TrimSpace(pathOrID)
	if input == "" {
		return "", "", errors.Wrap(ErrCategoryNotFound, "empty category")
	}

	// Numeric ids are assumed already canonical.
	if _, err := strconv.Atoi(input); err == nil {
		return input, "numeric", nil
	}

	if err := r.index.EnsureBuilt(ctx); err != nil {
		return "", "", err
	}

	if id, ok := r.index.Lookup(input); ok {
		return id, "exact", nil
	}

	// Delimiter-normalization retry, both directions.
	segments := SplitPath(input)
	if len(segments) == 0 {
		return "", "", errors.Wrap(ErrCategoryNotFound, input)
	}
	for _, variant := range []string{JoinPath(segments), strings.Join(segments, pathDelimiterTight)} {
		if id, ok := r.index.Lookup(variant); ok {
			return id, "delimiter", nil
		}
	}

	if id, ok := r.lookupCaseInsensitive(input); ok {
		return id, "case-insensitive", nil
	}

	if id, stage, ok := r.fuzzyResolve(segments); ok {
		return id, stage, nil
	}

	return "", "", errors.Wrap(ErrCategoryNotFound, input)
}

func (r *CategoryResolver) lookupCaseInsensitive(input string) (string, bool) {
	var found string
	var ok bool
	r.index.Each(func(path, id string) bool {
		if strings.EqualFold(path, input) {
			found, ok = id, true
			return false
		}
		return true
	})
	return found, ok
}

func (r *CategoryResolver) fuzzyResolve(query []string) (string, string, bool) {
	for _, m := range fuzzyMatchers {
		var found, foundPath string
		var ok bool
		r.index.Each(func(path, id string) bool {
			// Scan only the canonical-delimiter keys; the tight variants
			// split to the same segments.
			if !strings.Contains(path, PathDelimiter) && strings.Contains(path, pathDelimiterTight) {
				return true
			}
			if m.match(query, SplitPath(path)) {
				found, foundPath, ok = id, path, true
				return false
			}
			return true
		})
		if ok {
			evt := log.Info()
			if m.weak {
				evt = log.Warn().Bool("weakMatch", true)
			}
			if m.lowConfidence {
				evt = evt.Bool("lowConfidence", true)
			}
			evt.
				Str("stage", m.name).
				Str("query", JoinPath(query)).
				Str("matched", foundPath).
				Str("categoryId", found).
				Msg("fuzzy category match")
			return found, m.name, true
		}
	}
	return "", "", false
}
