package smartstore

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	// OriginCodeDomestic is the origin area code for domestic (국산) goods.
	OriginCodeDomestic = "00"
	// OriginCodeImported is the single generic imported-goods code used when
	// the origin table has no closer entry.
	OriginCodeImported = "03"

	originContentDomestic = "국산"
	originContentImported = "수입산"
)

// OriginArea is one entry of the marketplace's origin code table.
type OriginArea struct {
	Code string `json:"originAreaCode"`
	Name string `json:"originAreaName"`
}

// OriginInfo is the resolved origin metadata for a listing. Code is always
// present. ImporterName is set iff the origin is foreign; the engine does
// not know the real importer, so the value comes from seller config and is
// flagged for operator follow-up.
type OriginInfo struct {
	Code           string
	DisplayContent string
	IsForeign      bool
	ImporterName   string
	CatchingWaters string
}

var domesticKeywords = []string{"국내", "국산", "한국", "대한민국"}

// OriginResolver maps free-text origin strings to origin area codes. The
// code table is fetched once; a fetch failure leaves the resolver in
// heuristic-only mode rather than failing resolution.
type OriginResolver struct {
	source   OriginSource
	importer string

	mu      sync.RWMutex
	areas   []OriginArea
	fetched bool

	group singleflight.Group
}

// NewOriginResolver creates a resolver. importerName is the configured
// placeholder used for foreign-origin listings.
func NewOriginResolver(source OriginSource, importerName string) *OriginResolver {
	return &OriginResolver{source: source, importer: importerName}
}

func (r *OriginResolver) ensureTable(ctx context.Context) {
	r.mu.RLock()
	fetched := r.fetched
	r.mu.RUnlock()
	if fetched || r.source == nil {
		return
	}

	r.group.Do("fetch", func() (any, error) {
		areas, err := r.source.FetchOriginAreas(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("origin area table fetch failed, using heuristic only")
			areas = nil
		} else {
			log.Info().Int("areas", len(areas)).Msg("origin area table fetched")
		}
		r.mu.Lock()
		r.areas = areas
		r.fetched = true
		r.mu.Unlock()
		return nil, nil
	})
}

// Invalidate drops the fetched table so the next Resolve fetches again.
func (r *OriginResolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.areas = nil
	r.fetched = false
}

// Resolve maps rawOrigin to origin metadata. Marine-only sub-fields are
// kept only when flags says the category is a marine goods category; the
// marketplace rejects them anywhere else.
func (r *OriginResolver) Resolve(ctx context.Context, rawOrigin string, catchingWaters string, flags ComplianceFlags) OriginInfo {
	r.ensureTable(ctx)

	info := r.resolveCode(strings.TrimSpace(rawOrigin))

	if flags.IsMarineGoods {
		info.CatchingWaters = strings.TrimSpace(catchingWaters)
	} else if catchingWaters != "" {
		log.Warn().Str("catchingWaters", catchingWaters).Msg("dropping marine origin detail for non-marine category")
	}

	if info.IsForeign {
		info.ImporterName = r.importer
		log.Warn().
			Str("origin", rawOrigin).
			Str("importer", info.ImporterName).
			Msg("foreign origin uses configured importer name, needs operator review")
	}

	return info
}

func (r *OriginResolver) resolveCode(origin string) OriginInfo {
	if origin == "" {
		return OriginInfo{Code: OriginCodeDomestic, DisplayContent: originContentDomestic}
	}

	r.mu.RLock()
	areas := r.areas
	r.mu.RUnlock()

	// Exact name match first, then substring in either direction.
	for _, a := range areas {
		if strings.EqualFold(a.Name, origin) {
			return originInfoForArea(a)
		}
	}
	for _, a := range areas {
		if mutualSubstring(a.Name, origin) {
			return originInfoForArea(a)
		}
	}

	if containsAny(origin, domesticKeywords) {
		return OriginInfo{Code: OriginCodeDomestic, DisplayContent: originContentDomestic}
	}
	return OriginInfo{
		Code:           OriginCodeImported,
		DisplayContent: originContentImported + " (" + origin + ")",
		IsForeign:      true,
	}
}

func originInfoForArea(a OriginArea) OriginInfo {
	return OriginInfo{
		Code:           a.Code,
		DisplayContent: a.Name,
		IsForeign:      a.Code != OriginCodeDomestic,
	}
}
