package services

import (
	"context"
	"sort"

	"github.com/jalanjalan/jalanjalan-backend/internal/planner"
	"github.com/jalanjalan/jalanjalan-backend/internal/store"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

// SuggestionService produces day-plan suggestions from the POI catalogue.
// The catalogue read goes through a Redis cache; a failed read degrades to
// an empty candidate pool rather than surfacing an error, so the planner
// always gets a well-formed input.
type SuggestionService struct {
	poiStore store.POIStore
	poiCache store.POICache
	builder  *planner.Builder
}

// NewSuggestionService creates a SuggestionService.
func NewSuggestionService(poiStore store.POIStore, poiCache store.POICache, builder *planner.Builder) *SuggestionService {
	return &SuggestionService{
		poiStore: poiStore,
		poiCache: poiCache,
		builder:  builder,
	}
}

// SuggestDayPlan sequences up to four stops for the region matching the
// interest tags. When no POI matches the tags, it falls back to the
// region's top-rated POIs so the user never sees a blank plan while the
// region itself has coverage.
func (s *SuggestionService) SuggestDayPlan(ctx context.Context, region string, interestTags []string) ([]types.PlannedStop, error) {
	pool := s.regionPool(ctx, region)

	stops := s.builder.Build(interestTags, region, pool)
	if len(stops) > 0 || len(pool) == 0 {
		return stops, nil
	}

	// Tag filter matched nothing: suggest the region's top-rated POIs.
	return s.topRated(region, pool), nil
}

// regionPool fetches a region's candidate pool, read-through cached.
// Catalogue failures are logged and degrade to an empty pool.
func (s *SuggestionService) regionPool(ctx context.Context, region string) []types.PointOfInterest {
	if pool, ok := s.poiCache.GetPool(ctx, region); ok {
		return pool
	}

	pool, err := s.poiStore.ListPOIs(ctx, store.POIQuery{Region: region})
	if err != nil {
		logger.GetLogger().Warnw("POI catalogue unavailable, planning with empty pool",
			"region", region, "error", err)
		return nil
	}
	s.poiCache.SetPool(ctx, region, pool)
	return pool
}

func (s *SuggestionService) topRated(region string, pool []types.PointOfInterest) []types.PlannedStop {
	ranked := make([]types.PointOfInterest, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rating > ranked[j].Rating })

	if len(ranked) > planner.MaxStopsPerDay {
		ranked = ranked[:planner.MaxStopsPerDay]
	}
	return s.builder.Build(nil, region, ranked)
}
