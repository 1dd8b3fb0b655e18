package planner

import (
	"strings"

	"github.com/jalanjalan/jalanjalan-backend/types"
)

// MaxStopsPerDay caps how many stops the builder sequences into one day.
const MaxStopsPerDay = 4

// periodLabels are assigned to stops by position in the built sequence.
// Anything past the fourth stop falls back to "Evening"; the cap makes that
// unreachable in the base algorithm, but a longer input must not panic.
var periodLabels = [...]string{"Morning", "Lunch", "Afternoon", "Night"}

const overflowPeriod = "Evening"

// Builder sequences candidate POIs into a day plan via a greedy
// nearest-neighbor walk. It is deliberately not a tour optimizer: the goal
// is a locally sensible ordering produced deterministically, with ties
// broken by original pool order.
type Builder struct {
	anchors map[string]types.Coordinate
}

// NewBuilder creates a Builder with the given region-center anchor table.
// Keys are matched case-insensitively against region names.
func NewBuilder(anchors map[string]types.Coordinate) *Builder {
	normalized := make(map[string]types.Coordinate, len(anchors))
	for region, coord := range anchors {
		normalized[strings.ToLower(region)] = coord
	}
	return &Builder{anchors: normalized}
}

// Build filters the pool to POIs matching the region (case-insensitive) and
// at least one interest tag (an empty tag set matches on region alone), then
// walks nearest-neighbor from the region anchor, appending up to
// MaxStopsPerDay stops. An empty result means nothing matched; the caller
// owns any fallback.
func (b *Builder) Build(interestTags []string, region string, pool []types.PointOfInterest) []types.PlannedStop {
	candidates := filterPool(interestTags, region, pool)
	if len(candidates) == 0 {
		return []types.PlannedStop{}
	}

	anchor, ok := b.anchors[strings.ToLower(region)]
	if !ok {
		// Unknown region: start the walk from the first matching POI.
		anchor = candidates[0].Coordinate()
	}

	stops := make([]types.PlannedStop, 0, MaxStopsPerDay)
	remaining := candidates

	for len(stops) < MaxStopsPerDay && len(remaining) > 0 {
		best := 0
		bestDist := DistanceKm(anchor.Lat, anchor.Lng, remaining[0].Latitude, remaining[0].Longitude)
		for i := 1; i < len(remaining); i++ {
			d := DistanceKm(anchor.Lat, anchor.Lng, remaining[i].Latitude, remaining[i].Longitude)
			// Strict less-than keeps the first occurrence on ties.
			if d < bestDist {
				best = i
				bestDist = d
			}
		}

		next := remaining[best]
		anchor = next.Coordinate()
		remaining = append(remaining[:best:best], remaining[best+1:]...)
		stops = append(stops, types.PlannedStop{
			PointOfInterest: next,
			Period:          periodLabel(len(stops)),
		})
	}

	return stops
}

func filterPool(interestTags []string, region string, pool []types.PointOfInterest) []types.PointOfInterest {
	var out []types.PointOfInterest
	for _, poi := range pool {
		if !strings.EqualFold(poi.Region, region) {
			continue
		}
		if len(interestTags) > 0 && !matchesAnyTag(poi, interestTags) {
			continue
		}
		out = append(out, poi)
	}
	return out
}

func matchesAnyTag(poi types.PointOfInterest, tags []string) bool {
	for _, tag := range tags {
		if poi.HasTag(tag) {
			return true
		}
	}
	return false
}

func periodLabel(position int) string {
	if position < len(periodLabels) {
		return periodLabels[position]
	}
	return overflowPeriod
}
