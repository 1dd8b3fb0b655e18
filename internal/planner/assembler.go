package planner

import (
	"sort"

	"github.com/jalanjalan/jalanjalan-backend/types"
)

// TransportLeg holds the quoted cost and duration for one synthetic leg.
// Exact figures are configuration, not part of the algorithm's contract.
type TransportLeg struct {
	Cost            float64
	DurationMinutes int
}

// Assembler turns the validated schedule into the final rendered sequence:
// a check-in logistics entry, the activities in (day, time) order, and a
// transport leg between consecutive activities on the same day.
type Assembler struct {
	legs map[types.TransportMode]TransportLeg
}

// CheckInTitle is the label of the synthetic logistics entry that opens
// every itinerary.
const CheckInTitle = "Check-in to Stay"

const checkInDay = 1
const checkInTime = "14:00"

// NewAssembler creates an Assembler with per-mode transport leg constants.
func NewAssembler(legs map[types.TransportMode]TransportLeg) *Assembler {
	return &Assembler{legs: legs}
}

// Assemble sorts the activities by day then start time (HH:MM compares
// correctly as a string) and interleaves the synthetic entries. No leg is
// emitted across a day boundary or after the last activity of a day.
func (a *Assembler) Assemble(activities []types.ScheduledActivity, mode types.TransportMode) []types.ItineraryEntry {
	sorted := make([]types.ScheduledActivity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day < sorted[j].Day
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})

	entries := make([]types.ItineraryEntry, 0, 2*len(sorted)+1)
	entries = append(entries, types.ItineraryEntry{
		Kind:  types.EntryLogistics,
		Title: CheckInTitle,
		Day:   checkInDay,
		Time:  checkInTime,
	})

	leg := a.legs[mode]
	for i := range sorted {
		act := sorted[i]
		entries = append(entries, types.ItineraryEntry{
			Kind:     types.EntryActivity,
			Activity: &sorted[i],
			Title:    act.Name,
			Day:      act.Day,
			Time:     act.StartTime,
		})
		if i+1 < len(sorted) && sorted[i+1].Day == act.Day {
			entries = append(entries, types.ItineraryEntry{
				Kind:            types.EntryTransport,
				Day:             act.Day,
				TransportMode:   mode,
				Cost:            leg.Cost,
				DurationMinutes: leg.DurationMinutes,
			})
		}
	}

	return entries
}
