// Package schedule owns the set of activities a user has committed to
// (day, time) slots and enforces single occupancy of a slot.
package schedule

import (
	"fmt"
	"math"
	"sort"

	"github.com/jalanjalan/jalanjalan-backend/types"
)

const (
	// DefaultDay and DefaultTime are the slot a freshly inserted activity
	// lands in until the user moves it.
	DefaultDay  = 1
	DefaultTime = "10:00"

	minDurationHours = 0.5
	maxDurationHours = 8.0
	durationStep     = 0.5
)

// Model maps activity IDs to scheduled activities and tracks which of them
// currently sit on an occupied slot. Two activities conflict iff they share
// day and exact HH:MM start time with different IDs; duration overlap is
// deliberately not considered. Not safe for concurrent use; callers
// serialize through a per-trip writer.
type Model struct {
	tripDays   int
	activities map[string]*types.ScheduledActivity
	conflicts  map[string]string // activity id -> id it collides with
}

// New creates an empty Model for a trip of the given duration in days.
// Durations below one day are treated as a single-day trip.
func New(tripDays int) *Model {
	if tripDays < 1 {
		tripDays = 1
	}
	return &Model{
		tripDays:   tripDays,
		activities: make(map[string]*types.ScheduledActivity),
		conflicts:  make(map[string]string),
	}
}

// Insert adds the activity, defaulting an unset slot to (DefaultDay,
// DefaultTime). Re-inserting an ID that is already present toggles it off
// instead: selecting an already-selected spot deselects it. A slot
// collision does not block the insert; it is reported in the result so the
// caller can prompt for a different slot.
func (m *Model) Insert(activity types.ScheduledActivity) types.SlotResult {
	if _, exists := m.activities[activity.ID]; exists {
		m.drop(activity.ID)
		return types.SlotResult{OK: true, Removed: true}
	}

	if activity.Day == 0 {
		activity.Day = DefaultDay
	}
	if activity.StartTime == "" {
		activity.StartTime = DefaultTime
	}
	activity.Day = clampDay(activity.Day, m.tripDays)
	activity.DurationHours = clampDuration(activity.DurationHours)

	m.activities[activity.ID] = &activity
	return m.recheck(activity.ID)
}

// Update applies a partial edit. Day and time changes re-run conflict
// detection against all other activities; a duration-only edit never does.
// Unknown IDs return an error; that is a caller bug, not a slot conflict.
func (m *Model) Update(id string, update types.ActivityUpdate) (types.SlotResult, error) {
	activity, exists := m.activities[id]
	if !exists {
		return types.SlotResult{}, fmt.Errorf("no scheduled activity with id %q", id)
	}

	slotChanged := false
	if update.Day != nil {
		day := clampDay(*update.Day, m.tripDays)
		if day != activity.Day {
			activity.Day = day
			slotChanged = true
		}
	}
	if update.StartTime != nil && *update.StartTime != activity.StartTime {
		activity.StartTime = *update.StartTime
		slotChanged = true
	}
	if update.DurationHours != nil {
		activity.DurationHours = clampDuration(*update.DurationHours)
	}

	if !slotChanged {
		return types.SlotResult{OK: true}, nil
	}
	result := m.recheck(id)
	// Moving an activity can also resolve conflicts where it was the
	// occupant; those entries must not outlive the collision.
	m.recheckDependents(id)
	return result, nil
}

// Remove deletes the activity and clears any conflict state that referenced
// it, re-evaluating activities that were colliding with the removed one.
func (m *Model) Remove(id string) bool {
	if _, exists := m.activities[id]; !exists {
		return false
	}
	m.drop(id)
	return true
}

// Get returns the activity with the given id, if present.
func (m *Model) Get(id string) (types.ScheduledActivity, bool) {
	activity, ok := m.activities[id]
	if !ok {
		return types.ScheduledActivity{}, false
	}
	return *activity, true
}

// Activities returns the scheduled set ordered by (day, time, id).
func (m *Model) Activities() []types.ScheduledActivity {
	out := make([]types.ScheduledActivity, 0, len(m.activities))
	for _, activity := range m.activities {
		out = append(out, *activity)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// HasConflicts reports whether any activity still sits on an occupied slot.
// The planning flow blocks forward navigation while this is true.
func (m *Model) HasConflicts() bool {
	return len(m.conflicts) > 0
}

// Conflicts returns the current activity-id -> colliding-id mapping.
func (m *Model) Conflicts() map[string]string {
	out := make(map[string]string, len(m.conflicts))
	for id, with := range m.conflicts {
		out[id] = with
	}
	return out
}

// Len returns the number of scheduled activities.
func (m *Model) Len() int {
	return len(m.activities)
}

func (m *Model) drop(id string) {
	delete(m.activities, id)
	delete(m.conflicts, id)
	// Anything that was colliding with the removed activity gets another look.
	m.recheckDependents(id)
}

// recheckDependents re-evaluates every activity whose conflict entry names
// id as the collider. Keys are collected first because recheck mutates the
// conflict map.
func (m *Model) recheckDependents(id string) {
	var stale []string
	for other, with := range m.conflicts {
		if with == id {
			stale = append(stale, other)
		}
	}
	for _, other := range stale {
		m.recheck(other)
	}
}

// recheck updates the conflict entry for id and returns the slot result the
// caller surfaces to the user.
func (m *Model) recheck(id string) types.SlotResult {
	activity := m.activities[id]
	if other := m.occupant(activity.Day, activity.StartTime, id); other != nil {
		m.conflicts[id] = other.ID
		return types.SlotResult{
			OK:           false,
			ConflictWith: other.ID,
			Message: fmt.Sprintf("%s clashes with %s on day %d at %s",
				activity.Name, other.Name, activity.Day, activity.StartTime),
		}
	}
	delete(m.conflicts, id)
	return types.SlotResult{OK: true}
}

// occupant finds another activity on the exact same (day, time) slot,
// preferring the lowest ID so repeated checks name the same collider.
func (m *Model) occupant(day int, startTime string, excludeID string) *types.ScheduledActivity {
	var found *types.ScheduledActivity
	for _, other := range m.activities {
		if other.ID == excludeID || other.Day != day || other.StartTime != startTime {
			continue
		}
		if found == nil || other.ID < found.ID {
			found = other
		}
	}
	return found
}

func clampDay(day, tripDays int) int {
	if day < 1 {
		return 1
	}
	if day > tripDays {
		return tripDays
	}
	return day
}

// clampDuration snaps to the nearest half hour and bounds the result to
// [0.5, 8]. A zero value means the caller did not set one; default to the
// minimum rather than rejecting.
func clampDuration(hours float64) float64 {
	if hours < minDurationHours {
		return minDurationHours
	}
	if hours > maxDurationHours {
		return maxDurationHours
	}
	return math.Round(hours/durationStep) * durationStep
}
