package types

// ActivityOrigin distinguishes how a scheduled activity was created.
type ActivityOrigin string

const (
	OriginPOI    ActivityOrigin = "POI"    // backed by a catalogue point of interest
	OriginCustom ActivityOrigin = "CUSTOM" // user-authored spot with no backing POI
	OriginMall   ActivityOrigin = "MALL"   // mall visit with shop sub-selections
)

// IsValid checks if the origin is a known activity origin.
func (o ActivityOrigin) IsValid() bool {
	switch o {
	case OriginPOI, OriginCustom, OriginMall:
		return true
	default:
		return false
	}
}

// ScheduledActivity is a plan entry the user has committed to a (day, time)
// slot. Day, start time and duration are editable after insertion; identity
// is the stable ID. No two activities may share a (day, time) slot; the
// schedule model enforces that invariant.
type ScheduledActivity struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Origin        ActivityOrigin `json:"origin"`
	POIID         string         `json:"poiId,omitempty"`
	Region        string         `json:"region,omitempty"`
	Latitude      float64        `json:"latitude,omitempty"`
	Longitude     float64        `json:"longitude,omitempty"`
	Day           int            `json:"day"`           // 1..trip duration in days
	StartTime     string         `json:"startTime"`     // HH:MM, 24-hour
	DurationHours float64        `json:"durationHours"` // 0.5 increments, [0.5, 8]
	ShopIDs       []string       `json:"shopIds,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// ActivityUpdate is a partial edit of a scheduled activity. Nil fields are
// left untouched.
type ActivityUpdate struct {
	Day           *int     `json:"day,omitempty"`
	StartTime     *string  `json:"startTime,omitempty"`
	DurationHours *float64 `json:"durationHours,omitempty"`
}

// SlotResult reports the outcome of a schedule mutation. A conflict is not
// an error: the mutation still applies, but ConflictWith names the activity
// already holding the same (day, time) slot so the caller can prompt for a
// different one.
type SlotResult struct {
	OK           bool   `json:"ok"`
	Removed      bool   `json:"removed,omitempty"`
	ConflictWith string `json:"conflictWith,omitempty"`
	Message      string `json:"message,omitempty"`
}
