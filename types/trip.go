package types

import "time"

type TripStatus string

const (
	TripStatusPlanning  TripStatus = "PLANNING"  // trip is being assembled
	TripStatusFinalized TripStatus = "FINALIZED" // itinerary flattened and saved
	TripStatusArchived  TripStatus = "ARCHIVED"  // kept for history only
)

// IsValid checks if the status is a known trip status.
func (ts TripStatus) IsValid() bool {
	switch ts {
	case TripStatusPlanning, TripStatusFinalized, TripStatusArchived:
		return true
	default:
		return false
	}
}

// IsValidTransition checks if a status transition is allowed.
func (ts TripStatus) IsValidTransition(next TripStatus) bool {
	transitions := map[TripStatus][]TripStatus{
		TripStatusPlanning:  {TripStatusFinalized, TripStatusArchived},
		TripStatusFinalized: {TripStatusArchived},
		TripStatusArchived:  {}, // terminal
	}
	for _, allowed := range transitions[ts] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (ts TripStatus) String() string {
	return string(ts)
}

// Trip is the planning context a schedule and expense ledger hang off of.
type Trip struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Region        string        `json:"region"`
	DurationDays  int           `json:"durationDays"`
	TransportMode TransportMode `json:"transportMode"`
	Participants  []string      `json:"participants"`
	Status        TripStatus    `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// SavedTrip is the flattened record written to the trip store once the user
// finalizes a plan. The store treats it as an opaque JSON blob.
type SavedTrip struct {
	Trip      Trip             `json:"trip"`
	Itinerary []ItineraryEntry `json:"itinerary"`
	SavedAt   time.Time        `json:"savedAt"`
}
