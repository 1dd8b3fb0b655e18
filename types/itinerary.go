package types

// TransportMode selects which transport constants the assembler uses for
// synthetic legs between same-day activities.
type TransportMode string

const (
	TransportOwn    TransportMode = "OWN"    // own vehicle
	TransportPublic TransportMode = "PUBLIC" // public transit / ride-hailing
)

// IsValid checks if the mode is a known transport mode.
func (m TransportMode) IsValid() bool {
	switch m {
	case TransportOwn, TransportPublic:
		return true
	default:
		return false
	}
}

// EntryKind discriminates the units of a rendered itinerary.
type EntryKind string

const (
	EntryActivity  EntryKind = "ACTIVITY"
	EntryTransport EntryKind = "TRANSPORT"
	EntryLogistics EntryKind = "LOGISTICS"
)

// ItineraryEntry is one unit of the final rendered sequence. Transport and
// logistics entries are synthesized by the assembler and never persisted on
// their own; they are a derived view over the day-ordered activity list.
type ItineraryEntry struct {
	Kind            EntryKind          `json:"kind"`
	Activity        *ScheduledActivity `json:"activity,omitempty"`
	Title           string             `json:"title,omitempty"`
	Day             int                `json:"day"`
	Time            string             `json:"time,omitempty"`
	TransportMode   TransportMode      `json:"transportMode,omitempty"`
	Cost            float64            `json:"cost,omitempty"`
	DurationMinutes int                `json:"durationMinutes,omitempty"`
}
