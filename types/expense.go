package types

import "time"

// SplitMethod determines how a bill is divided among its participants.
type SplitMethod string

const (
	SplitEqual  SplitMethod = "EQUAL"  // divide the amount evenly
	SplitManual SplitMethod = "MANUAL" // explicit per-participant amounts
)

// IsValid checks if the method is a known split method.
func (s SplitMethod) IsValid() bool {
	switch s {
	case SplitEqual, SplitManual:
		return true
	default:
		return false
	}
}

// BillShare is one participant's explicit share of a manually split bill.
type BillShare struct {
	Participant string  `json:"participant"`
	Amount      float64 `json:"amount"`
}

// Bill represents a shared expense recorded by the group. Bills are
// immutable once created; corrections are delete-and-recreate.
type Bill struct {
	ID           string      `json:"id"`
	TripID       string      `json:"tripId,omitempty"`
	Title        string      `json:"title"`
	Amount       float64     `json:"amount"`
	Category     string      `json:"category,omitempty"`
	PaidBy       string      `json:"paidBy"`
	Participants []string    `json:"participants"`
	Shares       []BillShare `json:"shares,omitempty"` // MANUAL splits only
	SplitMethod  SplitMethod `json:"splitMethod"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// ParticipantBalance is a derived view: positive means the participant is
// owed money, negative means they owe. The sum across a group is always
// zero within floating-point epsilon.
type ParticipantBalance struct {
	Participant string  `json:"participant"`
	Balance     float64 `json:"balance"`
}

// Transfer is one settling payment. Applying every transfer in a settlement
// brings all balances to (approximately) zero.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}
