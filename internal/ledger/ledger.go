// Package ledger computes net balances from a group's recorded bills and
// derives the settling transfers. Balances and transfers are pure derived
// views, recomputed from scratch on every read.
package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	apperrors "github.com/jalanjalan/jalanjalan-backend/errors"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

// ManualSplitEpsilon is how far the sum of manual shares may drift from the
// bill amount before the bill is rejected, in currency units.
const ManualSplitEpsilon = 0.1

// ComputeBalances derives the signed net balance for every participant:
// positive means owed money, negative means owes. Every name in the roster
// or on any bill gets an entry. The sum over all balances is zero within
// floating-point epsilon.
func ComputeBalances(bills []types.Bill, participants []string) map[string]float64 {
	balances := make(map[string]float64, len(participants))
	for _, p := range participants {
		balances[p] = 0
	}

	for _, bill := range bills {
		switch bill.SplitMethod {
		case types.SplitManual:
			for _, share := range bill.Shares {
				balances[share.Participant] -= share.Amount
			}
		default: // EQUAL
			if len(bill.Participants) == 0 {
				continue
			}
			perHead := bill.Amount / float64(len(bill.Participants))
			for _, p := range bill.Participants {
				balances[p] -= perHead
			}
		}
		// The payer fronted the whole amount. If they are also a
		// participant their own share was already subtracted above, so
		// they net out at amount minus their share.
		balances[bill.PaidBy] += bill.Amount
	}

	return balances
}

// ValidateBill enforces the invariants a bill must satisfy before it enters
// the ledger. In particular, manual shares must sum to the bill amount
// within ManualSplitEpsilon; the comparison runs on decimals so repeated
// user-entered cents do not accumulate float noise.
func ValidateBill(bill types.Bill) error {
	if bill.Title == "" {
		return apperrors.ValidationFailed("invalid bill", "title is required")
	}
	if bill.Amount <= 0 {
		return apperrors.ValidationFailed("invalid bill", "amount must be positive")
	}
	if bill.PaidBy == "" {
		return apperrors.ValidationFailed("invalid bill", "payer is required")
	}
	if !bill.SplitMethod.IsValid() {
		return apperrors.ValidationFailed("invalid bill", fmt.Sprintf("unknown split method %q", bill.SplitMethod))
	}

	switch bill.SplitMethod {
	case types.SplitEqual:
		if len(bill.Participants) == 0 {
			return apperrors.ValidationFailed("invalid bill", "at least one participant is required")
		}
	case types.SplitManual:
		if len(bill.Shares) == 0 {
			return apperrors.ValidationFailed("invalid bill", "at least one share is required")
		}
		sum := decimal.Zero
		for _, share := range bill.Shares {
			sum = sum.Add(decimal.NewFromFloat(share.Amount))
		}
		diff := sum.Sub(decimal.NewFromFloat(bill.Amount)).Abs()
		if diff.GreaterThan(decimal.NewFromFloat(ManualSplitEpsilon)) {
			return apperrors.ValidationFailed(
				"manual split does not add up",
				fmt.Sprintf("shares sum to %s, bill amount is %.2f", sum.StringFixed(2), bill.Amount),
			)
		}
	}

	return nil
}

// BalanceList flattens a balance map into a slice sorted by participant
// name, the shape handlers render.
func BalanceList(balances map[string]float64) []types.ParticipantBalance {
	out := make([]types.ParticipantBalance, 0, len(balances))
	for participant, balance := range balances {
		out = append(out, types.ParticipantBalance{Participant: participant, Balance: balance})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Participant < out[j].Participant })
	return out
}
