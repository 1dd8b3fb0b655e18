package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalanjalan/jalanjalan-backend/types"
)

// applyTransfers plays a settlement back against the balances it was
// derived from.
func applyTransfers(balances map[string]float64, transfers []types.Transfer) map[string]float64 {
	out := make(map[string]float64, len(balances))
	for k, v := range balances {
		out[k] = v
	}
	for _, tr := range transfers {
		out[tr.From] += tr.Amount
		out[tr.To] -= tr.Amount
	}
	return out
}

func TestSettle_TwoDebtorsOneCreditor(t *testing.T) {
	transfers := Settle(map[string]float64{"A": 2, "B": -1, "C": -1})

	require.Len(t, transfers, 2)
	total := map[string]float64{}
	for _, tr := range transfers {
		assert.Equal(t, "A", tr.To)
		total[tr.From] += tr.Amount
	}
	assert.InDelta(t, 1, total["B"], 1e-9)
	assert.InDelta(t, 1, total["C"], 1e-9)
}

func TestSettle_TransfersZeroAllBalances(t *testing.T) {
	cases := []map[string]float64{
		{"A": 2, "B": -1, "C": -1},
		{"A": 100, "B": -40, "C": -60},
		{"A": 33.34, "B": -16.67, "C": -16.67},
		{"A": 75, "B": 25, "C": -60, "D": -40},
	}
	for _, balances := range cases {
		transfers := Settle(balances)
		settled := applyTransfers(balances, transfers)
		for name, balance := range settled {
			assert.InDeltaf(t, 0, balance, 0.011, "participant %s", name)
		}
	}
}

func TestSettle_TransferCountBound(t *testing.T) {
	balances := map[string]float64{
		"A": 50, "B": 30, "C": 20,
		"D": -25, "E": -25, "F": -25, "G": -25,
	}
	transfers := Settle(balances)

	debtors, creditors := 0, 0
	for _, b := range balances {
		if b < -0.01 {
			debtors++
		} else if b > 0.01 {
			creditors++
		}
	}
	assert.LessOrEqual(t, len(transfers), debtors+creditors-1)
}

func TestSettle_IgnoresNearZeroBalances(t *testing.T) {
	transfers := Settle(map[string]float64{"A": 0.005, "B": -0.005, "C": 0})
	assert.Empty(t, transfers)
}

func TestSettle_EmptyBalances(t *testing.T) {
	assert.Empty(t, Settle(nil))
	assert.Empty(t, Settle(map[string]float64{}))
}

func TestSettle_LargestDebtorMeetsLargestCreditorFirst(t *testing.T) {
	transfers := Settle(map[string]float64{"A": 60, "B": 40, "C": -70, "D": -30})

	require.NotEmpty(t, transfers)
	assert.Equal(t, "C", transfers[0].From)
	assert.Equal(t, "A", transfers[0].To)
	assert.InDelta(t, 60, transfers[0].Amount, 1e-9)
}

func TestSettle_Deterministic(t *testing.T) {
	balances := map[string]float64{"A": 10, "B": 10, "C": -10, "D": -10}
	first := Settle(balances)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Settle(balances))
	}
}
