package ledger

import (
	"sort"

	"github.com/jalanjalan/jalanjalan-backend/types"
)

// dustThreshold is the balance magnitude below which a participant is
// considered settled.
const dustThreshold = 0.01

// Settle derives the point-to-point transfers that zero all balances.
// Debtors are matched against creditors two-pointer greedy: most negative
// debtor against largest creditor, transferring the smaller of the two
// magnitudes each step. The result has at most debtors+creditors-1
// transfers, a minimum-transaction heuristic for the single-currency case,
// not a provably optimal minimum.
func Settle(balances map[string]float64) []types.Transfer {
	type entry struct {
		name    string
		balance float64
	}

	var debtors, creditors []entry
	for name, balance := range balances {
		switch {
		case balance < -dustThreshold:
			debtors = append(debtors, entry{name, balance})
		case balance > dustThreshold:
			creditors = append(creditors, entry{name, balance})
		}
	}

	// Name tie-breaks keep the output deterministic across map iterations.
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].balance != debtors[j].balance {
			return debtors[i].balance < debtors[j].balance
		}
		return debtors[i].name < debtors[j].name
	})
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].balance != creditors[j].balance {
			return creditors[i].balance > creditors[j].balance
		}
		return creditors[i].name < creditors[j].name
	})

	transfers := []types.Transfer{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		owed := -debtors[i].balance
		due := creditors[j].balance
		amount := owed
		if due < amount {
			amount = due
		}

		transfers = append(transfers, types.Transfer{
			From:   debtors[i].name,
			To:     creditors[j].name,
			Amount: amount,
		})

		debtors[i].balance += amount
		creditors[j].balance -= amount

		if -debtors[i].balance <= dustThreshold {
			i++
		}
		if creditors[j].balance <= dustThreshold {
			j++
		}
	}

	return transfers
}
