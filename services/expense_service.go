package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/jalanjalan/jalanjalan-backend/errors"
	"github.com/jalanjalan/jalanjalan-backend/internal/ledger"
	"github.com/jalanjalan/jalanjalan-backend/internal/store"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

// ExpenseService records bills and serves the derived balance and
// settlement views. Balances and transfers are recomputed from the stored
// bills on every read; nothing derived is persisted.
type ExpenseService struct {
	billStore store.BillStore
	tripStore store.TripStore
}

// NewExpenseService creates an ExpenseService.
func NewExpenseService(billStore store.BillStore, tripStore store.TripStore) *ExpenseService {
	return &ExpenseService{billStore: billStore, tripStore: tripStore}
}

// CreateBill validates and stores a bill. Validation runs before the store
// is touched; a manual split whose shares drift more than the epsilon from
// the bill amount never reaches the ledger.
func (s *ExpenseService) CreateBill(ctx context.Context, bill *types.Bill) error {
	if err := ledger.ValidateBill(*bill); err != nil {
		return err
	}

	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}
	if bill.SplitMethod == types.SplitManual && len(bill.Participants) == 0 {
		for _, share := range bill.Shares {
			bill.Participants = append(bill.Participants, share.Participant)
		}
	}

	if err := s.billStore.CreateBill(ctx, bill); err != nil {
		if err == store.ErrConflict {
			return apperrors.NewConflictError("bill already exists", "ID: "+bill.ID)
		}
		logger.GetLogger().Errorw("Failed to store bill", "tripId", bill.TripID, "error", err)
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// ListBills returns a trip's bills, oldest first.
func (s *ExpenseService) ListBills(ctx context.Context, tripID string) ([]types.Bill, error) {
	bills, err := s.billStore.ListBills(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return bills, nil
}

// DeleteBill removes a bill.
func (s *ExpenseService) DeleteBill(ctx context.Context, id string) error {
	err := s.billStore.DeleteBill(ctx, id)
	if err == store.ErrNotFound {
		return apperrors.NotFound("Bill", id)
	}
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// Balances computes the signed net balance per participant across the
// trip's bills. The roster is the trip's participant list unioned with
// every name appearing on a bill.
func (s *ExpenseService) Balances(ctx context.Context, tripID string) ([]types.ParticipantBalance, error) {
	bills, roster, err := s.billsAndRoster(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return ledger.BalanceList(ledger.ComputeBalances(bills, roster)), nil
}

// Settlement derives the transfers that settle the trip's balances. An
// empty result means everyone is already square.
func (s *ExpenseService) Settlement(ctx context.Context, tripID string) ([]types.Transfer, error) {
	bills, roster, err := s.billsAndRoster(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return ledger.Settle(ledger.ComputeBalances(bills, roster)), nil
}

func (s *ExpenseService) billsAndRoster(ctx context.Context, tripID string) ([]types.Bill, []string, error) {
	bills, err := s.billStore.ListBills(ctx, tripID)
	if err != nil {
		return nil, nil, apperrors.NewDatabaseError(err)
	}

	var roster []string
	trip, err := s.tripStore.GetTrip(ctx, tripID)
	switch err {
	case nil:
		roster = trip.Participants
	case store.ErrNotFound:
		// Expenses can be tracked without a planned trip; the roster is
		// then just the names on the bills.
	default:
		return nil, nil, apperrors.NewDatabaseError(err)
	}
	return bills, roster, nil
}
