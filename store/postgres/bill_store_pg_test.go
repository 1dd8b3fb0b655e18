package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalstore "github.com/jalanjalan/jalanjalan-backend/internal/store"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	logger.InitLogger()
	os.Exit(m.Run())
}

func TestCreateBill_EqualSplitInsertsParticipantsWithNullShare(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bill := &types.Bill{
		ID:           "bill-1",
		TripID:       "trip-1",
		Title:        "seafood dinner",
		Amount:       120,
		PaidBy:       "Aina",
		Participants: []string{"Aina", "Ben"},
		SplitMethod:  types.SplitEqual,
		CreatedAt:    createdAt,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bills").
		WithArgs("bill-1", "trip-1", "seafood dinner", 120.0, "", "Aina", "EQUAL", createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO bill_participants").
		WithArgs("bill-1", "Aina").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO bill_participants").
		WithArgs("bill-1", "Ben").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	store := NewPgBillStore(mock)
	require.NoError(t, store.CreateBill(context.Background(), bill))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBill_ManualSplitUpsertsShares(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bill := &types.Bill{
		ID:           "bill-2",
		TripID:       "trip-1",
		Title:        "tickets",
		Amount:       100,
		PaidBy:       "Aina",
		Participants: []string{"Aina", "Ben"},
		SplitMethod:  types.SplitManual,
		CreatedAt:    createdAt,
		Shares: []types.BillShare{
			{Participant: "Aina", Amount: 30},
			{Participant: "Ben", Amount: 70},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bills").
		WithArgs("bill-2", "trip-1", "tickets", 100.0, "", "Aina", "MANUAL", createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO bill_participants").
		WithArgs("bill-2", "Aina").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO bill_participants").
		WithArgs("bill-2", "Ben").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO bill_participants").
		WithArgs("bill-2", "Aina", 30.0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO bill_participants").
		WithArgs("bill-2", "Ben", 70.0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	store := NewPgBillStore(mock)
	require.NoError(t, store.CreateBill(context.Background(), bill))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBill_DuplicateIDIsConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	bill := &types.Bill{
		ID:          "bill-1",
		TripID:      "trip-1",
		Title:       "dup",
		Amount:      10,
		PaidBy:      "Aina",
		SplitMethod: types.SplitEqual,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bills").
		WithArgs("bill-1", "trip-1", "dup", 10.0, "", "Aina", "EQUAL", bill.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "bills_pkey"})
	mock.ExpectRollback()

	store := NewPgBillStore(mock)
	assert.ErrorIs(t, store.CreateBill(context.Background(), bill), internalstore.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBill_RollsBackOnInsertFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	bill := &types.Bill{
		ID:          "bill-3",
		TripID:      "trip-1",
		Title:       "dup",
		Amount:      10,
		PaidBy:      "Aina",
		SplitMethod: types.SplitEqual,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bills").
		WithArgs("bill-3", "trip-1", "dup", 10.0, "", "Aina", "EQUAL", bill.CreatedAt).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	store := NewPgBillStore(mock)
	assert.Error(t, store.CreateBill(context.Background(), bill))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBills_AttachesParticipantsAndShares(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, trip_id, title, amount").
		WithArgs("trip-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "trip_id", "title", "amount", "category", "paid_by", "split_method", "created_at",
		}).AddRow("bill-1", "trip-1", "dinner", 120.0, "food", "Aina", "MANUAL", createdAt))

	share := 70.0
	mock.ExpectQuery("SELECT bp.bill_id, bp.participant, bp.share_amount").
		WithArgs("trip-1").
		WillReturnRows(pgxmock.NewRows([]string{"bill_id", "participant", "share_amount"}).
			AddRow("bill-1", "Aina", (*float64)(nil)).
			AddRow("bill-1", "Ben", &share))

	store := NewPgBillStore(mock)
	bills, err := store.ListBills(context.Background(), "trip-1")
	require.NoError(t, err)

	require.Len(t, bills, 1)
	assert.Equal(t, types.SplitManual, bills[0].SplitMethod)
	assert.Equal(t, []string{"Aina", "Ben"}, bills[0].Participants)
	require.Len(t, bills[0].Shares, 1)
	assert.Equal(t, "Ben", bills[0].Shares[0].Participant)
	assert.Equal(t, 70.0, bills[0].Shares[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBills_EmptyTripSkipsShareQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, trip_id, title, amount").
		WithArgs("trip-9").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "trip_id", "title", "amount", "category", "paid_by", "split_method", "created_at",
		}))

	store := NewPgBillStore(mock)
	bills, err := store.ListBills(context.Background(), "trip-9")
	require.NoError(t, err)
	assert.Empty(t, bills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBill_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM bills").
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	store := NewPgBillStore(mock)
	assert.ErrorIs(t, store.DeleteBill(context.Background(), "ghost"), internalstore.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBill_Deletes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM bills").
		WithArgs("bill-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	store := NewPgBillStore(mock)
	assert.NoError(t, store.DeleteBill(context.Background(), "bill-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
