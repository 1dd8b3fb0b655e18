package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	internalstore "github.com/jalanjalan/jalanjalan-backend/internal/store"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

const uniqueViolationCode = "23505"

var _ internalstore.BillStore = (*pgBillStore)(nil)

type pgBillStore struct {
	db DB
}

// NewPgBillStore creates a PostgreSQL bill store.
func NewPgBillStore(db DB) internalstore.BillStore {
	return &pgBillStore{db: db}
}

// CreateBill inserts the bill and its per-participant shares in one
// transaction. Bills are immutable; there is no corresponding update.
func (s *pgBillStore) CreateBill(ctx context.Context, bill *types.Bill) error {
	log := logger.GetLogger()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `
        INSERT INTO bills (id, trip_id, title, amount, category, paid_by, split_method, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		bill.ID, bill.TripID, bill.Title, bill.Amount, bill.Category,
		bill.PaidBy, string(bill.SplitMethod), bill.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return internalstore.ErrConflict
		}
		log.Errorw("Failed to insert bill", "billId", bill.ID, "error", err)
		return err
	}

	for _, participant := range bill.Participants {
		if _, err := tx.Exec(ctx, `
            INSERT INTO bill_participants (bill_id, participant, share_amount)
            VALUES ($1, $2, NULL)`,
			bill.ID, participant,
		); err != nil {
			return err
		}
	}
	for _, share := range bill.Shares {
		if _, err := tx.Exec(ctx, `
            INSERT INTO bill_participants (bill_id, participant, share_amount)
            VALUES ($1, $2, $3)
            ON CONFLICT (bill_id, participant) DO UPDATE SET share_amount = EXCLUDED.share_amount`,
			bill.ID, share.Participant, share.Amount,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListBills returns a trip's bills, oldest first, with participants and
// manual shares attached.
func (s *pgBillStore) ListBills(ctx context.Context, tripID string) ([]types.Bill, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, trip_id, title, amount, COALESCE(category, ''), paid_by, split_method, created_at
        FROM bills
        WHERE trip_id = $1
        ORDER BY created_at, id`,
		tripID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []types.Bill
	index := make(map[string]int)
	for rows.Next() {
		var bill types.Bill
		var method string
		if err := rows.Scan(
			&bill.ID, &bill.TripID, &bill.Title, &bill.Amount,
			&bill.Category, &bill.PaidBy, &method, &bill.CreatedAt,
		); err != nil {
			return nil, err
		}
		bill.SplitMethod = types.SplitMethod(method)
		index[bill.ID] = len(bills)
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return bills, nil
	}

	shareRows, err := s.db.Query(ctx, `
        SELECT bp.bill_id, bp.participant, bp.share_amount
        FROM bill_participants bp
        JOIN bills b ON b.id = bp.bill_id
        WHERE b.trip_id = $1
        ORDER BY bp.bill_id, bp.participant`,
		tripID,
	)
	if err != nil {
		return nil, err
	}
	defer shareRows.Close()

	for shareRows.Next() {
		var (
			billID      string
			participant string
			shareAmount *float64
		)
		if err := shareRows.Scan(&billID, &participant, &shareAmount); err != nil {
			return nil, err
		}
		i, ok := index[billID]
		if !ok {
			continue
		}
		bills[i].Participants = append(bills[i].Participants, participant)
		if shareAmount != nil {
			bills[i].Shares = append(bills[i].Shares, types.BillShare{
				Participant: participant,
				Amount:      *shareAmount,
			})
		}
	}
	return bills, shareRows.Err()
}

// DeleteBill removes a bill; participant rows cascade.
func (s *pgBillStore) DeleteBill(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return internalstore.ErrNotFound
	}
	return nil
}
