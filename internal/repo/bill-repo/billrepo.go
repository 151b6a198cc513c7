package billrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// CreateForSession invokes the aggregation function: it collects the
// session's unbilled orders, persists an open bill for their sum and links
// the orders, all in one statement. Returns the new bill id.
func (r *Repository) CreateForSession(ctx context.Context, sessionID int, guests int16) (int, error) {
	var billID int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, `SELECT create_bill_for_session($1, $2)`, sessionID, guests).Scan(&billID)
		if err != nil {
			zap.L().Error("can't create bill", zap.Int("session", sessionID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return billID, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Bill, error) {
	query := `
        SELECT id, sum, guest_number, bill_status, time
        FROM bill
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var bill domain.Bill
	err := row.Scan(&bill.ID, &bill.Sum, &bill.GuestNumber, &bill.Status, &bill.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find bill", zap.Error(err))
		return nil, err
	}
	return &bill, nil
}

// MarkAsPaid flips an open bill to paid. The false return means the bill was
// not open, which is an outcome, not an error.
func (r *Repository) MarkAsPaid(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE bill
        SET bill_status = 'paid'
        WHERE id = $1 AND bill_status = 'open'
    `
	var paid bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't mark bill as paid", zap.Error(err))
			return err
		}
		paid = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return paid, nil
}

func (r *Repository) FindTableByBillID(ctx context.Context, id int) (domain.TableNumber, error) {
	query := `
        SELECT j.table_number
        FROM bill b
        JOIN orders_in_bill oib ON oib.id_bill = b.id
        JOIN orders o           ON o.id = oib.id_order
        JOIN journal j          ON j.id = o.id_journal_entry
        WHERE b.id = $1
        LIMIT 1
    `
	var table domain.TableNumber
	err := r.db.QueryRow(ctx, query, id).Scan(&table)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		zap.L().Error("can't resolve table for bill", zap.Error(err))
		return "", err
	}
	return table, nil
}

func (r *Repository) CountOpenBillsForTable(ctx context.Context, table domain.TableNumber) (int, error) {
	query := `
        SELECT COALESCE(COUNT(DISTINCT b.id), 0)
        FROM bill b
        JOIN orders_in_bill oib ON oib.id_bill = b.id
        JOIN orders o           ON o.id = oib.id_order
        JOIN journal j          ON j.id = o.id_journal_entry
        WHERE j.table_number = $1 AND b.bill_status = 'open'
    `
	var count int
	err := r.db.QueryRow(ctx, query, table).Scan(&count)
	if err != nil {
		zap.L().Error("can't count open bills", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountUnbilledOrdersForTable(ctx context.Context, table domain.TableNumber) (int, error) {
	query := `
        SELECT COALESCE(COUNT(*), 0)
        FROM orders o
        JOIN journal j ON j.id = o.id_journal_entry
        WHERE j.table_number = $1
          AND NOT EXISTS (
              SELECT 1 FROM orders_in_bill oib WHERE oib.id_order = o.id
          )
    `
	var count int
	err := r.db.QueryRow(ctx, query, table).Scan(&count)
	if err != nil {
		zap.L().Error("can't count unbilled orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}
