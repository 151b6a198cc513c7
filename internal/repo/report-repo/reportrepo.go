package reportrepo

import (
	"context"
	"time"

	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// SumOrdersSince aggregates dish cost and prime cost over all orders placed
// at or after from.
func (r *Repository) SumOrdersSince(ctx context.Context, from time.Time) (cost, primeCost float64, count int, err error) {
	query := `
        SELECT COALESCE(SUM(d.cost), 0), COALESCE(SUM(d.prime_cost), 0), COUNT(o.id)
        FROM orders o
        JOIN dishes d ON d.id = o.id_dish
        WHERE o.time >= $1
    `
	err = r.db.QueryRow(ctx, query, from).Scan(&cost, &primeCost, &count)
	if err != nil {
		zap.L().Error("can't sum orders", zap.Error(err))
		return 0, 0, 0, err
	}
	return cost, primeCost, count, nil
}

// CountPaidOrdersSince counts orders attached to bills paid in the range.
func (r *Repository) CountPaidOrdersSince(ctx context.Context, from time.Time) (int, error) {
	query := `
        SELECT COUNT(oib.id_order)
        FROM orders_in_bill oib
        JOIN bill b ON b.id = oib.id_bill
        WHERE b.bill_status = 'paid' AND b.time >= $1
    `
	var count int
	err := r.db.QueryRow(ctx, query, from).Scan(&count)
	if err != nil {
		zap.L().Error("can't count paid orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SumOrdersSinceByEmployee(ctx context.Context, from time.Time, employeeID int) (cost float64, count int, err error) {
	query := `
        SELECT COALESCE(SUM(d.cost), 0), COUNT(o.id)
        FROM orders o
        JOIN dishes d  ON d.id = o.id_dish
        JOIN journal j ON j.id = o.id_journal_entry
        WHERE o.time >= $1 AND j.id_employee = $2
    `
	err = r.db.QueryRow(ctx, query, from, employeeID).Scan(&cost, &count)
	if err != nil {
		zap.L().Error("can't sum employee orders", zap.Error(err))
		return 0, 0, err
	}
	return cost, count, nil
}

// CountPaidTablesForEmployee counts paid journal entries written by the
// employee, one per completed table cycle.
func (r *Repository) CountPaidTablesForEmployee(ctx context.Context, from time.Time, employeeID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM journal
        WHERE id_employee = $1 AND table_status = 'paid' AND time > $2
    `
	var count int
	err := r.db.QueryRow(ctx, query, employeeID, from).Scan(&count)
	if err != nil {
		zap.L().Error("can't count paid tables", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FeedbackForEmployeeSince(ctx context.Context, from time.Time, employeeID int) ([]domain.Feedback, error) {
	query := `
        SELECT f.id, f.id_journal_entry, f.rating, COALESCE(f.comment, ''), f.time
        FROM feedback f
        JOIN journal j ON j.id = f.id_journal_entry
        WHERE j.id_employee = $1 AND f.time > $2
        ORDER BY f.time DESC
    `
	rows, err := r.db.Query(ctx, query, employeeID, from)
	if err != nil {
		zap.L().Error("can't get feedback", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var feedbacks []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		err := rows.Scan(&fb.ID, &fb.JournalEntryID, &fb.Rating, &fb.Comment, &fb.Time)
		if err != nil {
			zap.L().Error("can't scan feedback row", zap.Error(err))
			return nil, err
		}
		feedbacks = append(feedbacks, fb)
	}
	return feedbacks, nil
}
