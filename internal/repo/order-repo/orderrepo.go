package orderrepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT id, id_journal_entry, id_dish, guest_number, order_status, time
        FROM orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var order domain.Order
	err := row.Scan(&order.ID, &order.JournalEntryID, &order.DishID, &order.GuestNumber, &order.Status, &order.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT id, id_journal_entry, id_dish, guest_number, order_status, time
        FROM orders
        ORDER BY time DESC
    `
	return r.queryOrders(ctx, query)
}

func (r *Repository) FindBySession(ctx context.Context, sessionID int) ([]domain.Order, error) {
	query := `
        SELECT id, id_journal_entry, id_dish, guest_number, order_status, time
        FROM orders
        WHERE id_journal_entry = $1
        ORDER BY time ASC
    `
	return r.queryOrders(ctx, query, sessionID)
}

func (r *Repository) CountBySession(ctx context.Context, sessionID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM orders
        WHERE id_journal_entry = $1
    `
	var count int
	err := r.db.QueryRow(ctx, query, sessionID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count session orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id_journal_entry, id_dish, guest_number, order_status, time)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, order.JournalEntryID, order.DishID, order.GuestNumber, order.Status, order.Time).Scan(&order.ID)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// UpdateStatus advances the order only while its status still matches the
// snapshot the caller validated against. The false return means a concurrent
// transition got there first.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to domain.OrderStatus) (bool, error) {
	query := `
        UPDATE orders
        SET order_status = $1
        WHERE id = $2 AND order_status = $3
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, to, id, from)
		if err != nil {
			zap.L().Error("can't update order status", zap.Error(err))
			return err
		}
		updated = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (r *Repository) UpdateGuestNumber(ctx context.Context, id int, guestNumber int16) error {
	query := `
        UPDATE orders
        SET guest_number = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, guestNumber, id)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM orders
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IsInBill(ctx context.Context, id int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM orders_in_bill WHERE id_order = $1
        )
    `
	var inBill bool
	err := r.db.QueryRow(ctx, query, id).Scan(&inBill)
	if err != nil {
		zap.L().Error("can't check order bill link", zap.Error(err))
		return false, err
	}
	return inBill, nil
}

func (r *Repository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.JournalEntryID, &order.DishID, &order.GuestNumber, &order.Status, &order.Time)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
