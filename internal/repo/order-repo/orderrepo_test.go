package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/internal/pg"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Order returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "id_journal_entry", "id_dish", "guest_number", "order_status", "time"}).
					AddRow(15, 10, 7, int16(1), domain.OrderAccepted, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, id_journal_entry, id_dish, guest_number, order_status, time
        FROM orders
        WHERE id = $1
    `)).
					WithArgs(15).
					WillReturnRows(rows)
			},
			result: &domain.Order{
				ID:             15,
				JournalEntryID: 10,
				DishID:         7,
				GuestNumber:    1,
				Status:         domain.OrderAccepted,
				Time:           now,
			},
		},
		{
			name: "Missing order returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, id_journal_entry, id_dish, guest_number, order_status, time`)).
					WithArgs(15).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, id_journal_entry, id_dish, guest_number, order_status, time`)).
					WithArgs(15).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), 15)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	now := time.Now()

	t.Run("Order inserted and id assigned", func(t *testing.T) {
		passThroughTx(txManager)
		mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO orders (id_journal_entry, id_dish, guest_number, order_status, time)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `)).
			WithArgs(10, 7, int16(1), domain.OrderAccepted, now).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(15))

		order := &domain.Order{JournalEntryID: 10, DishID: 7, GuestNumber: 1, Status: domain.OrderAccepted, Time: now}
		assert.NoError(t, repo.Save(context.Background(), order))
		assert.Equal(t, 15, order.ID)
	})

	t.Run("Insert failure propagates", func(t *testing.T) {
		passThroughTx(txManager)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders`)).
			WithArgs(10, 7, int16(1), domain.OrderAccepted, now).
			WillReturnError(errors.New("database error"))

		order := &domain.Order{JournalEntryID: 10, DishID: 7, GuestNumber: 1, Status: domain.OrderAccepted, Time: now}
		assert.Error(t, repo.Save(context.Background(), order))
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	t.Run("Status advanced from the expected snapshot", func(t *testing.T) {
		passThroughTx(txManager)
		mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE orders
        SET order_status = $1
        WHERE id = $2 AND order_status = $3
    `)).
			WithArgs(domain.OrderCooked, 15, domain.OrderAccepted).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		updated, err := repo.UpdateStatus(context.Background(), 15, domain.OrderAccepted, domain.OrderCooked)
		assert.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("Stale snapshot updates nothing", func(t *testing.T) {
		passThroughTx(txManager)
		mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE orders
        SET order_status = $1
        WHERE id = $2 AND order_status = $3
    `)).
			WithArgs(domain.OrderCooked, 15, domain.OrderAccepted).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		updated, err := repo.UpdateStatus(context.Background(), 15, domain.OrderAccepted, domain.OrderCooked)
		assert.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestRepository_UpdateGuestNumber(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	passThroughTx(txManager)
	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE orders
        SET guest_number = $1
        WHERE id = $2
    `)).
		WithArgs(int16(3), 15).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateGuestNumber(context.Background(), 15, 3))
}

func TestRepository_FindBySession(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "id_journal_entry", "id_dish", "guest_number", "order_status", "time"}).
		AddRow(15, 10, 7, int16(1), domain.OrderAccepted, now).
		AddRow(16, 10, 8, int16(2), domain.OrderCooked, now.Add(time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, id_journal_entry, id_dish, guest_number, order_status, time
        FROM orders
        WHERE id_journal_entry = $1
        ORDER BY time ASC
    `)).
		WithArgs(10).
		WillReturnRows(rows)

	orders, err := repo.FindBySession(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, 15, orders[0].ID)
	assert.Equal(t, domain.OrderCooked, orders[1].Status)
}

func TestRepository_CountBySession(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COUNT(*)
        FROM orders
        WHERE id_journal_entry = $1
    `)).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountBySession(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        DELETE FROM orders
        WHERE id = $1
    `)).
		WithArgs(15).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 15))
}

func TestRepository_IsInBill(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Billed order", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
			WithArgs(15).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		inBill, err := repo.IsInBill(context.Background(), 15)
		assert.NoError(t, err)
		assert.True(t, inBill)
	})

	t.Run("Unbilled order", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
			WithArgs(15).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		inBill, err := repo.IsInBill(context.Background(), 15)
		assert.NoError(t, err)
		assert.False(t, inBill)
	})
}
