package reportrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_SumOrdersSince(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Totals aggregated", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(d.cost), 0), COALESCE(SUM(d.prime_cost), 0), COUNT(o.id)`)).
			WithArgs(from).
			WillReturnRows(pgxmock.NewRows([]string{"cost", "prime_cost", "count"}).AddRow(54000.0, 21000.0, 36))

		cost, primeCost, count, err := repo.SumOrdersSince(context.Background(), from)
		assert.NoError(t, err)
		assert.Equal(t, 54000.0, cost)
		assert.Equal(t, 21000.0, primeCost)
		assert.Equal(t, 36, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(d.cost), 0)`)).
			WithArgs(from).
			WillReturnError(errors.New("database error"))

		_, _, _, err := repo.SumOrdersSince(context.Background(), from)
		assert.Error(t, err)
	})
}

func TestRepository_CountPaidOrdersSince(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(oib.id_order)`)).
		WithArgs(from).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(30))

	count, err := repo.CountPaidOrdersSince(context.Background(), from)
	assert.NoError(t, err)
	assert.Equal(t, 30, count)
}

func TestRepository_SumOrdersSinceByEmployee(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(d.cost), 0), COUNT(o.id)`)).
		WithArgs(from, 3).
		WillReturnRows(pgxmock.NewRows([]string{"cost", "count"}).AddRow(18000.0, 12))

	cost, count, err := repo.SumOrdersSinceByEmployee(context.Background(), from, 3)
	assert.NoError(t, err)
	assert.Equal(t, 18000.0, cost)
	assert.Equal(t, 12, count)
}

func TestRepository_CountPaidTablesForEmployee(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COUNT(*)
        FROM journal
        WHERE id_employee = $1 AND table_status = 'paid' AND time > $2
    `)).
		WithArgs(3, from).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountPaidTablesForEmployee(context.Background(), from, 3)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestRepository_FeedbackForEmployeeSince(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "id_journal_entry", "rating", "comment", "time"}).
		AddRow(1, 42, 5, "great service", now).
		AddRow(2, 43, 4, "", now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT f.id, f.id_journal_entry, f.rating, COALESCE(f.comment, ''), f.time`)).
		WithArgs(3, from).
		WillReturnRows(rows)

	feedbacks, err := repo.FeedbackForEmployeeSince(context.Background(), from, 3)
	assert.NoError(t, err)
	assert.Len(t, feedbacks, 2)
	assert.Equal(t, "great service", feedbacks[0].Comment)
	assert.Empty(t, feedbacks[1].Comment)
}
