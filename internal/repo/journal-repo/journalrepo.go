package journalrepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) FindLastByTable(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error) {
	query := `
        SELECT id, table_number, table_status, id_employee, time
        FROM journal
        WHERE table_number = $1
        ORDER BY id DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, table)

	var entry domain.JournalEntry
	err := row.Scan(&entry.ID, &entry.TableNumber, &entry.TableStatus, &entry.EmployeeID, &entry.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find last journal entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) FindLastOccupiedByTable(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error) {
	query := `
        SELECT id, table_number, table_status, id_employee, time
        FROM journal
        WHERE table_number = $1 AND table_status = 'occupied'
        ORDER BY id DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, table)

	var entry domain.JournalEntry
	err := row.Scan(&entry.ID, &entry.TableNumber, &entry.TableStatus, &entry.EmployeeID, &entry.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find last occupied journal entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.JournalEntry, error) {
	query := `
        SELECT id, table_number, table_status, id_employee, time
        FROM journal
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var entry domain.JournalEntry
	err := row.Scan(&entry.ID, &entry.TableNumber, &entry.TableStatus, &entry.EmployeeID, &entry.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find journal entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) FindSince(ctx context.Context, from time.Time) ([]domain.JournalEntry, error) {
	query := `
        SELECT id, table_number, table_status, id_employee, time
        FROM journal
        WHERE time >= $1
        ORDER BY time DESC
    `
	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		zap.L().Error("can't get journal entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var entry domain.JournalEntry
		err := rows.Scan(&entry.ID, &entry.TableNumber, &entry.TableStatus, &entry.EmployeeID, &entry.Time)
		if err != nil {
			zap.L().Error("can't scan journal row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Create appends a journal entry through the add_journal_entry function and
// reads the written row back. Prior entries are never touched.
func (r *Repository) Create(ctx context.Context, employeeID int, table domain.TableNumber, status domain.TableStatus) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var id int
		err := r.db.QueryRow(ctx, `SELECT add_journal_entry($1, $2, $3)`, employeeID, table, status).Scan(&id)
		if err != nil {
			zap.L().Error("can't create journal entry", zap.Error(err))
			return err
		}
		entry, err = r.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ReassignEmployee is the single permitted in-place mutation: changing the
// responsible employee on the latest entry of a table.
func (r *Repository) ReassignEmployee(ctx context.Context, entryID, employeeID int) error {
	query := `
        UPDATE journal
        SET id_employee = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, employeeID, entryID)
	if err != nil {
		zap.L().Error("can't reassign journal employee", zap.Error(err))
		return err
	}
	return nil
}

const lockTimeout = "3s"

// WithTableLock serializes fn against every other table-scoped operation on
// the same table. The advisory lock is transaction-scoped, so the whole
// read-validate-write sequence inside fn holds it; a waiter that exceeds
// lock_timeout fails with 55P03 instead of hanging.
func (r *Repository) WithTableLock(ctx context.Context, table domain.TableNumber, fn func(ctx context.Context) error) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `SET LOCAL lock_timeout = '`+lockTimeout+`'`); err != nil {
			zap.L().Error("can't set lock timeout", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, table); err != nil {
			zap.L().Error("can't acquire table lock", zap.String("table", string(table)), zap.Error(err))
			return err
		}
		return fn(ctx)
	})
}
