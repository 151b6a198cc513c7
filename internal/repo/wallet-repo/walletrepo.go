package walletrepo

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

func (r *Repository) FindByEmployeeID(ctx context.Context, employeeID int) (*domain.Wallet, error) {
	query := `
        SELECT id, id_employee, balance
        FROM wallet
        WHERE id_employee = $1
    `
	row := r.db.QueryRow(ctx, query, employeeID)

	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.EmployeeID, &wallet.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, employeeID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallet (id_employee, balance)
        VALUES ($1, 0)
        RETURNING id, id_employee, balance
    `
	row := r.db.QueryRow(ctx, query, employeeID)

	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.EmployeeID, &wallet.Balance)
	if err != nil {
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Withdraw delegates to the atomic wallet_withdraw function, which fails with
// a domain message when funds are insufficient.
func (r *Repository) Withdraw(ctx context.Context, employeeID int, amount float64) error {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `SELECT wallet_withdraw($1, $2)`, employeeID, amount)
		if err != nil {
			zap.L().Error("can't withdraw from wallet", zap.Int("employee_id", employeeID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
