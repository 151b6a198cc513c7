package walletservice

import (
	"context"

	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmployeeID(ctx context.Context, employeeID int) (*domain.Wallet, error)
	Create(ctx context.Context, employeeID int) (*domain.Wallet, error)
	Withdraw(ctx context.Context, employeeID int, amount float64) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateWallet(ctx context.Context, employeeID int) (*domain.Wallet, error) {
	wallet, err := s.repo.Create(ctx, employeeID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetBalance(ctx context.Context, employeeID int) (float64, error) {
	wallet, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return 0, err
	}
	if wallet == nil {
		return 0, apperrors.Validation("employee has no tip wallet")
	}
	return wallet.Balance, nil
}

// Withdraw delegates to the atomic storage debit; insufficient funds come
// back as a validation error with the storage message.
func (s *Service) Withdraw(ctx context.Context, employeeID int, amount float64) error {
	if amount <= 0 {
		return apperrors.Validation("withdrawal amount must be positive")
	}
	if err := s.repo.Withdraw(ctx, employeeID, amount); err != nil {
		return apperrors.FromStorage(err)
	}
	return nil
}
