package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCreateWallet(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Wallet seeded with zero balance", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, EmployeeID: 1, Balance: 0}, nil)

		wallet, err := service.CreateWallet(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, wallet.Balance)
	})

	t.Run("Storage error", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), 1).Return(nil, errors.New("db error"))

		_, err := service.CreateWallet(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestGetBalance(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Balance returned", func(t *testing.T) {
		repo.EXPECT().FindByEmployeeID(gomock.Any(), 1).Return(&domain.Wallet{EmployeeID: 1, Balance: 150.5}, nil)

		balance, err := service.GetBalance(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 150.5, balance)
	})

	t.Run("No wallet", func(t *testing.T) {
		repo.EXPECT().FindByEmployeeID(gomock.Any(), 1).Return(nil, nil)

		_, err := service.GetBalance(context.Background(), 1)
		assert.Error(t, err)
		assert.Equal(t, "employee has no tip wallet", err.Error())
	})
}

func TestWithdraw(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		amount        float64
		prepareMock   func()
		expectedError string
	}{
		{
			name:   "Successful withdrawal",
			amount: 100,
			prepareMock: func() {
				repo.EXPECT().Withdraw(gomock.Any(), 1, 100.0).Return(nil)
			},
		},
		{
			name:          "Zero amount rejected",
			amount:        0,
			expectedError: "withdrawal amount must be positive",
		},
		{
			name:          "Negative amount rejected",
			amount:        -5,
			expectedError: "withdrawal amount must be positive",
		},
		{
			name:   "Insufficient funds surfaces the storage message",
			amount: 100,
			prepareMock: func() {
				repo.EXPECT().Withdraw(gomock.Any(), 1, 100.0).Return(&pgconn.PgError{
					Code:    "P0001",
					Message: "insufficient funds",
				})
			},
			expectedError: "insufficient funds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Withdraw(context.Background(), 1, tt.amount)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
