package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWalletService, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	walletService := NewMockWalletService(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, walletService, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, walletService, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, repo, walletService, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		position      domain.Position
		prepareMock   func()
		expectedError string
	}{
		{
			name:     "Waiter registered with wallet and code",
			position: domain.PositionWaiter,
			prepareMock: func() {
				hashService.EXPECT().HashPassword(gomock.Any()).DoAndReturn(
					func(code string) (string, error) {
						assert.Len(t, code, 3)
						return "hashed", nil
					})
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
						assert.Equal(t, "hashed", employee.CodeHash)
						created := *employee
						created.ID = 5
						return &created, nil
					})
				walletService.EXPECT().CreateWallet(gomock.Any(), 5).Return(&domain.Wallet{EmployeeID: 5}, nil)
			},
		},
		{
			name:          "Unknown position rejected",
			position:      domain.Position("manager"),
			expectedError: "unknown position: manager",
		},
		{
			name:     "Hashing failure",
			position: domain.PositionCook,
			prepareMock: func() {
				hashService.EXPECT().HashPassword(gomock.Any()).Return("", errors.New("bcrypt failure"))
			},
			expectedError: "bcrypt failure",
		},
		{
			name:     "Wallet seeding failure",
			position: domain.PositionCook,
			prepareMock: func() {
				hashService.EXPECT().HashPassword(gomock.Any()).Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Employee{ID: 6}, nil)
				walletService.EXPECT().CreateWallet(gomock.Any(), 6).Return(nil, errors.New("wallet error"))
			},
			expectedError: "wallet error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			employee, code, err := service.Register(context.Background(), "Anna", tt.position)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, employee.ID)
				assert.Len(t, code, 3)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, repo, _, hashService, _ := NewMock(t)
	employee := &domain.Employee{ID: 1, Name: "Anna", Position: domain.PositionWaiter, CodeHash: "hashed"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError bool
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(employee, nil)
				hashService.EXPECT().ComparePassword("hashed", "042").Return(true)
			},
		},
		{
			name: "Wrong code",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(employee, nil)
				hashService.EXPECT().ComparePassword("hashed", "042").Return(false)
			},
			expectedError: true,
		},
		{
			name: "Unknown employee",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.Authenticate(context.Background(), 1, "042")
			if tt.expectedError {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Equal(t, "invalid credentials", err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, employee, got)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(1, "waiter", gomock.Any()).DoAndReturn(
		func(_ int, _ string, expirationTime time.Time) (string, error) {
			assert.WithinDuration(t, time.Now().Add(24*time.Hour), expirationTime, time.Minute)
			return "token", nil
		})

	token, err := service.GenerateToken(1, domain.PositionWaiter)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestDeleteEmployee(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	t.Run("Existing employee deleted", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Employee{ID: 2}, nil)
		repo.EXPECT().Delete(gomock.Any(), 2).Return(nil)

		assert.NoError(t, service.DeleteEmployee(context.Background(), 2))
	})

	t.Run("Missing employee", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)

		err := service.DeleteEmployee(context.Background(), 2)
		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
