package dishservice

import (
	"context"
	"testing"

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

func TestCreateDish(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		dishName      string
		cost          float64
		primeCost     float64
		prepareMock   func()
		expectedError string
	}{
		{
			name:      "Dish created",
			dishName:  "Borscht",
			cost:      450,
			primeCost: 180,
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), &domain.Dish{Name: "Borscht", Cost: 450, PrimeCost: 180}).
					Return(&domain.Dish{ID: 7, Name: "Borscht", Cost: 450, PrimeCost: 180}, nil)
			},
		},
		{
			name:          "Empty name rejected",
			dishName:      "",
			cost:          450,
			expectedError: "dish name is required",
		},
		{
			name:          "Negative cost rejected",
			dishName:      "Borscht",
			cost:          -1,
			expectedError: "dish cost must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			dish, err := service.CreateDish(context.Background(), tt.dishName, tt.cost, tt.primeCost)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, dish.ID)
			}
		})
	}
}

func TestChangeCost(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Existing dish updated", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Dish{ID: 7}, nil)
		repo.EXPECT().UpdateCost(gomock.Any(), 7, 500.0).Return(nil)

		assert.NoError(t, service.ChangeCost(context.Background(), 7, 500))
	})

	t.Run("Missing dish", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)

		err := service.ChangeCost(context.Background(), 7, 500)
		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("Negative cost rejected", func(t *testing.T) {
		err := service.ChangeCost(context.Background(), 7, -1)
		assert.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestGetDish(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Dish{ID: 7, Name: "Borscht"}, nil)

		dish, err := service.GetDish(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, "Borscht", dish.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)

		_, err := service.GetDish(context.Background(), 7)
		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestDeleteDish(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Existing dish deleted", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Dish{ID: 7}, nil)
		repo.EXPECT().Delete(gomock.Any(), 7).Return(nil)

		assert.NoError(t, service.DeleteDish(context.Background(), 7))
	})

	t.Run("Missing dish", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)

		err := service.DeleteDish(context.Background(), 7)
		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
