package dishservice

import (
	"context"

	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Dish, error)
	FindAll(ctx context.Context) ([]domain.Dish, error)
	Create(ctx context.Context, dish *domain.Dish) (*domain.Dish, error)
	UpdateCost(ctx context.Context, id int, cost float64) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	dish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, apperrors.NotFound("dish")
	}
	return dish, nil
}

func (s *Service) GetDishes(ctx context.Context) ([]domain.Dish, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) CreateDish(ctx context.Context, name string, cost, primeCost float64) (*domain.Dish, error) {
	if name == "" {
		return nil, apperrors.Validation("dish name is required")
	}
	if cost < 0 || primeCost < 0 {
		return nil, apperrors.Validation("dish cost must not be negative")
	}
	dish := &domain.Dish{
		Name:      name,
		Cost:      cost,
		PrimeCost: primeCost,
	}
	created, err := s.repo.Create(ctx, dish)
	if err != nil {
		zap.L().Error("failed to create dish", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) ChangeCost(ctx context.Context, id int, cost float64) error {
	if cost < 0 {
		return apperrors.Validation("dish cost must not be negative")
	}
	dish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if dish == nil {
		return apperrors.NotFound("dish")
	}
	return s.repo.UpdateCost(ctx, id, cost)
}

func (s *Service) DeleteDish(ctx context.Context, id int) error {
	dish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if dish == nil {
		return apperrors.NotFound("dish")
	}
	return s.repo.Delete(ctx, id)
}
