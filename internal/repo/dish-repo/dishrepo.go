package dishrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Dish, error) {
	query := `
        SELECT id, name, cost, prime_cost
        FROM dishes
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var dish domain.Dish
	err := row.Scan(&dish.ID, &dish.Name, &dish.Cost, &dish.PrimeCost)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find dish", zap.Error(err))
		return nil, err
	}
	return &dish, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Dish, error) {
	query := `
        SELECT id, name, cost, prime_cost
        FROM dishes
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get dishes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		err := rows.Scan(&dish.ID, &dish.Name, &dish.Cost, &dish.PrimeCost)
		if err != nil {
			zap.L().Error("can't scan dish row", zap.Error(err))
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (r *Repository) Create(ctx context.Context, dish *domain.Dish) (*domain.Dish, error) {
	query := `
        INSERT INTO dishes (name, cost, prime_cost)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, dish.Name, dish.Cost, dish.PrimeCost).Scan(&dish.ID)
	if err != nil {
		zap.L().Error("can't save dish", zap.Error(err))
		return nil, err
	}
	return dish, nil
}

func (r *Repository) UpdateCost(ctx context.Context, id int, cost float64) error {
	query := `
        UPDATE dishes
        SET cost = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, cost, id)
	if err != nil {
		zap.L().Error("can't update dish cost", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM dishes
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete dish", zap.Error(err))
		return err
	}
	return nil
}
