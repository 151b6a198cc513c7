package employeerepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Employee, error) {
	query := `
        SELECT id, name, position, code_hash
        FROM employees
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var employee domain.Employee
	err := row.Scan(&employee.ID, &employee.Name, &employee.Position, &employee.CodeHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find employee", zap.Error(err))
		return nil, err
	}
	return &employee, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	query := `
        SELECT id, name, position, code_hash
        FROM employees
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get employees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var employee domain.Employee
		err := rows.Scan(&employee.ID, &employee.Name, &employee.Position, &employee.CodeHash)
		if err != nil {
			zap.L().Error("can't scan employee row", zap.Error(err))
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, nil
}

func (r *Repository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	query := `
        INSERT INTO employees (name, position, code_hash)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, employee.Name, employee.Position, employee.CodeHash).Scan(&employee.ID)
	if err != nil {
		zap.L().Error("can't save employee", zap.Error(err))
		return nil, err
	}
	return employee, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM employees
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete employee", zap.Error(err))
		return err
	}
	return nil
}
