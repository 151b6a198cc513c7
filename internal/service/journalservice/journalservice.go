package journalservice

import (
	"context"
	"time"

	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindLastByTable(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error)
	FindLastOccupiedByTable(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error)
	FindByID(ctx context.Context, id int) (*domain.JournalEntry, error)
	FindSince(ctx context.Context, from time.Time) ([]domain.JournalEntry, error)
	Create(ctx context.Context, employeeID int, table domain.TableNumber, status domain.TableStatus) (*domain.JournalEntry, error)
	ReassignEmployee(ctx context.Context, entryID, employeeID int) error
	WithTableLock(ctx context.Context, table domain.TableNumber, fn func(ctx context.Context) error) error
}

type OrderRepo interface {
	CountBySession(ctx context.Context, sessionID int) (int, error)
}

type EmployeeRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Employee, error)
}

type Service struct {
	repo         Repo
	orderRepo    OrderRepo
	employeeRepo EmployeeRepo
}

func New(repo Repo, orderRepo OrderRepo, employeeRepo EmployeeRepo) *Service {
	return &Service{
		repo:         repo,
		orderRepo:    orderRepo,
		employeeRepo: employeeRepo,
	}
}

// Transition validates the requested table status against the current one and
// appends a journal entry. The whole read-validate-write runs under the
// per-table lock, so two concurrent callers cannot both observe the same
// current status and both write.
//
// Rule table (current -> requested):
//
//	occupied  requires free
//	not_paid  requires occupied
//	paid      requires not_paid
//	free      requires paid, or occupied with zero session orders
//
// A table with no history accepts only free (bootstrap seeding).
func (s *Service) Transition(ctx context.Context, employeeID int, table domain.TableNumber, status domain.TableStatus) (*domain.JournalEntry, error) {
	if !table.Valid() {
		return nil, apperrors.Validation("unknown table number: %s", table)
	}
	if !status.Valid() {
		return nil, apperrors.Validation("unknown table status: %s", status)
	}

	var entry *domain.JournalEntry
	err := s.repo.WithTableLock(ctx, table, func(ctx context.Context) error {
		current, err := s.repo.FindLastByTable(ctx, table)
		if err != nil {
			return err
		}
		if current == nil && status != domain.TableFree {
			return apperrors.Validation("this table has no journal records")
		}
		if current != nil {
			if err := s.validateTransition(ctx, current, status); err != nil {
				return err
			}
		}
		entry, err = s.repo.Create(ctx, employeeID, table, status)
		return err
	})
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}

	zap.L().Info("table transition recorded",
		zap.String("table", string(table)),
		zap.String("status", string(status)),
		zap.Int("employee_id", employeeID))
	return entry, nil
}

func (s *Service) validateTransition(ctx context.Context, current *domain.JournalEntry, requested domain.TableStatus) error {
	switch requested {
	case domain.TableFree:
		if current.TableStatus == domain.TableOccupied {
			count, err := s.orderRepo.CountBySession(ctx, current.ID)
			if err != nil {
				return err
			}
			if count > 0 {
				return apperrors.Validation("cannot free a table that has orders in the current session")
			}
			return nil
		}
		if current.TableStatus != domain.TablePaid {
			return apperrors.Validation("table must be paid before freeing")
		}
	case domain.TableOccupied:
		if current.TableStatus != domain.TableFree {
			return apperrors.Validation("table must be free before it can be occupied")
		}
	case domain.TableNotPaid:
		if current.TableStatus != domain.TableOccupied {
			return apperrors.Validation("table must be occupied before a bill is drawn up")
		}
	case domain.TablePaid:
		if current.TableStatus != domain.TableNotPaid {
			return apperrors.Validation("table must have an unpaid bill before it is marked paid")
		}
	}
	return nil
}

// GetTableStatus returns the status of the table's latest journal entry.
func (s *Service) GetTableStatus(ctx context.Context, table domain.TableNumber) (domain.TableStatus, error) {
	if !table.Valid() {
		return "", apperrors.Validation("unknown table number: %s", table)
	}
	entry, err := s.repo.FindLastByTable(ctx, table)
	if err != nil {
		return "", err
	}
	if entry == nil {
		return "", apperrors.Validation("this table has no journal records")
	}
	return entry.TableStatus, nil
}

// GetTableStatuses reports every physical table; tables with no history map
// to an empty status.
func (s *Service) GetTableStatuses(ctx context.Context) (map[domain.TableNumber]domain.TableStatus, error) {
	statuses := make(map[domain.TableNumber]domain.TableStatus, len(domain.TableNumbers()))
	for _, table := range domain.TableNumbers() {
		entry, err := s.repo.FindLastByTable(ctx, table)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			statuses[table] = ""
			continue
		}
		statuses[table] = entry.TableStatus
	}
	return statuses, nil
}

// GetOwner resolves the employee responsible for the table: the one recorded
// on the latest journal entry. Returns nil when the table has no history.
func (s *Service) GetOwner(ctx context.Context, table domain.TableNumber) (*domain.Employee, error) {
	if !table.Valid() {
		return nil, apperrors.Validation("unknown table number: %s", table)
	}
	entry, err := s.repo.FindLastByTable(ctx, table)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return s.employeeRepo.FindByID(ctx, entry.EmployeeID)
}

// ReassignEmployee swaps the responsible employee on the latest entry of a
// table without touching its status.
func (s *Service) ReassignEmployee(ctx context.Context, employeeID int, table domain.TableNumber) error {
	if !table.Valid() {
		return apperrors.Validation("unknown table number: %s", table)
	}
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperrors.NotFound("employee")
	}
	entry, err := s.repo.FindLastByTable(ctx, table)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperrors.Validation("this table has no journal records")
	}
	return s.repo.ReassignEmployee(ctx, entry.ID, employeeID)
}

func (s *Service) GetEntriesForHours(ctx context.Context, hours int) ([]domain.JournalEntry, error) {
	if hours <= 0 {
		return nil, apperrors.Validation("hours must be positive")
	}
	return s.repo.FindSince(ctx, time.Now().Add(-time.Duration(hours)*time.Hour))
}

// GetLastEntry and GetLastOccupiedEntry expose the raw journal tail for the
// bill and order services.
func (s *Service) GetLastEntry(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error) {
	return s.repo.FindLastByTable(ctx, table)
}

func (s *Service) GetLastOccupiedEntry(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error) {
	return s.repo.FindLastOccupiedByTable(ctx, table)
}

func (s *Service) WithTableLock(ctx context.Context, table domain.TableNumber, fn func(ctx context.Context) error) error {
	return s.repo.WithTableLock(ctx, table, fn)
}
