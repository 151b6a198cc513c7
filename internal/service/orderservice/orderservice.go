package orderservice

import (
	"context"
	"time"

	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindBySession(ctx context.Context, sessionID int) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, id int, from, to domain.OrderStatus) (bool, error)
	UpdateGuestNumber(ctx context.Context, id int, guestNumber int16) error
	Delete(ctx context.Context, id int) error
	IsInBill(ctx context.Context, id int) (bool, error)
}

type DishRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Dish, error)
}

type Journal interface {
	GetLastEntry(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error)
	GetLastOccupiedEntry(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error)
	WithTableLock(ctx context.Context, table domain.TableNumber, fn func(ctx context.Context) error) error
}

// Events feeds the kitchen displays. A nil publisher disables the feed.
type Events interface {
	OrderCreated(ctx context.Context, order *domain.Order, table domain.TableNumber) error
	OrderStatusChanged(ctx context.Context, order *domain.Order) error
}

type Service struct {
	repo     Repo
	dishRepo DishRepo
	journal  Journal
	events   Events
}

func New(repo Repo, dishRepo DishRepo, journal Journal, events Events) *Service {
	return &Service{
		repo:     repo,
		dishRepo: dishRepo,
		journal:  journal,
		events:   events,
	}
}

// Create places an order against the table's current occupancy session.
func (s *Service) Create(ctx context.Context, table domain.TableNumber, dishID int, guestNumber int16) (*domain.Order, error) {
	if !table.Valid() {
		return nil, apperrors.Validation("unknown table number: %s", table)
	}

	var order *domain.Order
	err := s.journal.WithTableLock(ctx, table, func(ctx context.Context) error {
		entry, err := s.journal.GetLastEntry(ctx, table)
		if err != nil {
			return err
		}
		if entry == nil {
			return apperrors.Validation("this table has no journal records")
		}
		if entry.TableStatus != domain.TableOccupied {
			return apperrors.Validation("orders can only be placed for an occupied table")
		}

		dish, err := s.dishRepo.FindByID(ctx, dishID)
		if err != nil {
			return err
		}
		if dish == nil {
			return apperrors.Validation("dish with the given id not found")
		}

		order = &domain.Order{
			JournalEntryID: entry.ID,
			DishID:         dishID,
			GuestNumber:    guestNumber,
			Status:         domain.OrderAccepted,
			Time:           time.Now(),
		}
		return s.repo.Save(ctx, order)
	})
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}

	s.publishCreated(ctx, order, table)
	return order, nil
}

// ChangeStatus applies the role permission table; admin bypasses it entirely.
func (s *Service) ChangeStatus(ctx context.Context, orderID int, newStatus domain.OrderStatus, role domain.Position) (*domain.Order, error) {
	if !newStatus.Valid() {
		return nil, apperrors.Validation("unknown order status: %s", newStatus)
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("order")
	}

	if !CanChangeStatus(role, order.Status, newStatus) {
		return nil, permissionError(role)
	}

	// The write is conditional on the status the permission check saw; zero
	// rows means a concurrent transition won and the caller should retry.
	updated, err := s.repo.UpdateStatus(ctx, orderID, order.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.ErrConflict
	}
	order.Status = newStatus

	s.publishStatusChanged(ctx, order)
	return order, nil
}

// CanChangeStatus is the permission rule table as a pure function.
func CanChangeStatus(role domain.Position, from, to domain.OrderStatus) bool {
	switch role {
	case domain.PositionAdmin:
		return true
	case domain.PositionCook, domain.PositionBarman:
		return from == domain.OrderAccepted && to == domain.OrderCooked
	case domain.PositionWaiter:
		return from == domain.OrderCooked && to == domain.OrderDelivered
	}
	return false
}

func permissionError(role domain.Position) error {
	switch role {
	case domain.PositionCook, domain.PositionBarman:
		return apperrors.Validation("a cook or barman may only move an order from accepted to cooked")
	case domain.PositionWaiter:
		return apperrors.Validation("a waiter may only move an order from cooked to delivered")
	}
	return apperrors.Validation("no permission to change order status")
}

// Modify changes the guest number; every other field is immutable after
// creation.
func (s *Service) Modify(ctx context.Context, orderID int, guestNumber int16) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("order")
	}

	if err := s.repo.UpdateGuestNumber(ctx, orderID, guestNumber); err != nil {
		return nil, err
	}
	order.GuestNumber = guestNumber
	return order, nil
}

func (s *Service) Delete(ctx context.Context, orderID int) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperrors.NotFound("order")
	}

	inBill, err := s.repo.IsInBill(ctx, orderID)
	if err != nil {
		return err
	}
	if inBill {
		return apperrors.Validation("cannot delete a billed order")
	}
	return s.repo.Delete(ctx, orderID)
}

func (s *Service) GetByID(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("order")
	}
	return order, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

// GetForTable returns the orders of the table's current session. Mid-checkout
// (not_paid or paid) the session of interest is the last occupied one.
func (s *Service) GetForTable(ctx context.Context, table domain.TableNumber) ([]domain.Order, error) {
	if !table.Valid() {
		return nil, apperrors.Validation("unknown table number: %s", table)
	}
	entry, err := s.journal.GetLastEntry(ctx, table)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperrors.Validation("this table has no journal records")
	}
	if entry.TableStatus != domain.TableOccupied && entry.TableStatus != domain.TableFree {
		entry, err = s.journal.GetLastOccupiedEntry(ctx, table)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, apperrors.Validation("no occupancy session found for this table")
		}
	}
	return s.repo.FindBySession(ctx, entry.ID)
}

func (s *Service) publishCreated(ctx context.Context, order *domain.Order, table domain.TableNumber) {
	if s.events == nil {
		return
	}
	if err := s.events.OrderCreated(ctx, order, table); err != nil {
		zap.L().Warn("can't publish order created event", zap.Int("order_id", order.ID), zap.Error(err))
	}
}

func (s *Service) publishStatusChanged(ctx context.Context, order *domain.Order) {
	if s.events == nil {
		return
	}
	if err := s.events.OrderStatusChanged(ctx, order); err != nil {
		zap.L().Warn("can't publish order status event", zap.Int("order_id", order.ID), zap.Error(err))
	}
}
