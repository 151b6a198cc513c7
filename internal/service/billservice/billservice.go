package billservice

import (
	"context"
	"math"

	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	CreateForSession(ctx context.Context, sessionID int, guests int16) (int, error)
	FindByID(ctx context.Context, id int) (*domain.Bill, error)
	MarkAsPaid(ctx context.Context, id int) (bool, error)
	FindTableByBillID(ctx context.Context, id int) (domain.TableNumber, error)
	CountOpenBillsForTable(ctx context.Context, table domain.TableNumber) (int, error)
	CountUnbilledOrdersForTable(ctx context.Context, table domain.TableNumber) (int, error)
}

type Journal interface {
	GetLastEntry(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error)
	GetLastOccupiedEntry(ctx context.Context, table domain.TableNumber) (*domain.JournalEntry, error)
	Transition(ctx context.Context, employeeID int, table domain.TableNumber, status domain.TableStatus) (*domain.JournalEntry, error)
	WithTableLock(ctx context.Context, table domain.TableNumber, fn func(ctx context.Context) error) error
}

type Service struct {
	repo    Repo
	journal Journal
}

func New(repo Repo, journal Journal) *Service {
	return &Service{
		repo:    repo,
		journal: journal,
	}
}

// CreateBill resolves the occupancy session, moves the table to not_paid
// (unless it already is) and asks storage to aggregate that session's
// unbilled orders into an open bill. The table lock spans status resolution,
// the transition and the aggregation, so two concurrent checkouts cannot
// both bill the same orders.
func (s *Service) CreateBill(ctx context.Context, table domain.TableNumber, guests int16) (int, error) {
	if !table.Valid() {
		return 0, apperrors.Validation("unknown table number: %s", table)
	}

	var billID int
	err := s.journal.WithTableLock(ctx, table, func(ctx context.Context) error {
		last, err := s.journal.GetLastEntry(ctx, table)
		if err != nil {
			return err
		}
		if last == nil {
			return apperrors.Validation("this table has no journal records")
		}
		if last.EmployeeID == 0 {
			return apperrors.Validation("no responsible employee on the table's last journal entry")
		}

		// Mid-checkout the latest entry is already not_paid; the session the
		// bill is for is the last occupied one.
		session := last
		if last.TableStatus == domain.TableNotPaid {
			session, err = s.journal.GetLastOccupiedEntry(ctx, table)
			if err != nil {
				return err
			}
			if session == nil {
				return apperrors.Validation("no occupancy session found for this table")
			}
		} else {
			if _, err := s.journal.Transition(ctx, last.EmployeeID, table, domain.TableNotPaid); err != nil {
				return err
			}
		}

		billID, err = s.repo.CreateForSession(ctx, session.ID, guests)
		return err
	})
	if err != nil {
		return 0, apperrors.FromStorage(err)
	}

	zap.L().Info("bill created", zap.Int("bill_id", billID), zap.String("table", string(table)))
	return billID, nil
}

func (s *Service) GetBill(ctx context.Context, id int) (*domain.Bill, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperrors.NotFound("bill")
	}
	return bill, nil
}

// PayBill marks the bill paid and, when the table has no open bills and no
// unbilled orders left, records the not_paid -> paid transition. The false
// return means the bill was not open; that is an outcome, not an error.
func (s *Service) PayBill(ctx context.Context, id int) (bool, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if bill == nil {
		return false, apperrors.NotFound("bill")
	}

	table, err := s.repo.FindTableByBillID(ctx, id)
	if err != nil {
		return false, err
	}
	if table == "" {
		return false, apperrors.Validation("cannot resolve the table for bill %d", id)
	}

	var paid bool
	err = s.journal.WithTableLock(ctx, table, func(ctx context.Context) error {
		last, err := s.journal.GetLastEntry(ctx, table)
		if err != nil {
			return err
		}
		if last == nil {
			return apperrors.Validation("this table has no journal records")
		}

		paid, err = s.repo.MarkAsPaid(ctx, id)
		if err != nil {
			return err
		}

		openBills, err := s.repo.CountOpenBillsForTable(ctx, table)
		if err != nil {
			return err
		}
		unbilled, err := s.repo.CountUnbilledOrdersForTable(ctx, table)
		if err != nil {
			return err
		}

		// Another bill or order still pending keeps the table not_paid.
		if paid && openBills == 0 && unbilled == 0 {
			if _, err := s.journal.Transition(ctx, last.EmployeeID, table, domain.TablePaid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, apperrors.FromStorage(err)
	}

	zap.L().Info("bill payment processed", zap.Int("bill_id", id), zap.Bool("paid", paid))
	return paid, nil
}

func (s *Service) GetTableForBill(ctx context.Context, id int) (domain.TableNumber, error) {
	return s.repo.FindTableByBillID(ctx, id)
}

// CalculateBonus resolves the bill and applies the bonus rule to its sum.
func (s *Service) CalculateBonus(ctx context.Context, billID int, birthday bool) (int, error) {
	bill, err := s.repo.FindByID(ctx, billID)
	if err != nil {
		return 0, err
	}
	if bill == nil {
		return 0, apperrors.NotFound("bill")
	}
	return Bonus(bill.Sum, birthday), nil
}

// Bonus awards 20 points per whole 5000 of the bill sum, plus a flat 20 on
// birthdays. Never persisted.
func Bonus(sum float64, birthday bool) int {
	bonus := int(math.Floor(sum/5000)) * 20
	if birthday {
		bonus += 20
	}
	return bonus
}
