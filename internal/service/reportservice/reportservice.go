package reportservice

import (
	"context"
	"sync"
	"time"

	"github.com/savichev/restofloor/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	SumOrdersSince(ctx context.Context, from time.Time) (cost, primeCost float64, count int, err error)
	CountPaidOrdersSince(ctx context.Context, from time.Time) (int, error)
	SumOrdersSinceByEmployee(ctx context.Context, from time.Time, employeeID int) (cost float64, count int, err error)
	CountPaidTablesForEmployee(ctx context.Context, from time.Time, employeeID int) (int, error)
	FeedbackForEmployeeSince(ctx context.Context, from time.Time, employeeID int) ([]domain.Feedback, error)
}

type EmployeeRepo interface {
	FindAll(ctx context.Context) ([]domain.Employee, error)
}

type MainReport struct {
	OrdersSum           float64
	PrimeCostSum        float64
	Earnings            float64
	OrdersAmount        int
	PaidOrdersAmount    int
	NotPaidOrdersAmount int
}

type EmployeeReport struct {
	OrdersAmount int
	OrdersSum    float64
	TableAmount  int
	Rating       float64
	Comments     []string
}

type Service struct {
	repo         Repo
	employeeRepo EmployeeRepo
}

func New(repo Repo, employeeRepo EmployeeRepo) *Service {
	return &Service{
		repo:         repo,
		employeeRepo: employeeRepo,
	}
}

func (s *Service) MainReport(ctx context.Context, from time.Time) (*MainReport, error) {
	cost, primeCost, count, err := s.repo.SumOrdersSince(ctx, from)
	if err != nil {
		zap.L().Error("failed to build main report", zap.Error(err))
		return nil, err
	}
	paid, err := s.repo.CountPaidOrdersSince(ctx, from)
	if err != nil {
		zap.L().Error("failed to count paid orders", zap.Error(err))
		return nil, err
	}

	notPaid := count - paid
	if notPaid < 0 {
		notPaid = 0
	}
	return &MainReport{
		OrdersSum:           cost,
		PrimeCostSum:        primeCost,
		Earnings:            cost - primeCost,
		OrdersAmount:        count,
		PaidOrdersAmount:    paid,
		NotPaidOrdersAmount: notPaid,
	}, nil
}

func (s *Service) EmployeeReport(ctx context.Context, employeeID int, from time.Time) (*EmployeeReport, error) {
	cost, count, err := s.repo.SumOrdersSinceByEmployee(ctx, from, employeeID)
	if err != nil {
		return nil, err
	}
	tables, err := s.repo.CountPaidTablesForEmployee(ctx, from, employeeID)
	if err != nil {
		return nil, err
	}
	feedbacks, err := s.repo.FeedbackForEmployeeSince(ctx, from, employeeID)
	if err != nil {
		return nil, err
	}

	report := &EmployeeReport{
		OrdersAmount: count,
		OrdersSum:    cost,
		TableAmount:  tables,
	}
	if len(feedbacks) > 0 {
		var sum float64
		for _, fb := range feedbacks {
			sum += float64(fb.Rating)
			if fb.Comment != "" {
				report.Comments = append(report.Comments, fb.Comment)
			}
		}
		report.Rating = sum / float64(len(feedbacks))
	}
	return report, nil
}

// AllEmployeeReports fans the per-employee reports out concurrently; the
// queries are independent reads.
func (s *Service) AllEmployeeReports(ctx context.Context, from time.Time) (map[int]*EmployeeReport, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	result := make(map[int]*EmployeeReport, len(employees))

	g, ctx := errgroup.WithContext(ctx)
	for _, employee := range employees {
		g.Go(func() error {
			report, err := s.EmployeeReport(ctx, employee.ID, from)
			if err != nil {
				return err
			}
			mu.Lock()
			result[employee.ID] = report
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build employee reports", zap.Error(err))
		return nil, err
	}
	return result, nil
}
