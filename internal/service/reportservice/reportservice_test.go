package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/savichev/restofloor/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockEmployeeRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	employeeRepo := NewMockEmployeeRepo(ctrl)
	service := New(repo, employeeRepo)
	defer ctrl.Finish()
	return service, repo, employeeRepo
}

func TestMainReport(t *testing.T) {
	service, repo, _ := NewMock(t)
	from := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Earnings and paid split computed", func(t *testing.T) {
		repo.EXPECT().SumOrdersSince(gomock.Any(), from).Return(54000.0, 21000.0, 36, nil)
		repo.EXPECT().CountPaidOrdersSince(gomock.Any(), from).Return(30, nil)

		report, err := service.MainReport(context.Background(), from)
		assert.NoError(t, err)
		assert.Equal(t, &MainReport{
			OrdersSum:           54000,
			PrimeCostSum:        21000,
			Earnings:            33000,
			OrdersAmount:        36,
			PaidOrdersAmount:    30,
			NotPaidOrdersAmount: 6,
		}, report)
	})

	t.Run("Storage error propagated", func(t *testing.T) {
		repo.EXPECT().SumOrdersSince(gomock.Any(), from).Return(0.0, 0.0, 0, errors.New("db error"))

		_, err := service.MainReport(context.Background(), from)
		assert.Error(t, err)
	})
}

func TestEmployeeReport(t *testing.T) {
	service, repo, _ := NewMock(t)
	from := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Rating averages feedback, empty comments skipped", func(t *testing.T) {
		repo.EXPECT().SumOrdersSinceByEmployee(gomock.Any(), from, 3).Return(18000.0, 12, nil)
		repo.EXPECT().CountPaidTablesForEmployee(gomock.Any(), from, 3).Return(4, nil)
		repo.EXPECT().FeedbackForEmployeeSince(gomock.Any(), from, 3).Return([]domain.Feedback{
			{Rating: 5, Comment: "great"},
			{Rating: 4, Comment: ""},
		}, nil)

		report, err := service.EmployeeReport(context.Background(), 3, from)
		assert.NoError(t, err)
		assert.Equal(t, 12, report.OrdersAmount)
		assert.Equal(t, 18000.0, report.OrdersSum)
		assert.Equal(t, 4, report.TableAmount)
		assert.Equal(t, 4.5, report.Rating)
		assert.Equal(t, []string{"great"}, report.Comments)
	})

	t.Run("No feedback leaves rating zero", func(t *testing.T) {
		repo.EXPECT().SumOrdersSinceByEmployee(gomock.Any(), from, 3).Return(0.0, 0, nil)
		repo.EXPECT().CountPaidTablesForEmployee(gomock.Any(), from, 3).Return(0, nil)
		repo.EXPECT().FeedbackForEmployeeSince(gomock.Any(), from, 3).Return(nil, nil)

		report, err := service.EmployeeReport(context.Background(), 3, from)
		assert.NoError(t, err)
		assert.Zero(t, report.Rating)
		assert.Empty(t, report.Comments)
	})
}

func TestAllEmployeeReports(t *testing.T) {
	service, repo, employeeRepo := NewMock(t)
	from := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)

	employeeRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.Employee{{ID: 1}, {ID: 2}}, nil)
	for _, id := range []int{1, 2} {
		repo.EXPECT().SumOrdersSinceByEmployee(gomock.Any(), from, id).Return(float64(id)*1000, id, nil)
		repo.EXPECT().CountPaidTablesForEmployee(gomock.Any(), from, id).Return(id, nil)
		repo.EXPECT().FeedbackForEmployeeSince(gomock.Any(), from, id).Return(nil, nil)
	}

	reports, err := service.AllEmployeeReports(context.Background(), from)
	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, 1000.0, reports[1].OrdersSum)
	assert.Equal(t, 2000.0, reports[2].OrdersSum)
}

func TestAllEmployeeReportsError(t *testing.T) {
	service, repo, employeeRepo := NewMock(t)
	from := time.Now()

	employeeRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.Employee{{ID: 1}}, nil)
	repo.EXPECT().SumOrdersSinceByEmployee(gomock.Any(), from, 1).Return(0.0, 0, errors.New("db error"))

	_, err := service.AllEmployeeReports(context.Background(), from)
	assert.Error(t, err)
}
