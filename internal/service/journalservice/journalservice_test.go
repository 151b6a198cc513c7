package journalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockOrderRepo, *MockEmployeeRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	employeeRepo := NewMockEmployeeRepo(ctrl)
	service := New(repo, orderRepo, employeeRepo)
	defer ctrl.Finish()
	return service, repo, orderRepo, employeeRepo
}

// passThroughLock runs the callback inline the way the real advisory lock
// does within a transaction.
func passThroughLock(repo *MockRepo, table domain.TableNumber) {
	repo.EXPECT().WithTableLock(gomock.Any(), table, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.TableNumber, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestTransition(t *testing.T) {
	service, repo, orderRepo, _ := NewMock(t)
	table := domain.TableNumber("table_3")

	entry := func(id int, status domain.TableStatus) *domain.JournalEntry {
		return &domain.JournalEntry{ID: id, TableNumber: table, TableStatus: status, EmployeeID: 1}
	}

	tests := []struct {
		name          string
		table         domain.TableNumber
		status        domain.TableStatus
		prepareMock   func()
		expectedError string
	}{
		{
			name:   "Occupy a free table",
			table:  table,
			status: domain.TableOccupied,
			prepareMock: func() {
				passThroughLock(repo, table)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(entry(10, domain.TableFree), nil)
				repo.EXPECT().Create(gomock.Any(), 1, table, domain.TableOccupied).Return(entry(11, domain.TableOccupied), nil)
			},
		},
		{
			name:   "Seed a table with no history as free",
			table:  table,
			status: domain.TableFree,
			prepareMock: func() {
				passThroughLock(repo, table)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), 1, table, domain.TableFree).Return(entry(1, domain.TableFree), nil)
			},
		},
		{
			name:   "Occupy an already occupied table",
			table:  table,
			status: domain.TableOccupied,
			prepareMock: func() {
				passThroughLock(repo, table)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(entry(10, domain.TableOccupied), nil)
			},
			expectedError: "table must be free before it can be occupied",
		},
		{
			name:   "Free an occupied table without orders",
			table:  table,
			status: domain.TableFree,
			prepareMock: func() {
				passThroughLock(repo, table)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(entry(10, domain.TableOccupied), nil)
				orderRepo.EXPECT().CountBySession(gomock.Any(), 10).Return(0, nil)
				repo.EXPECT().Create(gomock.Any(), 1, table, domain.TableFree).Return(entry(11, domain.TableFree), nil)
			},
		},
		{
			name:   "Free an occupied table with orders",
			table:  table,
			status: domain.TableFree,
			prepareMock: func() {
				passThroughLock(repo, table)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(entry(10, domain.TableOccupied), nil)
				orderRepo.EXPECT().CountBySession(gomock.Any(), 10).Return(2, nil)
			},
			expectedError: "cannot free a table that has orders in the current session",
		},
		{
			name:   "Free a not_paid table",
			table:  table,
			status: domain.TableFree,
			prepareMock: func() {
				passThroughLock(repo, table)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(entry(10, domain.TableNotPaid), nil)
			},
			expectedError: "table must be paid before freeing",
		},
		{
			name:   "Bill a free table",
			table:  table,
			status: domain.TableNotPaid,
			prepareMock: func() {
				passThroughLock(repo, table)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(entry(10, domain.TableFree), nil)
			},
			expectedError: "table must be occupied before a bill is drawn up",
		},
		{
			name:   "Pay an occupied table",
			table:  table,
			status: domain.TablePaid,
			prepareMock: func() {
				passThroughLock(repo, table)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(entry(10, domain.TableOccupied), nil)
			},
			expectedError: "table must have an unpaid bill before it is marked paid",
		},
		{
			name:   "Occupy a table with no history",
			table:  table,
			status: domain.TableOccupied,
			prepareMock: func() {
				passThroughLock(repo, table)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(nil, nil)
			},
			expectedError: "this table has no journal records",
		},
		{
			name:          "Unknown table number",
			table:         domain.TableNumber("table_11"),
			status:        domain.TableOccupied,
			expectedError: "unknown table number: table_11",
		},
		{
			name:          "Unknown table status",
			table:         table,
			status:        domain.TableStatus("reserved"),
			expectedError: "unknown table status: reserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			entry, err := service.Transition(context.Background(), 1, tt.table, tt.status)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, entry)
				assert.Equal(t, tt.status, entry.TableStatus)
			}
		})
	}
}

func TestTransitionConflict(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	table := domain.TableNumber("table_1")

	repo.EXPECT().WithTableLock(gomock.Any(), table, gomock.Any()).Return(apperrors.ErrConflict)

	_, err := service.Transition(context.Background(), 1, table, domain.TableOccupied)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGetTableStatus(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	table := domain.TableNumber("table_2")

	tests := []struct {
		name           string
		prepareMock    func()
		expectedStatus domain.TableStatus
		expectedError  string
	}{
		{
			name: "Latest entry wins",
			prepareMock: func() {
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 5, TableNumber: table, TableStatus: domain.TableNotPaid,
				}, nil)
			},
			expectedStatus: domain.TableNotPaid,
		},
		{
			name: "No journal records",
			prepareMock: func() {
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(nil, nil)
			},
			expectedError: "this table has no journal records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			status, err := service.GetTableStatus(context.Background(), table)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, status)
			}
		})
	}
}

func TestGetTableStatuses(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	for _, table := range domain.TableNumbers() {
		if table == "table_1" {
			repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(&domain.JournalEntry{
				ID: 1, TableNumber: table, TableStatus: domain.TableOccupied,
			}, nil)
			continue
		}
		repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(nil, nil)
	}

	statuses, err := service.GetTableStatuses(context.Background())
	assert.NoError(t, err)
	assert.Len(t, statuses, 10)
	assert.Equal(t, domain.TableOccupied, statuses["table_1"])
	assert.Equal(t, domain.TableStatus(""), statuses["table_2"])
}

func TestGetOwner(t *testing.T) {
	service, repo, _, employeeRepo := NewMock(t)
	table := domain.TableNumber("table_4")

	tests := []struct {
		name          string
		prepareMock   func()
		expectedOwner *domain.Employee
	}{
		{
			name: "Owner is the employee on the latest entry",
			prepareMock: func() {
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 7, TableNumber: table, TableStatus: domain.TableOccupied, EmployeeID: 3,
				}, nil)
				employeeRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Employee{
					ID: 3, Name: "Anna", Position: domain.PositionWaiter,
				}, nil)
			},
			expectedOwner: &domain.Employee{ID: 3, Name: "Anna", Position: domain.PositionWaiter},
		},
		{
			name: "No history means no owner",
			prepareMock: func() {
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(nil, nil)
			},
			expectedOwner: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			owner, err := service.GetOwner(context.Background(), table)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOwner, owner)
		})
	}
}

func TestReassignEmployee(t *testing.T) {
	service, repo, _, employeeRepo := NewMock(t)
	table := domain.TableNumber("table_5")

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError string
	}{
		{
			name: "Reassign the latest entry",
			prepareMock: func() {
				employeeRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Employee{ID: 2}, nil)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(&domain.JournalEntry{ID: 9}, nil)
				repo.EXPECT().ReassignEmployee(gomock.Any(), 9, 2).Return(nil)
			},
		},
		{
			name: "Employee does not exist",
			prepareMock: func() {
				employeeRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: "employee not found",
		},
		{
			name: "Table has no history",
			prepareMock: func() {
				employeeRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Employee{ID: 2}, nil)
				repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(nil, nil)
			},
			expectedError: "this table has no journal records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ReassignEmployee(context.Background(), 2, table)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEntriesForHours(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	t.Run("Negative hours rejected", func(t *testing.T) {
		_, err := service.GetEntriesForHours(context.Background(), -1)
		assert.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("Entries since the window start", func(t *testing.T) {
		entries := []domain.JournalEntry{{ID: 1}, {ID: 2}}
		repo.EXPECT().FindSince(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, from time.Time) ([]domain.JournalEntry, error) {
				assert.WithinDuration(t, time.Now().Add(-24*time.Hour), from, time.Minute)
				return entries, nil
			})

		got, err := service.GetEntriesForHours(context.Background(), 24)
		assert.NoError(t, err)
		assert.Equal(t, entries, got)
	})
}

func TestTransitionStorageError(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	table := domain.TableNumber("table_6")

	passThroughLock(repo, table)
	repo.EXPECT().FindLastByTable(gomock.Any(), table).Return(nil, errors.New("db down"))

	_, err := service.Transition(context.Background(), 1, table, domain.TableFree)
	assert.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
}
