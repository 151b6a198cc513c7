package billservice

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

func NewMock(t *testing.T) (*Service, *MockRepo, *MockJournal) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	journal := NewMockJournal(ctrl)
	service := New(repo, journal)
	defer ctrl.Finish()
	return service, repo, journal
}

func passThroughLock(journal *MockJournal, table domain.TableNumber) {
	journal.EXPECT().WithTableLock(gomock.Any(), table, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.TableNumber, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreateBill(t *testing.T) {
	service, repo, journal := NewMock(t)
	table := domain.TableNumber("table_3")

	tests := []struct {
		name           string
		table          domain.TableNumber
		prepareMock    func()
		expectedBillID int
		expectedError  string
	}{
		{
			name:  "Occupied table moves to not_paid and gets a bill",
			table: table,
			prepareMock: func() {
				passThroughLock(journal, table)
				journal.EXPECT().GetLastEntry(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 10, TableNumber: table, TableStatus: domain.TableOccupied, EmployeeID: 1,
				}, nil)
				journal.EXPECT().Transition(gomock.Any(), 1, table, domain.TableNotPaid).Return(&domain.JournalEntry{
					ID: 11, TableNumber: table, TableStatus: domain.TableNotPaid, EmployeeID: 1,
				}, nil)
				repo.EXPECT().CreateForSession(gomock.Any(), 10, int16(2)).Return(9, nil)
			},
			expectedBillID: 9,
		},
		{
			name:  "Second bill for a table already not_paid",
			table: table,
			prepareMock: func() {
				passThroughLock(journal, table)
				journal.EXPECT().GetLastEntry(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 11, TableNumber: table, TableStatus: domain.TableNotPaid, EmployeeID: 1,
				}, nil)
				journal.EXPECT().GetLastOccupiedEntry(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 10, TableNumber: table, TableStatus: domain.TableOccupied, EmployeeID: 1,
				}, nil)
				repo.EXPECT().CreateForSession(gomock.Any(), 10, int16(2)).Return(12, nil)
			},
			expectedBillID: 12,
		},
		{
			name:  "No journal records",
			table: table,
			prepareMock: func() {
				passThroughLock(journal, table)
				journal.EXPECT().GetLastEntry(gomock.Any(), table).Return(nil, nil)
			},
			expectedError: "this table has no journal records",
		},
		{
			name:  "Not paid but occupancy session missing",
			table: table,
			prepareMock: func() {
				passThroughLock(journal, table)
				journal.EXPECT().GetLastEntry(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 11, TableNumber: table, TableStatus: domain.TableNotPaid, EmployeeID: 1,
				}, nil)
				journal.EXPECT().GetLastOccupiedEntry(gomock.Any(), table).Return(nil, nil)
			},
			expectedError: "no occupancy session found for this table",
		},
		{
			name:  "Free table cannot be billed",
			table: table,
			prepareMock: func() {
				passThroughLock(journal, table)
				journal.EXPECT().GetLastEntry(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 12, TableNumber: table, TableStatus: domain.TableFree, EmployeeID: 1,
				}, nil)
				journal.EXPECT().Transition(gomock.Any(), 1, table, domain.TableNotPaid).
					Return(nil, apperrors.Validation("table must be occupied before a bill is drawn up"))
			},
			expectedError: "table must be occupied before a bill is drawn up",
		},
		{
			name:          "Unknown table number",
			table:         domain.TableNumber("table_0"),
			expectedError: "unknown table number: table_0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			billID, err := service.CreateBill(context.Background(), tt.table, 2)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBillID, billID)
			}
		})
	}
}

func TestPayBill(t *testing.T) {
	service, repo, journal := NewMock(t)
	table := domain.TableNumber("table_3")
	openBill := &domain.Bill{ID: 9, Sum: 12000, GuestNumber: 2, Status: domain.BillOpen, Time: time.Now()}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedPaid  bool
		expectedError string
	}{
		{
			name: "Last open bill pays and frees the table for payment",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 9).Return(openBill, nil)
				repo.EXPECT().FindTableByBillID(gomock.Any(), 9).Return(table, nil)
				passThroughLock(journal, table)
				journal.EXPECT().GetLastEntry(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 11, TableNumber: table, TableStatus: domain.TableNotPaid, EmployeeID: 1,
				}, nil)
				repo.EXPECT().MarkAsPaid(gomock.Any(), 9).Return(true, nil)
				repo.EXPECT().CountOpenBillsForTable(gomock.Any(), table).Return(0, nil)
				repo.EXPECT().CountUnbilledOrdersForTable(gomock.Any(), table).Return(0, nil)
				journal.EXPECT().Transition(gomock.Any(), 1, table, domain.TablePaid).Return(&domain.JournalEntry{
					ID: 12, TableNumber: table, TableStatus: domain.TablePaid, EmployeeID: 1,
				}, nil)
			},
			expectedPaid: true,
		},
		{
			name: "Other open bill keeps the table not_paid",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 9).Return(openBill, nil)
				repo.EXPECT().FindTableByBillID(gomock.Any(), 9).Return(table, nil)
				passThroughLock(journal, table)
				journal.EXPECT().GetLastEntry(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 11, TableNumber: table, TableStatus: domain.TableNotPaid, EmployeeID: 1,
				}, nil)
				repo.EXPECT().MarkAsPaid(gomock.Any(), 9).Return(true, nil)
				repo.EXPECT().CountOpenBillsForTable(gomock.Any(), table).Return(1, nil)
				repo.EXPECT().CountUnbilledOrdersForTable(gomock.Any(), table).Return(0, nil)
			},
			expectedPaid: true,
		},
		{
			name: "Already paid bill reports false and no transition",
			prepareMock: func() {
				paidBill := &domain.Bill{ID: 9, Sum: 12000, Status: domain.BillPaid}
				repo.EXPECT().FindByID(gomock.Any(), 9).Return(paidBill, nil)
				repo.EXPECT().FindTableByBillID(gomock.Any(), 9).Return(table, nil)
				passThroughLock(journal, table)
				journal.EXPECT().GetLastEntry(gomock.Any(), table).Return(&domain.JournalEntry{
					ID: 12, TableNumber: table, TableStatus: domain.TablePaid, EmployeeID: 1,
				}, nil)
				repo.EXPECT().MarkAsPaid(gomock.Any(), 9).Return(false, nil)
				repo.EXPECT().CountOpenBillsForTable(gomock.Any(), table).Return(0, nil)
				repo.EXPECT().CountUnbilledOrdersForTable(gomock.Any(), table).Return(0, nil)
			},
			expectedPaid: false,
		},
		{
			name: "Bill does not exist",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: "bill not found",
		},
		{
			name: "Table cannot be resolved",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 9).Return(openBill, nil)
				repo.EXPECT().FindTableByBillID(gomock.Any(), 9).Return(domain.TableNumber(""), nil)
			},
			expectedError: "cannot resolve the table for bill 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			paid, err := service.PayBill(context.Background(), 9)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPaid, paid)
			}
		})
	}
}

func TestPayBillConflict(t *testing.T) {
	service, repo, journal := NewMock(t)
	table := domain.TableNumber("table_2")

	repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Bill{ID: 5, Status: domain.BillOpen}, nil)
	repo.EXPECT().FindTableByBillID(gomock.Any(), 5).Return(table, nil)
	journal.EXPECT().WithTableLock(gomock.Any(), table, gomock.Any()).Return(apperrors.ErrConflict)

	_, err := service.PayBill(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGetBill(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		bill := &domain.Bill{ID: 3, Sum: 4500, Status: domain.BillOpen}
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(bill, nil)

		got, err := service.GetBill(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, bill, got)
	})

	t.Run("Not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)

		_, err := service.GetBill(context.Background(), 3)
		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("Storage error", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, errors.New("db down"))

		_, err := service.GetBill(context.Background(), 3)
		assert.Error(t, err)
		assert.False(t, apperrors.IsNotFound(err))
	})
}

func TestCalculateBonus(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), 9).Return(&domain.Bill{ID: 9, Sum: 12000}, nil)

	bonus, err := service.CalculateBonus(context.Background(), 9, false)
	assert.NoError(t, err)
	assert.Equal(t, 40, bonus)
}

func TestBonus(t *testing.T) {
	tests := []struct {
		name     string
		sum      float64
		birthday bool
		expected int
	}{
		{name: "Two full increments", sum: 12000, birthday: false, expected: 40},
		{name: "Exact increment with birthday", sum: 5000, birthday: true, expected: 40},
		{name: "Below the first increment", sum: 4999, birthday: false, expected: 0},
		{name: "Below the first increment with birthday", sum: 4999, birthday: true, expected: 20},
		{name: "Zero sum", sum: 0, birthday: false, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Bonus(tt.sum, tt.birthday))
		})
	}
}
