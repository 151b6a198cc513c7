package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/savichev/restofloor/docs"
	"github.com/savichev/restofloor/internal/pg"
	"github.com/savichev/restofloor/internal/repo"
	"github.com/savichev/restofloor/internal/service"
	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	services := service.New(repos, nil)

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockJournalHandler := NewMockJournalHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockBillHandler := NewMockBillHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockMenuHandler := NewMockMenuHandler(ctrl)
	mockEmployeeHandler := NewMockEmployeeHandler(ctrl)
	mockReportHandler := NewMockReportHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockJournalHandler.EXPECT().MakeRecord(gomock.Any(), gomock.Any()).AnyTimes()
	mockJournalHandler.EXPECT().GetTableStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockJournalHandler.EXPECT().GetAllStatuses(gomock.Any(), gomock.Any()).AnyTimes()
	mockJournalHandler.EXPECT().GetOwner(gomock.Any(), gomock.Any()).AnyTimes()
	mockJournalHandler.EXPECT().Reassign(gomock.Any(), gomock.Any()).AnyTimes()
	mockJournalHandler.EXPECT().GetEntries(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetAll(gomock.Any(), gomock.Any()).AnyTimes()
	mockBillHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockMenuHandler.EXPECT().GetAll(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmployeeHandler.EXPECT().GetAll(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().Main(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		JournalHandler:  mockJournalHandler,
		OrderHandler:    mockOrderHandler,
		BillHandler:     mockBillHandler,
		WalletHandler:   mockWalletHandler,
		MenuHandler:     mockMenuHandler,
		EmployeeHandler: mockEmployeeHandler,
		ReportHandler:   mockReportHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/auth/register", http.StatusUnauthorized},
		{"POST", "/api/journal/record", http.StatusUnauthorized},
		{"GET", "/api/journal/statuses", http.StatusUnauthorized},
		{"POST", "/api/orders/", http.StatusUnauthorized},
		{"GET", "/api/orders/", http.StatusUnauthorized},
		{"POST", "/api/bills/", http.StatusUnauthorized},
		{"GET", "/api/wallets/1", http.StatusUnauthorized},
		{"GET", "/api/dishes/", http.StatusUnauthorized},
		{"GET", "/api/employees/", http.StatusUnauthorized},
		{"GET", "/api/reports/main", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
