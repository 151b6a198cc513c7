package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/dto"
	"github.com/savichev/restofloor/internal/service/reportservice"
	"github.com/savichev/restofloor/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx(employeeID int, position string) context.Context {
	ctx := context.WithValue(context.Background(), auth.EmployeeIDKey, employeeID)
	return context.WithValue(ctx, auth.PositionKey, position)
}

func midnight(day string) time.Time {
	from, _ := time.ParseInLocation("2006-01-02", day, time.Local)
	return from
}

func TestMainHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		role          string
		query         string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Report for a given day",
			role:  "admin",
			query: "?date=2026-08-01",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().MainReport(ctx, midnight("2026-08-01")).
					Return(&reportservice.MainReport{
						OrdersSum:           54000,
						PrimeCostSum:        21000,
						Earnings:            33000,
						OrdersAmount:        36,
						PaidOrdersAmount:    30,
						NotPaidOrdersAmount: 6,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Default window is today",
			role:  "admin",
			query: "",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().MainReport(ctx, gomock.Any()).
					Return(&reportservice.MainReport{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Waiter may not read reports",
			role:          "waiter",
			query:         "",
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusForbidden,
			expectedError: "admin only",
		},
		{
			name:          "Malformed date",
			role:          "admin",
			query:         "?date=01.08.2026",
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "date must be in YYYY-MM-DD form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := authCtx(9, tt.role)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodGet, "/reports/main"+tt.query, nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.Main(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.name == "Report for a given day" {
				var body dto.MainReportResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 33000.0, body.Earnings)
				assert.Equal(t, 6, body.NotPaidOrdersAmount)
			}
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestEmployeeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		employeeID    string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name:       "Report for one employee",
			employeeID: "3",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().EmployeeReport(ctx, 3, midnight("2026-08-01")).
					Return(&reportservice.EmployeeReport{
						OrdersAmount: 12,
						OrdersSum:    18000,
						TableAmount:  4,
						Rating:       4.5,
						Comments:     []string{"great service"},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Non-numeric employee id",
			employeeID:    "three",
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "employee id must be an integer",
		},
		{
			name:       "Unknown employee",
			employeeID: "3",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().EmployeeReport(ctx, 3, midnight("2026-08-01")).
					Return(nil, apperrors.NotFound("employee"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "employee not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := authCtx(9, "admin")
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.employeeID)
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodGet, "/reports/employees/"+tt.employeeID+"?date=2026-08-01", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.Employee(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.EmployeeReportResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 4, body.TableAmount)
				assert.Equal(t, 4.5, body.Rating)
			}
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestEmployeesHandler(t *testing.T) {
	handler, service := NewMock(t)

	ctx := authCtx(9, "admin")
	service.EXPECT().AllEmployeeReports(ctx, midnight("2026-08-01")).
		Return(map[int]*reportservice.EmployeeReport{
			3: {OrdersAmount: 12, OrdersSum: 18000, TableAmount: 4, Rating: 4.5},
			5: {OrdersAmount: 8, OrdersSum: 9500, TableAmount: 2, Rating: 5},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/reports/employees?date=2026-08-01", nil)
	r = r.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Employees(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[int]dto.EmployeeReportResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)
	assert.Equal(t, 5.0, body[5].Rating)
}
