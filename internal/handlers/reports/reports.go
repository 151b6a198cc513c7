package reports

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/internal/dto"
	"github.com/savichev/restofloor/internal/handlers/httperr"
	"github.com/savichev/restofloor/internal/service/reportservice"
	"github.com/savichev/restofloor/pkg/auth"
	"github.com/savichev/restofloor/pkg/utils"
)

type Service interface {
	MainReport(ctx context.Context, from time.Time) (*reportservice.MainReport, error)
	EmployeeReport(ctx context.Context, employeeID int, from time.Time) (*reportservice.EmployeeReport, error)
	AllEmployeeReports(ctx context.Context, from time.Time) (map[int]*reportservice.EmployeeReport, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Main godoc
//
//	@Summary		Revenue report for a day
//	@Description	Sums, prime costs and order counts since the start of the given date (default today). Admin only.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	false	"Date in YYYY-MM-DD form"
//	@Success		200		{object}	dto.MainReportResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Router			/api/reports/main [get]
func (h *ReportHandler) Main(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	from, ok := parseFrom(w, r)
	if !ok {
		return
	}

	report, err := h.reportService.MainReport(r.Context(), from)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMainDTO(report))
}

// Employee godoc
//
//	@Summary	Per-employee performance report
//	@Tags		Reports
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id		path		int		true	"Employee ID"
//	@Param		date	query		string	false	"Date in YYYY-MM-DD form"
//	@Success	200		{object}	dto.EmployeeReportResponseDTO
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Router		/api/reports/employees/{id} [get]
func (h *ReportHandler) Employee(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	from, ok := parseFrom(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "employee id must be an integer")
		return
	}

	report, err := h.reportService.EmployeeReport(r.Context(), id, from)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEmployeeDTO(report))
}

// Employees returns the per-employee reports for the whole staff keyed by
// employee id.
func (h *ReportHandler) Employees(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	from, ok := parseFrom(w, r)
	if !ok {
		return
	}

	reports, err := h.reportService.AllEmployeeReports(r.Context(), from)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make(map[int]dto.EmployeeReportResponseDTO, len(reports))
	for id, report := range reports {
		response[id] = toEmployeeDTO(report)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// parseFrom resolves the report window start: midnight of the date query
// parameter, or of today when absent.
func parseFrom(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	}
	from, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "date must be in YYYY-MM-DD form")
		return time.Time{}, false
	}
	return from, true
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	role := domain.Position(r.Context().Value(auth.PositionKey).(string))
	if role != domain.PositionAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "admin only")
		return false
	}
	return true
}

func toMainDTO(report *reportservice.MainReport) dto.MainReportResponseDTO {
	return dto.MainReportResponseDTO{
		OrdersSum:           report.OrdersSum,
		PrimeCostSum:        report.PrimeCostSum,
		Earnings:            report.Earnings,
		OrdersAmount:        report.OrdersAmount,
		PaidOrdersAmount:    report.PaidOrdersAmount,
		NotPaidOrdersAmount: report.NotPaidOrdersAmount,
	}
}

func toEmployeeDTO(report *reportservice.EmployeeReport) dto.EmployeeReportResponseDTO {
	return dto.EmployeeReportResponseDTO{
		OrdersAmount: report.OrdersAmount,
		OrdersSum:    report.OrdersSum,
		TableAmount:  report.TableAmount,
		Rating:       report.Rating,
		Comments:     report.Comments,
	}
}
