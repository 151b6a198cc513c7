package employees

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/internal/dto"
	"github.com/savichev/restofloor/internal/handlers/httperr"
	"github.com/savichev/restofloor/pkg/auth"
	"github.com/savichev/restofloor/pkg/utils"
)

type Service interface {
	GetEmployee(ctx context.Context, id int) (*domain.Employee, error)
	GetEmployees(ctx context.Context) ([]domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int) error
}

type EmployeeHandler struct {
	authService Service
}

func New(authService Service) *EmployeeHandler {
	return &EmployeeHandler{
		authService: authService,
	}
}

// GetAll godoc
//
//	@Summary	List all employees
//	@Tags		Employees
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.EmployeeResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Router		/api/employees [get]
func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	list, err := h.authService.GetEmployees(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.EmployeeResponseDTO, len(list))
	for i, employee := range list {
		response[i] = dto.EmployeeResponseDTO{
			ID:       employee.ID,
			Name:     employee.Name,
			Position: string(employee.Position),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "employee id must be an integer")
		return
	}

	employee, err := h.authService.GetEmployee(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EmployeeResponseDTO{
		ID:       employee.ID,
		Name:     employee.Name,
		Position: string(employee.Position),
	})
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "employee id must be an integer")
		return
	}

	if err := h.authService.DeleteEmployee(r.Context(), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	role := domain.Position(r.Context().Value(auth.PositionKey).(string))
	if role != domain.PositionAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "admin only")
		return false
	}
	return true
}
