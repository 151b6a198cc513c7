package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/internal/dto"
	"github.com/savichev/restofloor/internal/handlers/httperr"
	authpkg "github.com/savichev/restofloor/pkg/auth"
	"github.com/savichev/restofloor/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, name string, position domain.Position) (*domain.Employee, string, error)
	Authenticate(ctx context.Context, employeeID int, code string) (*domain.Employee, error)
	GenerateToken(employeeID int, position domain.Position) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new employee
//	@Description	Creates the employee, seeds their tip wallet and returns the one-time 3-digit login code. Admin only.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"New employee"
//	@Success		201		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown position"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	role := domain.Position(r.Context().Value(authpkg.PositionKey).(string))
	if role != domain.PositionAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "admin only")
		return
	}

	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "employee name is required")
		return
	}

	employee, code, err := h.authService.Register(r.Context(), req.Name, domain.Position(req.Position))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		EmployeeID: employee.ID,
		Code:       code,
	})
}

// Login godoc
//
//	@Summary	Authenticate with employee id and login code
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequestDTO	true	"Credentials"
//	@Success	200		{object}	dto.LoginResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid credentials"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := h.authService.Authenticate(r.Context(), req.EmployeeID, req.Code)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	token, err := h.authService.GenerateToken(employee.ID, employee.Position)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{Token: token})
}
