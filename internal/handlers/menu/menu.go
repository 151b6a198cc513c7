package menu

import (
	"context"
	"encoding/json"
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
	GetDish(ctx context.Context, id int) (*domain.Dish, error)
	GetDishes(ctx context.Context) ([]domain.Dish, error)
	CreateDish(ctx context.Context, name string, cost, primeCost float64) (*domain.Dish, error)
	ChangeCost(ctx context.Context, id int, cost float64) error
	DeleteDish(ctx context.Context, id int) error
}

type MenuHandler struct {
	dishService Service
}

func New(dishService Service) *MenuHandler {
	return &MenuHandler{
		dishService: dishService,
	}
}

// GetAll returns the menu.
func (h *MenuHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.dishService.GetDishes(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.DishResponseDTO, len(dishes))
	for i, dish := range dishes {
		response[i] = toDishDTO(&dish)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "dish id must be an integer")
		return
	}

	dish, err := h.dishService.GetDish(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDishDTO(dish))
}

// Create godoc
//
//	@Summary	Add a dish to the menu
//	@Tags		Menu
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.DishRequestDTO	true	"New dish"
//	@Success	201		{object}	dto.DishResponseDTO
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Router		/api/dishes [post]
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req dto.DishRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dish, err := h.dishService.CreateDish(r.Context(), req.Name, req.Cost, req.PrimeCost)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDishDTO(dish))
}

func (h *MenuHandler) ChangeCost(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "dish id must be an integer")
		return
	}

	var req dto.DishCostRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.dishService.ChangeCost(r.Context(), id, req.Cost); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "dish cost updated"})
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "dish id must be an integer")
		return
	}

	if err := h.dishService.DeleteDish(r.Context(), id); err != nil {
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

func toDishDTO(dish *domain.Dish) dto.DishResponseDTO {
	return dto.DishResponseDTO{
		ID:        dish.ID,
		Name:      dish.Name,
		Cost:      dish.Cost,
		PrimeCost: dish.PrimeCost,
	}
}
