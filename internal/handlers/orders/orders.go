package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/internal/dto"
	"github.com/savichev/restofloor/internal/handlers/httperr"
	"github.com/savichev/restofloor/pkg/auth"
	"github.com/savichev/restofloor/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, table domain.TableNumber, dishID int, guestNumber int16) (*domain.Order, error)
	ChangeStatus(ctx context.Context, orderID int, newStatus domain.OrderStatus, role domain.Position) (*domain.Order, error)
	Modify(ctx context.Context, orderID int, guestNumber int16) (*domain.Order, error)
	Delete(ctx context.Context, orderID int) error
	GetByID(ctx context.Context, orderID int) (*domain.Order, error)
	GetAll(ctx context.Context) ([]domain.Order, error)
	GetForTable(ctx context.Context, table domain.TableNumber) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Create godoc
//
//	@Summary		Place an order
//	@Description	Attaches the order to the table's current occupancy session with status accepted.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OrderCreateRequestDTO	true	"New order"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Table not occupied or dish unknown"
//	@Failure		409		{object}	utils.Response	"Concurrent transition, retry"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), domain.TableNumber(req.TableNumber), req.DishID, req.GuestNumber)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toOrderDTO(order))
}

// ChangeStatus godoc
//
//	@Summary		Move an order along the kitchen pipeline
//	@Description	Cooks and barmen move accepted to cooked, waiters move cooked to delivered, admins move anything.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Order ID"
//	@Param			request	body		dto.OrderStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Role may not perform this move"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Router			/api/orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "order id must be an integer")
		return
	}

	var req dto.OrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role := domain.Position(r.Context().Value(auth.PositionKey).(string))
	order, err := h.orderService.ChangeStatus(r.Context(), id, domain.OrderStatus(req.Status), role)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Modify godoc
//
//	@Summary	Change the guest number of an order
//	@Tags		Orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Order ID"
//	@Param		request	body		dto.OrderModifyRequestDTO	true	"New guest number"
//	@Success	200		{object}	dto.OrderResponseDTO
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{id} [patch]
func (h *OrderHandler) Modify(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "order id must be an integer")
		return
	}

	var req dto.OrderModifyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Modify(r.Context(), id, req.GuestNumber)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Delete godoc
//
//	@Summary	Remove an unbilled order
//	@Tags		Orders
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Order ID"
//	@Success	204
//	@Failure	400	{object}	utils.Response	"Order already billed"
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "order id must be an integer")
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get returns a single order.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "order id must be an integer")
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GetAll returns every order on record.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAll(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTOs(orders))
}

// GetForTable godoc
//
//	@Summary	Orders of the table's current session
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		tableNumber	path		string	true	"Table number"
//	@Success	200			{array}		dto.OrderResponseDTO
//	@Failure	400			{object}	utils.Response	"No occupancy session"
//	@Router		/api/orders/table/{tableNumber} [get]
func (h *OrderHandler) GetForTable(w http.ResponseWriter, r *http.Request) {
	table := domain.TableNumber(chi.URLParam(r, "tableNumber"))

	orders, err := h.orderService.GetForTable(r.Context(), table)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTOs(orders))
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:             order.ID,
		JournalEntryID: order.JournalEntryID,
		DishID:         order.DishID,
		GuestNumber:    order.GuestNumber,
		Status:         string(order.Status),
		Time:           order.Time.Format(time.RFC3339),
	}
}

func toOrderDTOs(orders []domain.Order) []dto.OrderResponseDTO {
	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = toOrderDTO(&orders[i])
	}
	return response
}
