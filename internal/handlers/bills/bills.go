package bills

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
	"github.com/savichev/restofloor/internal/service/billservice"
	"github.com/savichev/restofloor/pkg/auth"
	"github.com/savichev/restofloor/pkg/utils"
)

type Service interface {
	CreateBill(ctx context.Context, table domain.TableNumber, guests int16) (int, error)
	GetBill(ctx context.Context, id int) (*domain.Bill, error)
	PayBill(ctx context.Context, id int) (bool, error)
	GetTableForBill(ctx context.Context, id int) (domain.TableNumber, error)
	CalculateBonus(ctx context.Context, billID int, birthday bool) (int, error)
}

type Journal interface {
	GetOwner(ctx context.Context, table domain.TableNumber) (*domain.Employee, error)
}

type BillHandler struct {
	billService    Service
	journalService Journal
}

func New(billService Service, journalService Journal) *BillHandler {
	return &BillHandler{
		billService:    billService,
		journalService: journalService,
	}
}

// Create godoc
//
//	@Summary		Draw up a bill for a table
//	@Description	Moves the table to not_paid if needed and aggregates the session's unbilled orders into an open bill. Non-admins may only bill their own tables.
//	@Tags			Bills
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BillCreateRequestDTO	true	"Bill request"
//	@Success		201		{object}	dto.BillCreateResponseDTO
//	@Failure		400		{object}	utils.Response	"No session or no unbilled orders"
//	@Failure		401		{object}	utils.Response	"Another employee's table"
//	@Failure		409		{object}	utils.Response	"Concurrent checkout, retry"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bills [post]
func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BillCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	table := domain.TableNumber(req.TableNumber)
	if !h.callerOwnsTable(w, r, table) {
		return
	}

	billID, err := h.billService.CreateBill(r.Context(), table, req.GuestNumber)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	bonus, err := h.billService.CalculateBonus(r.Context(), billID, req.Birthday)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.BillCreateResponseDTO{
		BillID:      billID,
		BonusPoints: bonus,
	})
}

// Get godoc
//
//	@Summary	Fetch a bill with its bonus points
//	@Tags		Bills
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id			path		int		true	"Bill ID"
//	@Param		birthday	query		bool	false	"Guest celebrates a birthday"
//	@Success	200			{object}	dto.BillResponseDTO
//	@Failure	404			{object}	utils.Response	"Bill not found"
//	@Router		/api/bills/{id} [get]
func (h *BillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "bill id must be an integer")
		return
	}
	birthday := r.URL.Query().Get("birthday") == "true"

	bill, err := h.billService.GetBill(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BillResponseDTO{
		ID:          bill.ID,
		Sum:         bill.Sum,
		GuestNumber: bill.GuestNumber,
		Status:      string(bill.Status),
		Time:        bill.Time.Format(time.RFC3339),
		BonusPoints: billservice.Bonus(bill.Sum, birthday),
	})
}

// Pay godoc
//
//	@Summary		Pay a bill
//	@Description	Marks the bill paid. paid=false means the bill was not open. When the table has nothing else pending it moves to paid.
//	@Tags			Bills
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Bill ID"
//	@Success		200	{object}	dto.BillPayResponseDTO
//	@Failure		401	{object}	utils.Response	"Another employee's table"
//	@Failure		404	{object}	utils.Response	"Bill not found"
//	@Failure		409	{object}	utils.Response	"Concurrent payment, retry"
//	@Router			/api/bills/{id}/pay [post]
func (h *BillHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "bill id must be an integer")
		return
	}

	table, err := h.billService.GetTableForBill(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if table != "" && !h.callerOwnsTable(w, r, table) {
		return
	}

	paid, err := h.billService.PayBill(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BillPayResponseDTO{
		BillID: id,
		Paid:   paid,
	})
}

// callerOwnsTable writes the 401 itself and reports whether the handler may
// proceed. Admins always may.
func (h *BillHandler) callerOwnsTable(w http.ResponseWriter, r *http.Request, table domain.TableNumber) bool {
	role := domain.Position(r.Context().Value(auth.PositionKey).(string))
	if role == domain.PositionAdmin {
		return true
	}
	callerID := r.Context().Value(auth.EmployeeIDKey).(int)

	owner, err := h.journalService.GetOwner(r.Context(), table)
	if err != nil {
		httperr.Respond(w, err)
		return false
	}
	if owner != nil && owner.ID != callerID {
		utils.RespondWithError(w, http.StatusUnauthorized, "attempt to manage another employee's table")
		return false
	}
	return true
}
