package wallet

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
	GetBalance(ctx context.Context, employeeID int) (float64, error)
	Withdraw(ctx context.Context, employeeID int, amount float64) error
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary	Tip wallet balance
//	@Description	Employees see their own wallet, admins anyone's.
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Param		employeeID	path		int	true	"Employee ID"
//	@Success	200			{object}	dto.WalletBalanceResponseDTO
//	@Failure	400			{object}	utils.Response	"No tip wallet"
//	@Failure	403			{object}	utils.Response	"Not your wallet"
//	@Router		/api/wallets/{employeeID} [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.resolveEmployee(w, r)
	if !ok {
		return
	}

	balance, err := h.walletService.GetBalance(r.Context(), employeeID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletBalanceResponseDTO{Balance: balance})
}

// Withdraw godoc
//
//	@Summary	Withdraw tips from the wallet
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Accept		json
//	@Param		employeeID	path	int								true	"Employee ID"
//	@Param		request		body	dto.WalletWithdrawRequestDTO	true	"Amount"
//	@Success	200
//	@Failure	400	{object}	utils.Response	"Insufficient funds"
//	@Failure	403	{object}	utils.Response	"Not your wallet"
//	@Router		/api/wallets/{employeeID}/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.resolveEmployee(w, r)
	if !ok {
		return
	}

	var req dto.WalletWithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.walletService.Withdraw(r.Context(), employeeID, req.Amount); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "withdrawal complete"})
}

func (h *WalletHandler) resolveEmployee(w http.ResponseWriter, r *http.Request) (int, bool) {
	employeeID, err := strconv.Atoi(chi.URLParam(r, "employeeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "employee id must be an integer")
		return 0, false
	}

	callerID := r.Context().Value(auth.EmployeeIDKey).(int)
	role := domain.Position(r.Context().Value(auth.PositionKey).(string))
	if role != domain.PositionAdmin && callerID != employeeID {
		utils.RespondWithError(w, http.StatusForbidden, "access to another employee's wallet is denied")
		return 0, false
	}
	return employeeID, true
}
