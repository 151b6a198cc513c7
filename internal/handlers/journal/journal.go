package journal

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
	Transition(ctx context.Context, employeeID int, table domain.TableNumber, status domain.TableStatus) (*domain.JournalEntry, error)
	GetTableStatus(ctx context.Context, table domain.TableNumber) (domain.TableStatus, error)
	GetTableStatuses(ctx context.Context) (map[domain.TableNumber]domain.TableStatus, error)
	GetOwner(ctx context.Context, table domain.TableNumber) (*domain.Employee, error)
	ReassignEmployee(ctx context.Context, employeeID int, table domain.TableNumber) error
	GetEntriesForHours(ctx context.Context, hours int) ([]domain.JournalEntry, error)
}

type JournalHandler struct {
	journalService Service
}

func New(journalService Service) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// MakeRecord godoc
//
//	@Summary		Record a table status transition
//	@Description	Append a journal entry moving the table to the requested status. Cooks are not allowed; non-admins may only act on their own tables except when occupying.
//	@Tags			Journal
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.JournalRecordRequestDTO	true	"Transition request"
//	@Success		201		{object}	dto.JournalEntryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid transition"
//	@Failure		401		{object}	utils.Response	"Another employee's table"
//	@Failure		403		{object}	utils.Response	"Role not allowed"
//	@Failure		409		{object}	utils.Response	"Concurrent transition, retry"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/journal/record [post]
func (h *JournalHandler) MakeRecord(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(auth.EmployeeIDKey).(int)
	role := domain.Position(r.Context().Value(auth.PositionKey).(string))

	if role == domain.PositionCook {
		utils.RespondWithError(w, http.StatusForbidden, "cooks may not change table status")
		return
	}

	var req dto.JournalRecordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	table := domain.TableNumber(req.TableNumber)
	status := domain.TableStatus(req.TableStatus)

	owner, err := h.journalService.GetOwner(r.Context(), table)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if owner != nil && role != domain.PositionAdmin &&
		status != domain.TableOccupied && owner.ID != callerID {
		utils.RespondWithError(w, http.StatusUnauthorized, "attempt to change another employee's table")
		return
	}

	entry, err := h.journalService.Transition(r.Context(), req.EmployeeID, table, status)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toEntryDTO(entry))
}

// GetTableStatus godoc
//
//	@Summary	Current status of a table
//	@Tags		Journal
//	@Security	BearerAuth
//	@Produce	json
//	@Param		tableNumber	path		string	true	"Table number"
//	@Success	200			{string}	string	"Status of the latest journal entry"
//	@Failure	400			{object}	utils.Response	"No journal records for the table"
//	@Router		/api/journal/status/{tableNumber} [get]
func (h *JournalHandler) GetTableStatus(w http.ResponseWriter, r *http.Request) {
	table := domain.TableNumber(chi.URLParam(r, "tableNumber"))

	status, err := h.journalService.GetTableStatus(r.Context(), table)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, status)
}

// GetAllStatuses godoc
//
//	@Summary	Status of every table on the floor
//	@Tags		Journal
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	map[string]string	"Tables with no history map to an empty status"
//	@Router		/api/journal/statuses [get]
func (h *JournalHandler) GetAllStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.journalService.GetTableStatuses(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make(map[string]string, len(statuses))
	for table, status := range statuses {
		response[string(table)] = string(status)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOwner godoc
//
//	@Summary	Employee responsible for a table
//	@Tags		Journal
//	@Security	BearerAuth
//	@Produce	json
//	@Param		tableNumber	path		string	true	"Table number"
//	@Success	200			{object}	dto.EmployeeResponseDTO
//	@Failure	404			{object}	utils.Response	"No responsible employee"
//	@Router		/api/journal/owner/{tableNumber} [get]
func (h *JournalHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	table := domain.TableNumber(chi.URLParam(r, "tableNumber"))

	owner, err := h.journalService.GetOwner(r.Context(), table)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if owner == nil {
		utils.RespondWithError(w, http.StatusNotFound, "no responsible employee for this table")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EmployeeResponseDTO{
		ID:       owner.ID,
		Name:     owner.Name,
		Position: string(owner.Position),
	})
}

// Reassign godoc
//
//	@Summary	Reassign the table to another employee
//	@Description	Changes the responsible employee on the latest journal entry without touching status. Admin only.
//	@Tags		Journal
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	dto.ReassignRequestDTO	true	"Reassignment"
//	@Success	200
//	@Failure	400	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Router		/api/journal/owner [put]
func (h *JournalHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	role := domain.Position(r.Context().Value(auth.PositionKey).(string))
	if role != domain.PositionAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "admin only")
		return
	}

	var req dto.ReassignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.journalService.ReassignEmployee(r.Context(), req.EmployeeID, domain.TableNumber(req.TableNumber))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "table reassigned"})
}

// GetEntries returns journal entries for the last N hours (default 24).
func (h *JournalHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	hours := 24
	if raw := r.URL.Query().Get("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "hours must be an integer")
			return
		}
		hours = parsed
	}

	entries, err := h.journalService.GetEntriesForHours(r.Context(), hours)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.JournalEntryResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = toEntryDTO(&entry)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toEntryDTO(entry *domain.JournalEntry) dto.JournalEntryResponseDTO {
	return dto.JournalEntryResponseDTO{
		ID:          entry.ID,
		TableNumber: string(entry.TableNumber),
		TableStatus: string(entry.TableStatus),
		EmployeeID:  entry.EmployeeID,
		Time:        entry.Time.Format(time.RFC3339),
	}
}
