package httperr

import (
	"errors"
	"net/http"

	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/pkg/utils"
	"go.uber.org/zap"
)

// Respond maps the error taxonomy to status codes: validation 400, not found
// 404, retryable conflict 409, everything else a logged 500 without domain
// detail.
func Respond(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsValidation(err):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		zap.L().Error("internal error", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
