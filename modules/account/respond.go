package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/validator"
)

type errorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors onto HTTP statuses. Token errors share one
// message regardless of whether the token was unknown or expired, and
// credential failures stay generic.
func writeError(w http.ResponseWriter, err error) {
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		fields := make(map[string][]string, len(ve.Fields()))
		for _, f := range ve.Fields() {
			fields[f] = ve.Get(f)
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidSecondFactor),
		errors.Is(err, auth.ErrSecondFactorAlreadyEnabled),
		errors.Is(err, auth.ErrSecondFactorNotEnrolled),
		errors.Is(err, auth.ErrEmailAlreadyExists),
		errors.Is(err, auth.ErrEmailNotFound),
		errors.Is(err, auth.ErrCannotRemovePrimaryEmail),
		errors.Is(err, auth.ErrPasswordReused),
		errors.Is(err, auth.ErrCaptchaFailed):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: publicMessage(err)})

	case errors.Is(err, auth.ErrTokenInvalid), errors.Is(err, auth.ErrTokenExpired):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: auth.ErrTokenInvalid.Error()})

	case errors.Is(err, auth.ErrAccountBlocked), errors.Is(err, auth.ErrPasswordExpired):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: publicMessage(err)})

	case errors.Is(err, auth.ErrSessionInvalid), errors.Is(err, auth.ErrSessionExpired):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: publicMessage(err)})

	case errors.Is(err, auth.ErrAccountNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: auth.ErrAccountNotFound.Error()})

	case errors.Is(err, auth.ErrNotificationFailed):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to send email, please try again later"})

	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// publicMessage strips wrapped detail, exposing only the sentinel text.
func publicMessage(err error) string {
	for _, sentinel := range []error{
		auth.ErrInvalidCredentials,
		auth.ErrInvalidSecondFactor,
		auth.ErrSecondFactorAlreadyEnabled,
		auth.ErrSecondFactorNotEnrolled,
		auth.ErrEmailAlreadyExists,
		auth.ErrEmailNotFound,
		auth.ErrCannotRemovePrimaryEmail,
		auth.ErrPasswordReused,
		auth.ErrCaptchaFailed,
		auth.ErrAccountBlocked,
		auth.ErrPasswordExpired,
		auth.ErrSessionInvalid,
		auth.ErrSessionExpired,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
