package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	ErrorKind string       `json:"errorKind"`
	Message   string       `json:"message"`
	Fields    []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorKind maps a service error to its HTTP status and kind label. The
// specific content and date sentinels are checked before ErrValidation
// because they also unwrap to it.
func errorKind(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrSelfReference):
		return http.StatusPreconditionFailed, "SelfReference"
	case errors.Is(err, domain.ErrPublishDateInPast):
		return http.StatusPreconditionFailed, "PublishDateInPast"
	case errors.Is(err, domain.ErrContentTooLong):
		return http.StatusRequestEntityTooLarge, "ContentTooLong"
	case errors.Is(err, domain.ErrInvalidContent):
		return http.StatusBadRequest, "InvalidContent"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "Validation"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NotFound"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "AlreadyExists"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "Conflict"
	default:
		return http.StatusInternalServerError, "Internal"
	}
}

// handleError writes the mapped error response. Internal errors are logged
// and their message is not exposed.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, kind := errorKind(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, status, kind, "internal server error")
		return
	}

	resp := errorResponse{ErrorKind: kind, Message: err.Error()}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
	}
	writeJSON(w, status, resp)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{ErrorKind: kind, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
