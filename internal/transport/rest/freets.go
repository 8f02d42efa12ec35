package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

type freetService interface {
	Create(ctx context.Context, content string) (*domain.Freet, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUsername(ctx context.Context, username string) ([]domain.Freet, error)
}

// FreetHandler serves freet endpoints.
type FreetHandler struct {
	svc freetService
	log *slog.Logger
}

// NewFreetHandler creates a FreetHandler.
func NewFreetHandler(svc freetService, logger *slog.Logger) *FreetHandler {
	return &FreetHandler{svc: svc, log: logger.With("handler", "freets")}
}

type freetRequest struct {
	Content string `json:"content"`
}

// List handles GET /api/freets?author=username.
func (h *FreetHandler) List(w http.ResponseWriter, r *http.Request) {
	author := r.URL.Query().Get("author")
	if author == "" {
		handleError(w, r, h.log, domain.NewValidationError("author", "required"))
		return
	}

	freets, err := h.svc.ListByUsername(r.Context(), author)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFreetResponses(freets))
}

// Create handles POST /api/freets. The freet's cooldown record is created
// with it.
func (h *FreetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req freetRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	f, err := h.svc.Create(r.Context(), req.Content)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFreetResponse(f))
}

// Delete handles DELETE /api/freets/{id}.
func (h *FreetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "freet deleted"})
}
