package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/service/reflection"
)

type reflectionService interface {
	Create(ctx context.Context, input reflection.CreateInput) (*domain.Reflection, error)
	Update(ctx context.Context, id uuid.UUID, input reflection.UpdateInput) (*domain.Reflection, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID, publicOnly bool) ([]domain.Reflection, error)
	ListByFreet(ctx context.Context, freetID uuid.UUID) ([]domain.Reflection, error)
}

// ReflectionHandler serves reflection endpoints.
type ReflectionHandler struct {
	svc reflectionService
	log *slog.Logger
}

// NewReflectionHandler creates a ReflectionHandler.
func NewReflectionHandler(svc reflectionService, logger *slog.Logger) *ReflectionHandler {
	return &ReflectionHandler{svc: svc, log: logger.With("handler", "reflections")}
}

type createReflectionRequest struct {
	FreetID string `json:"freet_id" validate:"required"`
	Content string `json:"content"`
	Public  bool   `json:"public"`
}

type updateReflectionRequest struct {
	Content *string `json:"content"`
	Public  *bool   `json:"public" validate:"required"`
}

// ListForUser handles GET /api/reflections?id=<userId>&public=yes|no.
func (h *ReflectionHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var fields []domain.FieldError
	userID, err := uuid.Parse(q.Get("id"))
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "id", Message: "must be a user id"})
	}
	var publicOnly bool
	switch q.Get("public") {
	case "yes":
		publicOnly = true
	case "no":
	default:
		fields = append(fields, domain.FieldError{Field: "public", Message: "must be yes or no"})
	}
	if len(fields) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(fields))
		return
	}

	refs, err := h.svc.ListForUser(r.Context(), userID, publicOnly)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReflectionResponses(refs))
}

// ListByFreet handles GET /api/freets/{id}/reflections.
func (h *ReflectionHandler) ListByFreet(w http.ResponseWriter, r *http.Request) {
	freetID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	refs, err := h.svc.ListByFreet(r.Context(), freetID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReflectionResponses(refs))
}

// Create handles POST /api/reflections.
func (h *ReflectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReflectionRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	freetID, err := uuid.Parse(req.FreetID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("freet_id", "invalid id"))
		return
	}

	ref, err := h.svc.Create(r.Context(), reflection.CreateInput{
		FreetID: freetID,
		Content: req.Content,
		Public:  req.Public,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReflectionResponse(ref))
}

// Update handles PUT /api/reflections/{id}.
func (h *ReflectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateReflectionRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ref, err := h.svc.Update(r.Context(), id, reflection.UpdateInput{Content: req.Content, Public: req.Public})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReflectionResponse(ref))
}

// Delete handles DELETE /api/reflections/{id}.
func (h *ReflectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "reflection deleted"})
}
