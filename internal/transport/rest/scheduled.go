package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/service/scheduled"
)

type scheduledService interface {
	Create(ctx context.Context, input scheduled.ScheduleInput) (*domain.ScheduledItem, error)
	Update(ctx context.Context, id uuid.UUID, input scheduled.ScheduleInput) (*domain.ScheduledItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.ScheduledItem, error)
	ListByUsername(ctx context.Context, username string) ([]domain.ScheduledItem, error)
}

// ScheduledHandler serves scheduled freet endpoints.
type ScheduledHandler struct {
	svc scheduledService
	log *slog.Logger
}

// NewScheduledHandler creates a ScheduledHandler.
func NewScheduledHandler(svc scheduledService, logger *slog.Logger) *ScheduledHandler {
	return &ScheduledHandler{svc: svc, log: logger.With("handler", "scheduledfreets")}
}

// Content rules are enforced by the service so that empty and oversized
// content map to their own error kinds.
type scheduleRequest struct {
	Content     string `json:"content"`
	PublishDate string `json:"publish_date" validate:"required"`
}

func (req scheduleRequest) input() (scheduled.ScheduleInput, error) {
	publishAt, err := time.Parse(time.RFC3339, req.PublishDate)
	if err != nil {
		return scheduled.ScheduleInput{}, domain.NewValidationError("publish_date", "must be an RFC 3339 timestamp")
	}
	return scheduled.ScheduleInput{Content: req.Content, PublishAt: publishAt}, nil
}

func (h *ScheduledHandler) decodeInput(r *http.Request) (scheduled.ScheduleInput, error) {
	var req scheduleRequest
	if err := decode(r, &req); err != nil {
		return scheduled.ScheduleInput{}, err
	}
	return req.input()
}

// List handles GET /api/scheduledfreets, optionally filtered by ?author=.
func (h *ScheduledHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		items []domain.ScheduledItem
		err   error
	)
	if author := r.URL.Query().Get("author"); author != "" {
		items, err = h.svc.ListByUsername(r.Context(), author)
	} else {
		items, err = h.svc.ListAll(r.Context())
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduledResponses(items))
}

// Create handles POST /api/scheduledfreets.
func (h *ScheduledHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := h.decodeInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toScheduledResponse(item))
}

// Update handles PUT /api/scheduledfreets/{id}.
func (h *ScheduledHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input, err := h.decodeInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduledResponse(item))
}

// Delete handles DELETE /api/scheduledfreets/{id}.
func (h *ScheduledHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "scheduled freet deleted"})
}
