package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

type cooldownService interface {
	Get(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error)
	SetProvocative(ctx context.Context, freetID uuid.UUID, provocative bool) (*domain.CooldownRecord, error)
}

// CooldownHandler serves the per-freet cooldown flag.
type CooldownHandler struct {
	svc cooldownService
	log *slog.Logger
}

// NewCooldownHandler creates a CooldownHandler.
func NewCooldownHandler(svc cooldownService, logger *slog.Logger) *CooldownHandler {
	return &CooldownHandler{svc: svc, log: logger.With("handler", "cooldowns")}
}

// A pointer so a missing field is distinguishable from false.
type provocativeRequest struct {
	Provocative *bool `json:"provocative" validate:"required"`
}

// Get handles GET /api/cooldowns/{freetId}.
func (h *CooldownHandler) Get(w http.ResponseWriter, r *http.Request) {
	freetID, err := pathUUID(r, "freetId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Get(r.Context(), freetID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCooldownResponse(rec))
}

// SetProvocative handles PUT /api/cooldowns/{freetId}.
func (h *CooldownHandler) SetProvocative(w http.ResponseWriter, r *http.Request) {
	freetID, err := pathUUID(r, "freetId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req provocativeRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.SetProvocative(r.Context(), freetID, *req.Provocative)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCooldownResponse(rec))
}
