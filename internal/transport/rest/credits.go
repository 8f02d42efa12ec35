package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/service/credit"
)

type creditService interface {
	GetMine(ctx context.Context) (*domain.CreditRecord, error)
	ExchangeByUsername(ctx context.Context, input credit.ExchangeInput) (*credit.ExchangeResult, error)
}

// CreditHandler serves the credit ledger endpoints.
type CreditHandler struct {
	svc creditService
	log *slog.Logger
}

// NewCreditHandler creates a CreditHandler.
func NewCreditHandler(svc creditService, logger *slog.Logger) *CreditHandler {
	return &CreditHandler{svc: svc, log: logger.With("handler", "credits")}
}

type exchangeRequest struct {
	OtherUsername string `json:"other_username" validate:"required,max=32"`
}

type exchangeResponse struct {
	Message     string         `json:"message"`
	Credit      creditResponse `json:"credit"`
	OtherCredit creditResponse `json:"otherCredit"`
}

// GetMine handles GET /api/credits.
func (h *CreditHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetMine(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCreditResponse(rec))
}

// Exchange handles PUT /api/credits: the caller gives one credit to
// other_username.
func (h *CreditHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req exchangeRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.ExchangeByUsername(r.Context(), credit.ExchangeInput{Username: req.OtherUsername})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, exchangeResponse{
		Message:     "credit given to " + req.OtherUsername,
		Credit:      toCreditResponse(&result.Giver),
		OtherCredit: toCreditResponse(&result.Receiver),
	})
}
