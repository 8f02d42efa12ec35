package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, input auth.ProfileInput) (*domain.User, error)
}

type accountService interface {
	DeleteMe(ctx context.Context) error
}

// UserHandler serves account and session endpoints.
type UserHandler struct {
	auth     authService
	accounts accountService
	log      *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(authSvc authService, accounts accountService, logger *slog.Logger) *UserHandler {
	return &UserHandler{auth: authSvc, accounts: accounts, log: logger.With("handler", "users")}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=64"`
}

type authResponse struct {
	AccessToken string          `json:"accessToken"`
	User        userResponse    `json:"user"`
	Credit      *creditResponse `json:"credit,omitempty"`
}

func toAuthResponse(r *auth.AuthResult) authResponse {
	resp := authResponse{AccessToken: r.AccessToken, User: toUserResponse(r.User)}
	if r.Credit != nil {
		c := toCreditResponse(r.Credit)
		resp.Credit = &c
	}
	return resp
}

// Register handles POST /api/users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.auth.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/users/session.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.auth.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Omitted fields are left unchanged.
type profileRequest struct {
	Username *string `json:"username" validate:"omitnil,max=32"`
	Password *string `json:"password" validate:"omitnil,max=64"`
}

type profileResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// UpdateProfile handles PUT /api/users.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	user, err := h.auth.UpdateProfile(r.Context(), auth.ProfileInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Message: "profile updated", User: toUserResponse(user)})
}

// DeleteMe handles DELETE /api/users. The caller's credit record, scheduled
// freets, reflections and freets are removed together with the account.
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.DeleteMe(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "account deleted"})
}

// Get handles GET /api/users/{userId}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "userId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	user, err := h.auth.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}
