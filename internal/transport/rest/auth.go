package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	RegisterAdmin(ctx context.Context, input auth.RegisterAdminInput) (*domain.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
}

// AuthHandler serves account endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Username     string `json:"username"     validate:"max=150"`
	Email        string `json:"email"        validate:"omitempty,email,max=254"`
	Password     string `json:"password"     validate:"max=128"`
	Confirmation string `json:"confirmation" validate:"max=128"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Bio          string `json:"bio"`
}

func (r registerRequest) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username:     r.Username,
		Email:        r.Email,
		Password:     r.Password,
		Confirmation: r.Confirmation,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Bio:          r.Bio,
	}
}

type registerAdminRequest struct {
	registerRequest
	IsAdmin      bool `json:"is_admin"`
	IsSuperAdmin bool `json:"is_superadmin"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierAnonymous) {
		return
	}
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// RegisterAdmin handles POST /register/admin.
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierSuperAdmin) {
		return
	}
	var req registerAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := h.svc.RegisterAdmin(r.Context(), auth.RegisterAdminInput{
		RegisterInput: req.toInput(),
		IsAdmin:       req.IsAdmin,
		IsSuperAdmin:  req.IsSuperAdmin,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, successResponse)
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse)
}
