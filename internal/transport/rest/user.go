package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	ListProfiles(ctx context.Context) ([]domain.User, error)
	GetUserProfile(ctx context.Context, userID int64) (*domain.User, error)
}

// UserHandler serves profile endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// Profile handles GET /user/profile.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateProfile handles PUT /user/update.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierUser, domain.TierSuperAdmin) {
		return
	}
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse)
}

// ListProfiles handles GET /all/user/profile.
func (h *UserHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListProfiles(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// UserProfile handles GET /user/{user_id}/profile.
func (h *UserHandler) UserProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	u, err := h.svc.GetUserProfile(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}
