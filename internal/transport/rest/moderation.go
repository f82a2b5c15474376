package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/service/moderation"
)

type moderationService interface {
	ProposeTweetCreate(ctx context.Context, input moderation.ProposeTweetCreateInput) error
	ProposeTweetUpdate(ctx context.Context, input moderation.ProposeTweetUpdateInput) error
	ProposeTweetDelete(ctx context.Context, input moderation.ProposeTweetDeleteInput) error
	ProposeUserUpdate(ctx context.Context, input moderation.ProposeUserUpdateInput) error
	ListPendingUserUpdates(ctx context.Context) ([]domain.UpdateUserRequest, error)
	ListPendingTweetRequests(ctx context.Context) (*moderation.TweetRequests, error)
	ResolveTweetCreates(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error)
	ResolveTweetUpdates(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error)
	ResolveTweetDeletes(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error)
	ResolveUserUpdates(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error)
}

// ModerationHandler serves the approval workflow: admin proposals,
// super-admin listings and batch responses.
type ModerationHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: logger.With("handler", "moderation")}
}

type createTweetProposal struct {
	UserID int64  `json:"user_id"`
	Tweet  string `json:"tweet"`
}

type updateTweetProposal struct {
	TweetID  int64  `json:"tweet_id"`
	NewTweet string `json:"new_tweet"`
}

type deleteTweetProposal struct {
	TweetID int64 `json:"tweet_id"`
}

type updateUserProposal struct {
	UserID       int64  `json:"user_id"`
	NewFirstName string `json:"new_first_name"`
	NewLastName  string `json:"new_last_name"`
	NewBio       string `json:"new_bio"`
}

type decisionRequest struct {
	RequestID     int64 `json:"request_id"`
	ActionGranted bool  `json:"action_granted"`
}

// ProposeTweetCreate handles POST /tweet/create/request.
func (h *ModerationHandler) ProposeTweetCreate(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierAdmin) {
		return
	}
	var req createTweetProposal
	if !decodeJSON(w, r, &req) {
		return
	}
	h.proposed(w, r, h.svc.ProposeTweetCreate(r.Context(), moderation.ProposeTweetCreateInput{
		UserID: req.UserID,
		Tweet:  req.Tweet,
	}))
}

// ProposeTweetUpdate handles POST /tweet/update/request.
func (h *ModerationHandler) ProposeTweetUpdate(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierAdmin) {
		return
	}
	var req updateTweetProposal
	if !decodeJSON(w, r, &req) {
		return
	}
	h.proposed(w, r, h.svc.ProposeTweetUpdate(r.Context(), moderation.ProposeTweetUpdateInput{
		TweetID:  req.TweetID,
		NewTweet: req.NewTweet,
	}))
}

// ProposeTweetDelete handles POST /tweet/delete/request.
func (h *ModerationHandler) ProposeTweetDelete(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierAdmin) {
		return
	}
	var req deleteTweetProposal
	if !decodeJSON(w, r, &req) {
		return
	}
	h.proposed(w, r, h.svc.ProposeTweetDelete(r.Context(), moderation.ProposeTweetDeleteInput{
		TweetID: req.TweetID,
	}))
}

// ProposeUserUpdate handles POST /user/update/request.
func (h *ModerationHandler) ProposeUserUpdate(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierAdmin) {
		return
	}
	var req updateUserProposal
	if !decodeJSON(w, r, &req) {
		return
	}
	h.proposed(w, r, h.svc.ProposeUserUpdate(r.Context(), moderation.ProposeUserUpdateInput{
		UserID:       req.UserID,
		NewFirstName: req.NewFirstName,
		NewLastName:  req.NewLastName,
		NewBio:       req.NewBio,
	}))
}

func (h *ModerationHandler) proposed(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, successResponse)
}

// PendingUserUpdates handles GET /request/users.
func (h *ModerationHandler) PendingUserUpdates(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListPendingUserUpdates(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUpdateUserRequestResponses(reqs))
}

// PendingTweetRequests handles GET /request/tweets.
func (h *ModerationHandler) PendingTweetRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListPendingTweetRequests(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTweetRequestsResponse(reqs))
}

// RespondUsers handles PUT /respond/users.
func (h *ModerationHandler) RespondUsers(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.ResolveUserUpdates)
}

// RespondTweetUpdates handles PUT /respond/tweets/update.
func (h *ModerationHandler) RespondTweetUpdates(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.ResolveTweetUpdates)
}

// RespondTweetDeletes handles PUT /respond/tweets/delete.
func (h *ModerationHandler) RespondTweetDeletes(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.ResolveTweetDeletes)
}

// RespondTweetCreates handles PUT /respond/tweets/create.
func (h *ModerationHandler) RespondTweetCreates(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.ResolveTweetCreates)
}

type resolveFunc func(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error)

func (h *ModerationHandler) respond(w http.ResponseWriter, r *http.Request, resolve resolveFunc) {
	if !authorize(w, r, domain.TierSuperAdmin) {
		return
	}
	var req []decisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	decisions := make([]domain.Decision, 0, len(req))
	for _, d := range req {
		decisions = append(decisions, domain.Decision{RequestID: d.RequestID, ActionGranted: d.ActionGranted})
	}

	results, err := resolve(r.Context(), decisions)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResults(results))
}
