package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/service/tweet"
)

type tweetService interface {
	ListOwn(ctx context.Context) ([]domain.Tweet, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Tweet, error)
	Create(ctx context.Context, input tweet.CreateInput) (*domain.Tweet, error)
	Edit(ctx context.Context, input tweet.EditInput) (*domain.Tweet, error)
	Delete(ctx context.Context, input tweet.DeleteInput) error
}

// TweetHandler serves direct tweet endpoints.
type TweetHandler struct {
	svc tweetService
	log *slog.Logger
}

// NewTweetHandler creates a TweetHandler.
func NewTweetHandler(svc tweetService, logger *slog.Logger) *TweetHandler {
	return &TweetHandler{svc: svc, log: logger.With("handler", "tweet")}
}

type newTweetRequest struct {
	UserID int64  `json:"user_id"`
	Tweet  string `json:"tweet"`
}

type editTweetRequest struct {
	TweetID  int64  `json:"tweet_id"`
	NewTweet string `json:"new_tweet"`
}

type deleteTweetRequest struct {
	TweetID int64 `json:"tweet_id"`
}

// OwnTweets handles GET /user/tweets.
func (h *TweetHandler) OwnTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.svc.ListOwn(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTweetResponses(tweets))
}

// UserTweets handles GET /user/{user_id}/tweets.
func (h *TweetHandler) UserTweets(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	tweets, err := h.svc.ListForUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]tweetResponse{"tweets": toTweetResponses(tweets)})
}

// Create handles POST /newtweet.
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierUser, domain.TierSuperAdmin) {
		return
	}
	var req newTweetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := h.svc.Create(r.Context(), tweet.CreateInput{UserID: req.UserID, Tweet: req.Tweet})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, successResponse)
}

// Edit handles PUT /edittweet.
func (h *TweetHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierUser, domain.TierSuperAdmin) {
		return
	}
	var req editTweetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := h.svc.Edit(r.Context(), tweet.EditInput{TweetID: req.TweetID, NewTweet: req.NewTweet})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse)
}

// Delete handles PUT /deletetweet.
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierUser, domain.TierSuperAdmin) {
		return
	}
	var req deleteTweetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.Delete(r.Context(), tweet.DeleteInput{TweetID: req.TweetID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse)
}
