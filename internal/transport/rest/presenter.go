package rest

import (
	"time"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/service/auth"
	"github.com/heartmarshall/twitter-backend/internal/service/logs"
	"github.com/heartmarshall/twitter-backend/internal/service/moderation"
)

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

type tweetResponse struct {
	ID        int64  `json:"id"`
	User      int64  `json:"user"`
	Timestamp string `json:"timestamp"`
	Tweet     string `json:"tweet"`
}

type authResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        userResponse `json:"user"`
}

type updateTweetRequestResponse struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Admin     string `json:"admin"`
	OldTweet  string `json:"old_tweet"`
	NewTweet  string `json:"new_tweet"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
}

type deleteTweetRequestResponse struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Admin     string `json:"admin"`
	Tweet     string `json:"tweet"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
}

type createTweetRequestResponse struct {
	ID        int64  `json:"id"`
	Admin     string `json:"admin"`
	UserID    int64  `json:"user_id"`
	Tweet     string `json:"tweet"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
}

type updateUserRequestResponse struct {
	ID           int64  `json:"id"`
	Admin        string `json:"admin"`
	Username     string `json:"username"`
	OldFirstName string `json:"old_first_name"`
	OldLastName  string `json:"old_last_name"`
	OldBio       string `json:"old_bio"`
	NewFirstName string `json:"new_first_name"`
	NewLastName  string `json:"new_last_name"`
	NewBio       string `json:"new_bio"`
	Timestamp    string `json:"timestamp"`
	Action       string `json:"action"`
}

type tweetRequestsResponse struct {
	UpdateRequest []updateTweetRequestResponse `json:"update_request"`
	DeleteRequest []deleteTweetRequestResponse `json:"delete_request"`
	CreateRequest []createTweetRequestResponse `json:"create_request"`
}

// itemResultResponse renders exactly one of Message and Error.
type itemResultResponse struct {
	RequestID int64  `json:"request_id"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

type logQueryResponse struct {
	Count int                `json:"count"`
	Logs  []domain.LogRecord `json:"logs"`
}

func formatTime(t time.Time) string {
	return t.Format(msgTimeLayout)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

func toTweetResponse(t *domain.Tweet) tweetResponse {
	return tweetResponse{
		ID:        t.ID,
		User:      t.UserID,
		Timestamp: formatTime(t.CreatedAt),
		Tweet:     t.Text,
	}
}

func toTweetResponses(tweets []domain.Tweet) []tweetResponse {
	out := make([]tweetResponse, 0, len(tweets))
	for i := range tweets {
		out = append(out, toTweetResponse(&tweets[i]))
	}
	return out
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   result.ExpiresAt,
		User:        toUserResponse(result.User),
	}
}

func toUpdateUserRequestResponses(reqs []domain.UpdateUserRequest) []updateUserRequestResponse {
	out := make([]updateUserRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, updateUserRequestResponse{
			ID:           r.ID,
			Admin:        r.AdminUsername,
			Username:     r.Username,
			OldFirstName: r.Current.FirstName,
			OldLastName:  r.Current.LastName,
			OldBio:       r.Current.Bio,
			NewFirstName: r.Changes.FirstName,
			NewLastName:  r.Changes.LastName,
			NewBio:       r.Changes.Bio,
			Timestamp:    formatTime(r.CreatedAt),
			Action:       "update",
		})
	}
	return out
}

func toTweetRequestsResponse(reqs *moderation.TweetRequests) tweetRequestsResponse {
	resp := tweetRequestsResponse{
		UpdateRequest: make([]updateTweetRequestResponse, 0, len(reqs.Updates)),
		DeleteRequest: make([]deleteTweetRequestResponse, 0, len(reqs.Deletes)),
		CreateRequest: make([]createTweetRequestResponse, 0, len(reqs.Creates)),
	}
	for _, r := range reqs.Updates {
		resp.UpdateRequest = append(resp.UpdateRequest, updateTweetRequestResponse{
			ID:        r.ID,
			User:      r.OwnerUsername,
			Admin:     r.AdminUsername,
			OldTweet:  r.OldTweet,
			NewTweet:  r.NewTweet,
			Timestamp: formatTime(r.CreatedAt),
			Action:    "update",
		})
	}
	for _, r := range reqs.Deletes {
		resp.DeleteRequest = append(resp.DeleteRequest, deleteTweetRequestResponse{
			ID:        r.ID,
			User:      r.OwnerUsername,
			Admin:     r.AdminUsername,
			Tweet:     r.Tweet,
			Timestamp: formatTime(r.CreatedAt),
			Action:    "delete",
		})
	}
	for _, r := range reqs.Creates {
		resp.CreateRequest = append(resp.CreateRequest, createTweetRequestResponse{
			ID:        r.ID,
			Admin:     r.AdminUsername,
			UserID:    r.UserID,
			Tweet:     r.Tweet,
			Timestamp: formatTime(r.CreatedAt),
			Action:    "create",
		})
	}
	return resp
}

func toItemResults(results []domain.ItemResult) []itemResultResponse {
	out := make([]itemResultResponse, 0, len(results))
	for _, r := range results {
		item := itemResultResponse{RequestID: r.RequestID}
		if r.Outcome.IsError() {
			item.Error = r.Outcome.Message()
		} else {
			item.Message = r.Outcome.Message()
		}
		out = append(out, item)
	}
	return out
}

func toLogQueryResponse(res *logs.QueryResult) logQueryResponse {
	records := res.Logs
	if records == nil {
		records = []domain.LogRecord{}
	}
	return logQueryResponse{Count: res.Count, Logs: records}
}
