package rest

import (
	"net/http"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/pkg/ctxutil"
)

type endpoint struct {
	URL    string `json:"url"`
	Method string `json:"method"`
	Body   any    `json:"body,omitempty"`
}

type catalogue map[string]endpoint

var (
	registerBody = map[string]string{
		"username":     "user_name",
		"email":        "email",
		"password":     "password",
		"confirmation": "repeat password",
		"first_name":   "first_name",
		"last_name":    "last_name",
		"bio":          "bio",
	}

	decisionBody = []map[string]string{{
		"request_id":     "<int: request_id>",
		"action_granted": "true or false without quotes",
	}}

	logoutEndpoint  = endpoint{URL: "/logout", Method: http.MethodPost}
	profileEndpoint = endpoint{URL: "/user/profile", Method: http.MethodGet}
)

func anonymousCatalogue() catalogue {
	return catalogue{
		"register": {URL: "/register", Method: http.MethodPost, Body: registerBody},
		"login": {URL: "/login", Method: http.MethodPost, Body: map[string]string{
			"username": "user_name",
			"password": "password",
		}},
	}
}

func userCatalogue() catalogue {
	return catalogue{
		"profile": profileEndpoint,
		"tweets":  {URL: "/user/tweets", Method: http.MethodGet},
		"update_profile": {URL: "/user/update", Method: http.MethodPut, Body: map[string]string{
			"first_name": "first_name",
			"last_name":  "last_name",
			"bio":        "bio",
		}},
		"new_tweet": {URL: "/newtweet", Method: http.MethodPost, Body: map[string]string{"tweet": "tweet"}},
		"edit_tweet": {URL: "/edittweet", Method: http.MethodPut, Body: map[string]string{
			"tweet_id":  "<int: tweet_id>",
			"new_tweet": "tweet",
		}},
		"delete_tweet": {URL: "/deletetweet", Method: http.MethodPut, Body: map[string]string{
			"tweet_id": "<int: tweet_id>",
		}},
		"logout": logoutEndpoint,
	}
}

func adminCatalogue() catalogue {
	return catalogue{
		"profile":           profileEndpoint,
		"some_user_profile": {URL: "/user/<int: user_id>/profile", Method: http.MethodGet},
		"all_user_profiles": {URL: "/all/user/profile", Method: http.MethodGet},
		"some_user_tweets":  {URL: "/user/<int: user_id>/tweets", Method: http.MethodGet},
		"update_user_profile": {URL: "/user/update/request", Method: http.MethodPost, Body: map[string]string{
			"user_id":        "<int: user_id>",
			"new_bio":        "new_bio",
			"new_first_name": "new_first_name",
			"new_last_name":  "new_last_name",
		}},
		"update_tweet": {URL: "/tweet/update/request", Method: http.MethodPost, Body: map[string]string{
			"tweet_id":  "<int: tweet_id>",
			"new_tweet": "new_tweet",
		}},
		"delete_tweet": {URL: "/tweet/delete/request", Method: http.MethodPost, Body: map[string]string{
			"tweet_id": "<int: tweet_id>",
		}},
		"create_tweet": {URL: "/tweet/create/request", Method: http.MethodPost, Body: map[string]string{
			"user_id": "<int: user_id>",
			"tweet":   "tweet",
		}},
		"logout": logoutEndpoint,
	}
}

func superAdminCatalogue() catalogue {
	adminBody := make(map[string]string, len(registerBody)+2)
	for k, v := range registerBody {
		adminBody[k] = v
	}
	adminBody["is_admin"] = "true or false without quotes"
	adminBody["is_superadmin"] = "true or false without quotes"

	return catalogue{
		"profile":                           profileEndpoint,
		"register_admin":                    {URL: "/register/admin", Method: http.MethodPost, Body: adminBody},
		"update_user_request":               {URL: "/request/users", Method: http.MethodGet},
		"CUD_tweet_requests":                {URL: "/request/tweets", Method: http.MethodGet},
		"response_to_update_user_requests":  {URL: "/respond/users", Method: http.MethodPut, Body: decisionBody},
		"response_to_update_tweet_requests": {URL: "/respond/tweets/update", Method: http.MethodPut, Body: decisionBody},
		"response_to_delete_tweet_requests": {URL: "/respond/tweets/delete", Method: http.MethodPut, Body: decisionBody},
		"response_to_create_tweet_requests": {URL: "/respond/tweets/create", Method: http.MethodPut, Body: decisionBody},
		"view_logs":                         {URL: "/logs", Method: http.MethodGet},
		"query_logs": {URL: "/logs/query", Method: http.MethodPost, Body: map[string]any{
			"show_logs": "true or false without quotes",
			"query": map[string]string{
				"from":     "oldest entry to consider, in asctime format",
				"to":       "latest entry to consider, in asctime format",
				"log_type": "action or audit or access (any one)",
				"source":   "username of the user performing access/action/audit.",
				"object":   "user:username or tweet:tweet_id",
				"message":  "words that must be present in message of log",
			},
		}},
		"logout": logoutEndpoint,
	}
}

// IndexHandler lists the endpoints available to the caller's tier.
type IndexHandler struct {
	byTier map[domain.Tier]catalogue
}

// NewIndexHandler creates an IndexHandler.
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{byTier: map[domain.Tier]catalogue{
		domain.TierAnonymous:  anonymousCatalogue(),
		domain.TierUser:       userCatalogue(),
		domain.TierAdmin:      adminCatalogue(),
		domain.TierSuperAdmin: superAdminCatalogue(),
	}}
}

// Index handles GET /.
func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	tier := domain.TierAnonymous
	if actor, ok := ctxutil.ActorFromCtx(r.Context()); ok {
		tier = actor.Tier
	}

	writeJSON(w, http.StatusOK, h.byTier[tier])
}
