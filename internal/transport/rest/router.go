package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/twitter-backend/internal/transport/middleware"
)

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Index      *IndexHandler
	Auth       *AuthHandler
	Users      *UserHandler
	Tweets     *TweetHandler
	Moderation *ModerationHandler
	Logs       *LogsHandler
	Health     *HealthHandler
	Metrics    http.Handler
}

// NewRouter mounts the API routes behind mws. Probes and /metrics are served
// without the middleware stack.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Chain(mws...))
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "Not found.")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusMethodNotAllowed, msgBadRequest)
		})

		r.Get("/", h.Index.Index)

		r.Post("/register", h.Auth.Register)
		r.Post("/register/admin", h.Auth.RegisterAdmin)
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)

		r.Get("/user/profile", h.Users.Profile)
		r.Put("/user/update", h.Users.UpdateProfile)
		r.Get("/all/user/profile", h.Users.ListProfiles)
		r.Get("/user/{user_id}/profile", h.Users.UserProfile)

		r.Get("/user/tweets", h.Tweets.OwnTweets)
		r.Get("/user/{user_id}/tweets", h.Tweets.UserTweets)
		r.Post("/newtweet", h.Tweets.Create)
		r.Put("/edittweet", h.Tweets.Edit)
		r.Put("/deletetweet", h.Tweets.Delete)

		r.Post("/tweet/create/request", h.Moderation.ProposeTweetCreate)
		r.Post("/tweet/update/request", h.Moderation.ProposeTweetUpdate)
		r.Post("/tweet/delete/request", h.Moderation.ProposeTweetDelete)
		r.Post("/user/update/request", h.Moderation.ProposeUserUpdate)

		r.Get("/request/users", h.Moderation.PendingUserUpdates)
		r.Get("/request/tweets", h.Moderation.PendingTweetRequests)

		r.Put("/respond/users", h.Moderation.RespondUsers)
		r.Put("/respond/tweets/update", h.Moderation.RespondTweetUpdates)
		r.Put("/respond/tweets/delete", h.Moderation.RespondTweetDeletes)
		r.Put("/respond/tweets/create", h.Moderation.RespondTweetCreates)

		r.Get("/logs", h.Logs.All)
		r.Post("/logs/query", h.Logs.Query)
	})

	return r
}
