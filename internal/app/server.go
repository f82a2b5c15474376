package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/twitter-backend/internal/adapter/auditlog"
	"github.com/heartmarshall/twitter-backend/internal/adapter/postgres"
	requestrepo "github.com/heartmarshall/twitter-backend/internal/adapter/postgres/request"
	tweetrepo "github.com/heartmarshall/twitter-backend/internal/adapter/postgres/tweet"
	userrepo "github.com/heartmarshall/twitter-backend/internal/adapter/postgres/user"
	redisadapter "github.com/heartmarshall/twitter-backend/internal/adapter/redis"
	authpkg "github.com/heartmarshall/twitter-backend/internal/auth"
	"github.com/heartmarshall/twitter-backend/internal/config"
	"github.com/heartmarshall/twitter-backend/internal/observability"
	authsvc "github.com/heartmarshall/twitter-backend/internal/service/auth"
	logssvc "github.com/heartmarshall/twitter-backend/internal/service/logs"
	"github.com/heartmarshall/twitter-backend/internal/service/moderation"
	tweetsvc "github.com/heartmarshall/twitter-backend/internal/service/tweet"
	usersvc "github.com/heartmarshall/twitter-backend/internal/service/user"
	"github.com/heartmarshall/twitter-backend/internal/transport/middleware"
	"github.com/heartmarshall/twitter-backend/internal/transport/rest"
)

// Deps are the long-lived resources the HTTP handler is built on.
// The caller owns them and closes them after the server stops.
type Deps struct {
	Pool    *pgxpool.Pool
	Redis   goredis.UniversalClient
	Audit   *auditlog.Sink
	Metrics *observability.Metrics
}

// NewHandler wires repositories, services and handlers into the HTTP router.
func NewHandler(logger *slog.Logger, cfg *config.Config, d Deps, version string) http.Handler {
	// Repositories.
	txm := postgres.NewTxManager(d.Pool)
	users := userrepo.New(d.Pool)
	tweets := tweetrepo.New(d.Pool)
	requests := requestrepo.New(d.Pool)

	// Infrastructure adapters.
	denylist := redisadapter.NewDenylist(d.Redis, cfg.Redis.KeyPrefix)
	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	passwords := authpkg.NewPasswordHasher(cfg.Auth.BcryptCost)
	reader := auditlog.NewReader(cfg.AuditLog.Path)

	// Services.
	authService := authsvc.NewService(logger, users, jwt, passwords, denylist, d.Audit)
	userService := usersvc.NewService(logger, users, d.Audit)
	tweetService := tweetsvc.NewService(logger, users, tweets, d.Audit)
	moderationService := moderation.NewService(logger, users, tweets, requests, txm, d.Audit, d.Metrics)
	logsService := logssvc.NewService(logger, reader, d.Audit)

	handlers := rest.Handlers{
		Index:      rest.NewIndexHandler(),
		Auth:       rest.NewAuthHandler(authService, logger),
		Users:      rest.NewUserHandler(userService, logger),
		Tweets:     rest.NewTweetHandler(tweetService, logger),
		Moderation: rest.NewModerationHandler(moderationService, logger),
		Logs:       rest.NewLogsHandler(logsService, logger),
		Health: rest.NewHealthHandler(version, map[string]rest.Pinger{
			"database": d.Pool,
			"redis":    denylist,
		}),
		Metrics: d.Metrics.Handler(),
	}

	return rest.NewRouter(handlers,
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger, d.Metrics),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService, logger),
	)
}
