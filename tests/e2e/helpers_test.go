//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/twitter-backend/internal/adapter/auditlog"
	"github.com/heartmarshall/twitter-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/twitter-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/twitter-backend/internal/app"
	"github.com/heartmarshall/twitter-backend/internal/config"
	"github.com/heartmarshall/twitter-backend/internal/observability"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Redis  *miniredis.Miniredis
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application handler on a PostgreSQL
// container (shared via testhelper), miniredis and a temporary audit log.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	mr := miniredis.RunT(t)
	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
			BcryptCost:     4,
		},
		Redis: config.RedisConfig{KeyPrefix: "test:revoked:"},
		AuditLog: config.AuditLogConfig{
			Path:       filepath.Join(t.TempDir(), "audit.log"),
			MaxSizeMB:  1,
			MaxBackups: 1,
			QueueSize:  256,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         60,
		},
	}

	metrics := observability.NewMetrics()
	sink, err := auditlog.NewSink(cfg.AuditLog, logger, metrics.SinkMetrics())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })

	handler := app.NewHandler(logger, cfg, app.Deps{
		Pool:    pool,
		Redis:   redisClient,
		Audit:   sink,
		Metrics: metrics,
	}, "test-version")

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Redis: mr}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// call sends a JSON request and returns the status and raw body.
func (ts *testServer) call(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// callJSON is call with the body decoded into T.
func callJSON[T any](t *testing.T, ts *testServer, method, path, token string, body any) (int, T) {
	t.Helper()

	status, raw := ts.call(t, method, path, token, body)
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), "body: %s", raw)
	return status, v
}

// account is a registered user and its access token.
type account struct {
	ID       int64
	Username string
	Token    string
}

// register signs up a fresh account through the API.
func register(t *testing.T, ts *testServer) account {
	t.Helper()

	name := "u" + uuid.New().String()[:8]
	status, resp := callJSON[map[string]any](t, ts, http.MethodPost, "/register", "", map[string]any{
		"username":     name,
		"email":        name + "@example.com",
		"password":     "pa55word",
		"confirmation": "pa55word",
		"first_name":   "First",
		"last_name":    "Last",
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", resp)

	user := resp["user"].(map[string]any)
	return account{
		ID:       int64(user["id"].(float64)),
		Username: name,
		Token:    resp["access_token"].(string),
	}
}

// registerWithRole signs up an account, sets its flags directly in the
// database and logs in again so the new tier applies.
func registerWithRole(t *testing.T, ts *testServer, staff, superuser bool) account {
	t.Helper()

	acc := register(t, ts)
	_, err := userrepo.New(ts.Pool).SetPrivileges(context.Background(), acc.Username, staff, superuser)
	require.NoError(t, err)

	status, resp := callJSON[map[string]any](t, ts, http.MethodPost, "/login", "", map[string]string{
		"username": acc.Username,
		"password": "pa55word",
	})
	require.Equal(t, http.StatusOK, status, "login: %v", resp)
	acc.Token = resp["access_token"].(string)
	return acc
}

func newAdmin(t *testing.T, ts *testServer) account {
	t.Helper()
	return registerWithRole(t, ts, true, false)
}

func newSuperAdmin(t *testing.T, ts *testServer) account {
	t.Helper()
	return registerWithRole(t, ts, true, true)
}
