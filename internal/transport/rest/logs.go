package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/service/logs"
)

type logsService interface {
	All(ctx context.Context) ([]domain.LogRecord, error)
	Query(ctx context.Context, input logs.QueryInput) (*logs.QueryResult, error)
}

// LogsHandler serves the audit log endpoints.
type LogsHandler struct {
	svc logsService
	log *slog.Logger
}

// NewLogsHandler creates a LogsHandler.
func NewLogsHandler(svc logsService, logger *slog.Logger) *LogsHandler {
	return &LogsHandler{svc: svc, log: logger.With("handler", "logs")}
}

type logQueryRequest struct {
	Query    *map[string]string `json:"query"`
	ShowLogs bool               `json:"show_logs"`
}

// All handles GET /logs.
func (h *LogsHandler) All(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.All(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if records == nil {
		records = []domain.LogRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

// Query handles POST /logs/query.
func (h *LogsHandler) Query(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, domain.TierSuperAdmin) {
		return
	}
	var req logQueryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Query(r.Context(), logs.QueryInput{Query: req.Query, ShowLogs: req.ShowLogs})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogQueryResponse(res))
}
