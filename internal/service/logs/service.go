// Package logs serves the audit log to super-admins.
package logs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

type logReader interface {
	ReadAll(ctx context.Context) ([]domain.LogRecord, error)
}

type auditSink interface {
	Emit(ctx context.Context, ev domain.AuditEvent)
}

// Service reads and filters the audit log.
type Service struct {
	log    *slog.Logger
	reader logReader
	audit  auditSink
}

// NewService creates a new logs service instance.
func NewService(logger *slog.Logger, reader logReader, audit auditSink) *Service {
	return &Service{
		log:    logger.With("service", "logs"),
		reader: reader,
		audit:  audit,
	}
}

// QueryInput is a log query. A nil Query means the client sent none.
type QueryInput struct {
	Query    *map[string]string
	ShowLogs bool
}

// QueryResult holds the match count and, when requested, the matching records.
type QueryResult struct {
	Count int
	Logs  []domain.LogRecord
}

// All returns every record in the audit log, oldest first.
func (s *Service) All(ctx context.Context) ([]domain.LogRecord, error) {
	actor, err := policy.RequireTier(ctx, domain.TierSuperAdmin)
	if err != nil {
		return nil, err
	}

	records, err := s.reader.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("logs.All: %w", err)
	}

	s.emit(ctx, actor, fmt.Sprintf("Superadmin:%s accessing logs", actor.Username))
	return records, nil
}

// Query filters the audit log by the given criteria.
func (s *Service) Query(ctx context.Context, input QueryInput) (*QueryResult, error) {
	actor, err := policy.RequireTier(ctx, domain.TierSuperAdmin)
	if err != nil {
		return nil, err
	}
	if input.Query == nil {
		return nil, domain.ErrMissingQuery
	}

	records, err := s.reader.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("logs.Query: %w", err)
	}

	matched := domain.LogQuery{Criteria: *input.Query}.Filter(records)
	s.emit(ctx, actor, fmt.Sprintf("Superadmin:%s quering from logs", actor.Username))

	s.log.DebugContext(ctx, "log query evaluated",
		slog.Int("criteria", len(*input.Query)),
		slog.Int("scanned", len(records)),
		slog.Int("matched", len(matched)),
	)

	result := &QueryResult{Count: len(matched)}
	if input.ShowLogs {
		result.Logs = matched
	}
	return result, nil
}

func (s *Service) emit(ctx context.Context, actor domain.Actor, msg string) {
	s.audit.Emit(ctx, domain.AuditEvent{
		Message: msg,
		Source:  actor.Username,
		LogType: domain.LogTypeAccess,
	})
}
