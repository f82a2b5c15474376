package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, changes domain.ProfileChanges) (*domain.User, error)
	ListNonPrivileged(ctx context.Context) ([]domain.User, error)
}

// auditSink defines the audit log the user service reports to.
type auditSink interface {
	Emit(ctx context.Context, ev domain.AuditEvent)
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	audit auditSink
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, audit auditSink) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		audit: audit,
	}
}

func (s *Service) emit(ctx context.Context, actor domain.Actor, logType domain.LogType, object, msg string) {
	s.audit.Emit(ctx, domain.AuditEvent{
		Message: msg,
		Source:  actor.Username,
		LogType: logType,
		Object:  object,
	})
}

func (s *Service) loadUser(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.NotFound("user")
	}
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("user")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
