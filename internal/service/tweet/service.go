// Package tweet implements direct tweet management for users and super-admins.
package tweet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type tweetRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Tweet, error)
	Create(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error)
	UpdateText(ctx context.Context, id int64, text string) (*domain.Tweet, error)
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Tweet, error)
}

type auditSink interface {
	Emit(ctx context.Context, ev domain.AuditEvent)
}

// Service provides tweet operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tweets tweetRepo
	audit  auditSink
}

// NewService creates a new tweet service instance.
func NewService(logger *slog.Logger, users userRepo, tweets tweetRepo, audit auditSink) *Service {
	return &Service{
		log:    logger.With("service", "tweet"),
		users:  users,
		tweets: tweets,
		audit:  audit,
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

// loadOwned returns the tweet when actor may change it: users only their
// own tweets, super-admins any tweet.
func (s *Service) loadOwned(ctx context.Context, actor domain.Actor, id int64) (*domain.Tweet, error) {
	if id <= 0 {
		return nil, domain.NotFound("tweet")
	}
	t, err := s.tweets.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("tweet")
	}
	if err != nil {
		return nil, fmt.Errorf("get tweet: %w", err)
	}
	if actor.Tier != domain.TierSuperAdmin && t.UserID != actor.UserID {
		return nil, domain.Denied("Access denied to this tweet.")
	}
	return t, nil
}
