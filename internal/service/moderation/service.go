// Package moderation implements the approval workflow: admins propose
// changes to tweets and profiles, super-admins grant or reject them.
package moderation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the moderation service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, changes domain.ProfileChanges) (*domain.User, error)
}

// tweetRepo defines the tweet repository interface needed by the moderation service.
type tweetRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Tweet, error)
	Create(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error)
	UpdateText(ctx context.Context, id int64, text string) (*domain.Tweet, error)
	Delete(ctx context.Context, id int64) error
}

// requestRepo defines the approval request repository interface.
type requestRepo interface {
	CreateTweetCreate(ctx context.Context, req *domain.CreateTweetRequest) (int64, error)
	CreateTweetUpdate(ctx context.Context, req *domain.UpdateTweetRequest) (int64, error)
	CreateTweetDelete(ctx context.Context, req *domain.DeleteTweetRequest) (int64, error)
	CreateUserUpdate(ctx context.Context, req *domain.UpdateUserRequest) (int64, error)

	GetTweetCreate(ctx context.Context, id int64) (*domain.CreateTweetRequest, error)
	GetTweetUpdate(ctx context.Context, id int64) (*domain.UpdateTweetRequest, error)
	GetTweetDelete(ctx context.Context, id int64) (*domain.DeleteTweetRequest, error)
	GetUserUpdate(ctx context.Context, id int64) (*domain.UpdateUserRequest, error)

	ListPendingTweetCreates(ctx context.Context) ([]domain.CreateTweetRequest, error)
	ListPendingTweetUpdates(ctx context.Context) ([]domain.UpdateTweetRequest, error)
	ListPendingTweetDeletes(ctx context.Context) ([]domain.DeleteTweetRequest, error)
	ListPendingUserUpdates(ctx context.Context) ([]domain.UpdateUserRequest, error)

	MarkResolved(ctx context.Context, kind domain.RequestKind, id int64, granted bool) error
}

// txManager defines the transaction manager interface needed by the moderation service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// auditSink receives access, action and audit events.
type auditSink interface {
	Emit(ctx context.Context, ev domain.AuditEvent)
}

// recorder counts workflow activity.
type recorder interface {
	ProposalCreated(kind domain.RequestKind)
	ResolutionRecorded(kind domain.RequestKind, outcome domain.Outcome)
}

// Service implements the moderation workflow.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tweets   tweetRepo
	requests requestRepo
	tx       txManager
	audit    auditSink
	metrics  recorder
}

// NewService creates a new moderation service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tweets tweetRepo,
	requests requestRepo,
	tx txManager,
	audit auditSink,
	metrics recorder,
) *Service {
	return &Service{
		log:      logger.With("service", "moderation"),
		users:    users,
		tweets:   tweets,
		requests: requests,
		tx:       tx,
		audit:    audit,
		metrics:  metrics,
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
