package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/twitter-backend/internal/auth"
	"github.com/heartmarshall/twitter-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64) (string, auth.Claims, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// tokenDenylist remembers access tokens revoked by logout until they expire.
type tokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// auditSink receives access events.
type auditSink interface {
	Emit(ctx context.Context, ev domain.AuditEvent)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	jwt       jwtManager
	passwords passwordHasher
	denylist  tokenDenylist
	audit     auditSink
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	passwords passwordHasher,
	denylist tokenDenylist,
	audit auditSink,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		jwt:       jwt,
		passwords: passwords,
		denylist:  denylist,
		audit:     audit,
	}
}

// issueToken generates an access token for the given user.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, claims, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt,
		User:        user,
	}, nil
}

func (s *Service) emit(ctx context.Context, source, object, msg string) {
	s.audit.Emit(ctx, domain.AuditEvent{
		Message: msg,
		Source:  source,
		LogType: domain.LogTypeAccess,
		Object:  object,
	})
}
