package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
	"github.com/heartmarshall/twitter-backend/pkg/ctxutil"
)

// Logout revokes the access token the request was authenticated with.
func (s *Service) Logout(ctx context.Context) error {
	actor, err := policy.RequireAtLeast(ctx, domain.TierUser)
	if err != nil {
		return err
	}
	token, ok := ctxutil.TokenFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.denylist.Revoke(ctx, token.ID, token.ExpiresAt); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.emit(ctx, actor.Username, "", fmt.Sprintf("%s logs out", actor.Username))
	s.log.InfoContext(ctx, "user logged out", slog.Int64("user_id", actor.UserID))
	return nil
}

// Authenticate validates an access token and resolves the actor from the
// stored user, so privilege changes apply to existing tokens.
// Returns ErrUnauthorized if the token is invalid, expired or revoked.
func (s *Service) Authenticate(ctx context.Context, token string) (domain.Actor, ctxutil.Token, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.AnonymousActor, ctxutil.Token{}, domain.ErrUnauthorized
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return domain.AnonymousActor, ctxutil.Token{}, fmt.Errorf("auth.Authenticate: %w", err)
	}
	if revoked {
		return domain.AnonymousActor, ctxutil.Token{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AnonymousActor, ctxutil.Token{}, domain.ErrUnauthorized
		}
		return domain.AnonymousActor, ctxutil.Token{}, fmt.Errorf("auth.Authenticate: %w", err)
	}

	return domain.ActorFor(user), ctxutil.Token{ID: claims.TokenID, ExpiresAt: claims.ExpiresAt}, nil
}
