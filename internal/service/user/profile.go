package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrForbidden for anonymous callers.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	actor, err := policy.RequireAtLeast(ctx, domain.TierUser)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	s.emit(ctx, actor, domain.LogTypeAccess, "", fmt.Sprintf("%s visits profile page", actor.Username))
	return user, nil
}

// UpdateProfile overwrites the non-empty profile fields. Users update their
// own profile; super-admins update the user named by input.UserID directly.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	// Step 1: Authorize and resolve the target
	actor, err := policy.RequireTier(ctx, domain.TierUser, domain.TierSuperAdmin)
	if err != nil {
		return nil, err
	}

	target := actor
	if actor.Tier == domain.TierSuperAdmin {
		u, err := s.loadUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile: %w", err)
		}
		target = domain.ActorFor(u)
	}

	// Step 2: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 3: Update profile
	user, err := s.users.UpdateProfile(ctx, target.UserID, input.Changes())
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w: %v", domain.ErrPersistence, err)
	}

	// Step 4: Record the update
	msg := fmt.Sprintf("User:%s updated his profile", actor.Username)
	if target.UserID != actor.UserID {
		msg = fmt.Sprintf("Superadmin:%s updated User:%s profile", actor.Username, target.Username)
	}
	s.emit(ctx, actor, domain.LogTypeAudit, domain.UserObject(target.Username), msg)

	s.log.InfoContext(ctx, "profile updated",
		slog.Int64("user_id", target.UserID),
		slog.Int64("by", actor.UserID),
	)
	return user, nil
}
