package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

// ListProfiles returns every non-privileged profile (admin only).
func (s *Service) ListProfiles(ctx context.Context) ([]domain.User, error) {
	actor, err := policy.RequireTier(ctx, domain.TierAdmin)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListNonPrivileged(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListProfiles: %w", err)
	}

	s.emit(ctx, actor, domain.LogTypeAccess, "", fmt.Sprintf("Admin:%s accessing all user profiles.", actor.Username))
	return users, nil
}

// GetUserProfile returns the profile of a plain user (admin only).
// Admins cannot view themselves or other privileged accounts here.
func (s *Service) GetUserProfile(ctx context.Context, userID int64) (*domain.User, error) {
	actor, err := policy.RequireTier(ctx, domain.TierAdmin)
	if err != nil {
		return nil, err
	}

	target, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetUserProfile: %w", err)
	}
	if !policy.CanViewUser(actor, target) {
		return nil, domain.ErrForbidden
	}

	s.emit(ctx, actor, domain.LogTypeAccess, domain.UserObject(target.Username),
		fmt.Sprintf("Admin:%s accesses User:%s profile", actor.Username, target.Username))
	return target, nil
}
