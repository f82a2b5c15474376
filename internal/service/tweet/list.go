package tweet

import (
	"context"
	"fmt"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

// ListOwn returns the caller's tweets, newest first.
func (s *Service) ListOwn(ctx context.Context) ([]domain.Tweet, error) {
	actor, err := policy.RequireTier(ctx, domain.TierUser)
	if err != nil {
		return nil, err
	}

	tweets, err := s.tweets.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("tweet.ListOwn: %w", err)
	}

	s.emit(ctx, actor, domain.LogTypeAccess, "", fmt.Sprintf("User:%s visits tweets page", actor.Username))
	return tweets, nil
}

// ListForUser returns the tweets of a plain user to an admin, newest first.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Tweet, error) {
	actor, err := policy.RequireTier(ctx, domain.TierAdmin)
	if err != nil {
		return nil, err
	}

	target, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("tweet.ListForUser: %w", err)
	}
	if !policy.CanViewUser(actor, target) {
		return nil, domain.ErrForbidden
	}

	tweets, err := s.tweets.ListByUser(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("tweet.ListForUser: %w", err)
	}

	s.emit(ctx, actor, domain.LogTypeAccess, domain.UserObject(target.Username),
		fmt.Sprintf("Admin:%s accesses User:%s tweets", actor.Username, target.Username))
	return tweets, nil
}
