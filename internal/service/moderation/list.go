package moderation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

// TweetRequests groups the pending tweet requests by kind.
type TweetRequests struct {
	Updates []domain.UpdateTweetRequest
	Deletes []domain.DeleteTweetRequest
	Creates []domain.CreateTweetRequest
}

// ListPendingUserUpdates returns pending profile update requests, oldest first.
func (s *Service) ListPendingUserUpdates(ctx context.Context) ([]domain.UpdateUserRequest, error) {
	actor, err := policy.RequireTier(ctx, domain.TierSuperAdmin)
	if err != nil {
		return nil, err
	}

	reqs, err := s.requests.ListPendingUserUpdates(ctx)
	if err != nil {
		return nil, fmt.Errorf("moderation.ListPendingUserUpdates: %w", err)
	}

	s.emit(ctx, actor, domain.LogTypeAccess, "",
		fmt.Sprintf("Superadmin:%s accesses requests related to user details", actor.Username))
	return reqs, nil
}

// ListPendingTweetRequests returns pending tweet requests of every kind, oldest first.
func (s *Service) ListPendingTweetRequests(ctx context.Context) (*TweetRequests, error) {
	actor, err := policy.RequireTier(ctx, domain.TierSuperAdmin)
	if err != nil {
		return nil, err
	}

	var out TweetRequests
	if out.Updates, err = s.requests.ListPendingTweetUpdates(ctx); err != nil {
		return nil, fmt.Errorf("moderation.ListPendingTweetRequests: updates: %w", err)
	}
	if out.Deletes, err = s.requests.ListPendingTweetDeletes(ctx); err != nil {
		return nil, fmt.Errorf("moderation.ListPendingTweetRequests: deletes: %w", err)
	}
	if out.Creates, err = s.requests.ListPendingTweetCreates(ctx); err != nil {
		return nil, fmt.Errorf("moderation.ListPendingTweetRequests: creates: %w", err)
	}

	s.emit(ctx, actor, domain.LogTypeAccess, "",
		fmt.Sprintf("Superadmin:%s accesses requests related to CUD of tweets", actor.Username))
	return &out, nil
}
