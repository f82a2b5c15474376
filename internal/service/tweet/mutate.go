package tweet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

// Create posts a tweet. Users post as themselves; super-admins post
// directly on behalf of the plain user named by input.UserID.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Tweet, error) {
	// Step 1: Authorize and resolve the owner
	actor, err := policy.RequireTier(ctx, domain.TierUser, domain.TierSuperAdmin)
	if err != nil {
		return nil, err
	}

	owner := actor
	if actor.Tier == domain.TierSuperAdmin {
		target, err := s.loadUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("tweet.Create: %w", err)
		}
		if target.Tier().IsPrivileged() {
			return nil, domain.Denied("not have access to tweet from this user.")
		}
		owner = domain.ActorFor(target)
	}

	// Step 2: Validate
	text, err := domain.NormalizeTweetText("tweet", input.Tweet)
	if err != nil {
		return nil, err
	}

	// Step 3: Persist
	t, err := s.tweets.Create(ctx, &domain.Tweet{UserID: owner.UserID, Text: text})
	if err != nil {
		return nil, fmt.Errorf("tweet.Create: %w: %v", domain.ErrPersistence, err)
	}

	msg := fmt.Sprintf("User:%s posted new tweet with id:%d", owner.Username, t.ID)
	if owner.UserID != actor.UserID {
		msg = fmt.Sprintf("Superadmin:%s posted new tweet with id:%d for User:%s", actor.Username, t.ID, owner.Username)
	}
	s.emit(ctx, actor, domain.LogTypeAction, domain.TweetObject(t.ID), msg)

	s.log.InfoContext(ctx, "tweet created",
		slog.Int64("tweet_id", t.ID),
		slog.Int64("user_id", t.UserID),
	)
	return t, nil
}

// Edit replaces the text of a tweet owned by the caller, or any tweet for super-admins.
func (s *Service) Edit(ctx context.Context, input EditInput) (*domain.Tweet, error) {
	actor, err := policy.RequireTier(ctx, domain.TierUser, domain.TierSuperAdmin)
	if err != nil {
		return nil, err
	}

	t, err := s.loadOwned(ctx, actor, input.TweetID)
	if err != nil {
		return nil, fmt.Errorf("tweet.Edit: %w", err)
	}

	text, err := domain.NormalizeTweetText("new_tweet", input.NewTweet)
	if err != nil {
		return nil, err
	}

	updated, err := s.tweets.UpdateText(ctx, t.ID, text)
	if err != nil {
		return nil, fmt.Errorf("tweet.Edit: %w: %v", domain.ErrPersistence, err)
	}

	msg := fmt.Sprintf("User:%s edited his tweet with id:%d", actor.Username, t.ID)
	if actor.Tier == domain.TierSuperAdmin {
		msg = fmt.Sprintf("Superadmin:%s edited tweet with id:%d", actor.Username, t.ID)
	}
	s.emit(ctx, actor, domain.LogTypeAudit, domain.TweetObject(t.ID), msg)
	return updated, nil
}

// Delete removes a tweet owned by the caller, or any tweet for super-admins.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	actor, err := policy.RequireTier(ctx, domain.TierUser, domain.TierSuperAdmin)
	if err != nil {
		return err
	}

	t, err := s.loadOwned(ctx, actor, input.TweetID)
	if err != nil {
		return fmt.Errorf("tweet.Delete: %w", err)
	}

	if err := s.tweets.Delete(ctx, t.ID); err != nil {
		return fmt.Errorf("tweet.Delete: %w: %v", domain.ErrPersistence, err)
	}

	msg := fmt.Sprintf("User:%s deleted his tweet with id:%d", actor.Username, t.ID)
	if actor.Tier == domain.TierSuperAdmin {
		msg = fmt.Sprintf("Superadmin:%s deleted tweet with id:%d", actor.Username, t.ID)
	}
	s.emit(ctx, actor, domain.LogTypeAudit, domain.TweetObject(t.ID), msg)

	s.log.InfoContext(ctx, "tweet deleted", slog.Int64("tweet_id", t.ID))
	return nil
}
