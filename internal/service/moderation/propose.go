package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

// ProposeTweetCreate enqueues a request to post a tweet on behalf of a plain user.
func (s *Service) ProposeTweetCreate(ctx context.Context, input ProposeTweetCreateInput) error {
	// Step 1: Authorize
	actor, err := policy.RequireTier(ctx, domain.TierAdmin)
	if err != nil {
		return err
	}

	// Step 2: Validate target and content
	target, err := s.loadUser(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("moderation.ProposeTweetCreate: %w", err)
	}
	if target.Tier().IsPrivileged() {
		return domain.Denied("not have access to tweet from this user.")
	}
	if input.Tweet == "" {
		return domain.NewValidationError("tweet", "tweet not present.")
	}
	text, err := domain.NormalizeTweetText("tweet", input.Tweet)
	if err != nil {
		return err
	}

	// Step 3: Enqueue
	id, err := s.requests.CreateTweetCreate(ctx, &domain.CreateTweetRequest{
		RequestState: domain.RequestState{AdminID: actor.UserID},
		UserID:       target.ID,
		Tweet:        text,
	})
	if err != nil {
		return s.persistFailed(ctx, "moderation.ProposeTweetCreate", err)
	}

	s.proposed(ctx, domain.RequestTweetCreate, id)
	s.emit(ctx, actor, domain.LogTypeAction, domain.UserObject(target.Username),
		fmt.Sprintf("Admin:%s requested posting of tweet from User:%s", actor.Username, target.Username))
	return nil
}

// ProposeTweetUpdate enqueues a request to replace the text of an existing tweet.
func (s *Service) ProposeTweetUpdate(ctx context.Context, input ProposeTweetUpdateInput) error {
	// Step 1: Authorize
	actor, err := policy.RequireTier(ctx, domain.TierAdmin)
	if err != nil {
		return err
	}

	// Step 2: Validate target and content
	tweet, err := s.loadTweet(ctx, input.TweetID)
	if err != nil {
		return fmt.Errorf("moderation.ProposeTweetUpdate: %w", err)
	}
	text, err := domain.NormalizeTweetText("new_tweet", input.NewTweet)
	if err != nil {
		return err
	}

	// Step 3: Enqueue
	id, err := s.requests.CreateTweetUpdate(ctx, &domain.UpdateTweetRequest{
		RequestState: domain.RequestState{AdminID: actor.UserID},
		TweetID:      tweet.ID,
		NewTweet:     text,
	})
	if err != nil {
		return s.persistFailed(ctx, "moderation.ProposeTweetUpdate", err)
	}

	s.proposed(ctx, domain.RequestTweetUpdate, id)
	s.emit(ctx, actor, domain.LogTypeAction, domain.TweetObject(tweet.ID),
		fmt.Sprintf("Admin:%s requested an update of tweet with id:%d", actor.Username, tweet.ID))
	return nil
}

// ProposeTweetDelete enqueues a request to remove an existing tweet.
func (s *Service) ProposeTweetDelete(ctx context.Context, input ProposeTweetDeleteInput) error {
	// Step 1: Authorize
	actor, err := policy.RequireTier(ctx, domain.TierAdmin)
	if err != nil {
		return err
	}

	// Step 2: Validate target
	tweet, err := s.loadTweet(ctx, input.TweetID)
	if err != nil {
		return fmt.Errorf("moderation.ProposeTweetDelete: %w", err)
	}

	// Step 3: Enqueue
	id, err := s.requests.CreateTweetDelete(ctx, &domain.DeleteTweetRequest{
		RequestState: domain.RequestState{AdminID: actor.UserID},
		TweetID:      tweet.ID,
	})
	if err != nil {
		return s.persistFailed(ctx, "moderation.ProposeTweetDelete", err)
	}

	s.proposed(ctx, domain.RequestTweetDelete, id)
	s.emit(ctx, actor, domain.LogTypeAction, domain.TweetObject(tweet.ID),
		fmt.Sprintf("Admin:%s requested deletion of tweet with id:%d", actor.Username, tweet.ID))
	return nil
}

// ProposeUserUpdate enqueues a request to overwrite profile fields of a plain user.
func (s *Service) ProposeUserUpdate(ctx context.Context, input ProposeUserUpdateInput) error {
	// Step 1: Authorize
	actor, err := policy.RequireTier(ctx, domain.TierAdmin)
	if err != nil {
		return err
	}

	// Step 2: Validate target and fields
	target, err := s.loadUser(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("moderation.ProposeUserUpdate: %w", err)
	}
	if target.Tier().IsPrivileged() {
		return domain.Denied("not have access to update this user.")
	}
	if err := input.Validate(); err != nil {
		return err
	}

	// Step 3: Enqueue
	id, err := s.requests.CreateUserUpdate(ctx, &domain.UpdateUserRequest{
		RequestState: domain.RequestState{AdminID: actor.UserID},
		UserID:       target.ID,
		Changes:      input.Changes(),
	})
	if err != nil {
		return s.persistFailed(ctx, "moderation.ProposeUserUpdate", err)
	}

	s.proposed(ctx, domain.RequestUserUpdate, id)
	s.emit(ctx, actor, domain.LogTypeAction, domain.UserObject(target.Username),
		fmt.Sprintf("Admin:%s requested an update of User:%s's profile", actor.Username, target.Username))
	return nil
}

// loadUser maps a missing or unset id to a "user not present." error.
func (s *Service) loadUser(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.NotFound("user")
	}
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("user")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user: %v", domain.ErrPersistence, err)
	}
	return u, nil
}

// loadTweet maps a missing or unset id to a "tweet not present." error.
func (s *Service) loadTweet(ctx context.Context, id int64) (*domain.Tweet, error) {
	if id <= 0 {
		return nil, domain.NotFound("tweet")
	}
	t, err := s.tweets.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("tweet")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get tweet: %v", domain.ErrPersistence, err)
	}
	return t, nil
}

func (s *Service) persistFailed(ctx context.Context, op string, err error) error {
	s.log.ErrorContext(ctx, "request not persisted", slog.String("op", op), slog.String("error", err.Error()))
	return fmt.Errorf("%s: %w: %v", op, domain.ErrPersistence, err)
}

func (s *Service) proposed(ctx context.Context, kind domain.RequestKind, id int64) {
	s.metrics.ProposalCreated(kind)
	s.log.InfoContext(ctx, "approval request created",
		slog.String("kind", kind.String()),
		slog.Int64("request_id", id),
	)
}
