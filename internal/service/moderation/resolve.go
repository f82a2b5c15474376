package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

// pending is a loaded request ready for a decision. grant applies the
// change inside the resolution transaction and returns the approval message.
type pending struct {
	state  domain.RequestState
	reject string
	grant  func(ctx context.Context) (string, error)
}

// errTargetGone marks a grant whose tweet or user no longer exists.
var errTargetGone = errors.New("request target no longer present")

type loader func(ctx context.Context, actor domain.Actor, id int64) (*pending, error)

// ResolveTweetCreates decides a batch of tweet creation requests.
func (s *Service) ResolveTweetCreates(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error) {
	return s.resolve(ctx, domain.RequestTweetCreate, decisions, func(ctx context.Context, actor domain.Actor, id int64) (*pending, error) {
		req, err := s.requests.GetTweetCreate(ctx, id)
		if err != nil {
			return nil, err
		}
		return &pending{
			state:  req.RequestState,
			reject: fmt.Sprintf("Superadmin:%s rejected request to create new Tweet from Admin:%s", actor.Username, req.AdminUsername),
			grant: func(ctx context.Context) (string, error) {
				t, err := s.tweets.Create(ctx, &domain.Tweet{UserID: req.UserID, Text: req.Tweet})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Superadmin:%s approved request to create new Tweet:%d from Admin:%s", actor.Username, t.ID, req.AdminUsername), nil
			},
		}, nil
	})
}

// ResolveTweetUpdates decides a batch of tweet update requests.
func (s *Service) ResolveTweetUpdates(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error) {
	return s.resolve(ctx, domain.RequestTweetUpdate, decisions, func(ctx context.Context, actor domain.Actor, id int64) (*pending, error) {
		req, err := s.requests.GetTweetUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		msg := func(verb string) string {
			return fmt.Sprintf("Superadmin:%s %s request to update Tweet:%d from Admin:%s", actor.Username, verb, req.TweetID, req.AdminUsername)
		}
		return &pending{
			state:  req.RequestState,
			reject: msg("rejected"),
			grant: func(ctx context.Context) (string, error) {
				if _, err := s.tweets.UpdateText(ctx, req.TweetID, req.NewTweet); err != nil {
					return "", err
				}
				return msg("approved"), nil
			},
		}, nil
	})
}

// ResolveTweetDeletes decides a batch of tweet deletion requests.
func (s *Service) ResolveTweetDeletes(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error) {
	return s.resolve(ctx, domain.RequestTweetDelete, decisions, func(ctx context.Context, actor domain.Actor, id int64) (*pending, error) {
		req, err := s.requests.GetTweetDelete(ctx, id)
		if err != nil {
			return nil, err
		}
		msg := func(verb string) string {
			return fmt.Sprintf("Superadmin:%s %s request to delete Tweet:%d from Admin:%s", actor.Username, verb, req.TweetID, req.AdminUsername)
		}
		return &pending{
			state:  req.RequestState,
			reject: msg("rejected"),
			grant: func(ctx context.Context) (string, error) {
				if err := s.tweets.Delete(ctx, req.TweetID); err != nil {
					return "", err
				}
				return msg("approved"), nil
			},
		}, nil
	})
}

// ResolveUserUpdates decides a batch of profile update requests.
func (s *Service) ResolveUserUpdates(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error) {
	return s.resolve(ctx, domain.RequestUserUpdate, decisions, func(ctx context.Context, actor domain.Actor, id int64) (*pending, error) {
		req, err := s.requests.GetUserUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		msg := func(verb string) string {
			return fmt.Sprintf("Superadmin:%s %s request to update User:%s details from Admin:%s", actor.Username, verb, req.Username, req.AdminUsername)
		}
		return &pending{
			state:  req.RequestState,
			reject: msg("rejected"),
			grant: func(ctx context.Context) (string, error) {
				if _, err := s.users.UpdateProfile(ctx, req.UserID, req.Changes); err != nil {
					return "", err
				}
				return msg("approved"), nil
			},
		}, nil
	})
}

// resolve processes decisions strictly in order. Every item gets its own
// transaction and its own result; one failing item never stops the batch.
func (s *Service) resolve(ctx context.Context, kind domain.RequestKind, decisions []domain.Decision, load loader) ([]domain.ItemResult, error) {
	actor, err := policy.RequireTier(ctx, domain.TierSuperAdmin)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ItemResult, 0, len(decisions))
	for _, d := range decisions {
		outcome := s.resolveOne(ctx, actor, kind, d, load)
		s.metrics.ResolutionRecorded(kind, outcome)
		results = append(results, domain.ItemResult{RequestID: d.RequestID, Outcome: outcome})
	}

	s.log.InfoContext(ctx, "resolution batch processed",
		slog.String("kind", kind.String()),
		slog.Int("items", len(decisions)),
	)
	return results, nil
}

func (s *Service) resolveOne(ctx context.Context, actor domain.Actor, kind domain.RequestKind, d domain.Decision, load loader) domain.Outcome {
	// Step 1: Load and decide
	p, err := load(ctx, actor, d.RequestID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.OutcomeNotFound
	}
	if err != nil {
		s.itemFailed(ctx, kind, d.RequestID, err)
		return domain.OutcomeFailed
	}
	state := p.state
	if err := state.Resolve(d.ActionGranted); err != nil {
		return domain.OutcomeAlreadyResponded
	}

	// Step 2: Persist the decision and apply the grant atomically
	msg := p.reject
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.requests.MarkResolved(ctx, kind, d.RequestID, state.ActionGranted); err != nil {
			return err
		}
		if !state.ActionGranted {
			return nil
		}
		approved, err := p.grant(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			return errTargetGone
		}
		if err != nil {
			return err
		}
		msg = approved
		return nil
	})
	switch {
	case errors.Is(err, errTargetGone):
		return s.closeOrphan(ctx, actor, kind, d.RequestID, p.state.AdminUsername)
	case errors.Is(err, domain.ErrAlreadyResolved):
		return domain.OutcomeAlreadyResponded
	case errors.Is(err, domain.ErrNotFound):
		return domain.OutcomeNotFound
	case err != nil:
		s.itemFailed(ctx, kind, d.RequestID, err)
		return domain.OutcomeFailed
	}

	// Step 3: Audit after commit
	s.emit(ctx, actor, domain.LogTypeAudit, domain.UserObject(p.state.AdminUsername), msg)
	return domain.OutcomeSaved
}

// closeOrphan resolves a request whose target was removed after it was
// proposed. It is recorded as not granted and reported like a missing id,
// so it leaves the pending listings instead of failing on every retry.
func (s *Service) closeOrphan(ctx context.Context, actor domain.Actor, kind domain.RequestKind, id int64, admin string) domain.Outcome {
	err := s.requests.MarkResolved(ctx, kind, id, false)
	switch {
	case errors.Is(err, domain.ErrAlreadyResolved):
		return domain.OutcomeAlreadyResponded
	case errors.Is(err, domain.ErrNotFound):
		return domain.OutcomeNotFound
	case err != nil:
		s.itemFailed(ctx, kind, id, err)
		return domain.OutcomeFailed
	}

	s.emit(ctx, actor, domain.LogTypeAudit, domain.UserObject(admin),
		fmt.Sprintf("Superadmin:%s closed %s request with id:%d from Admin:%s, target no longer present", actor.Username, kind, id, admin))
	return domain.OutcomeNotFound
}

func (s *Service) itemFailed(ctx context.Context, kind domain.RequestKind, id int64, err error) {
	s.log.ErrorContext(ctx, "request resolution failed",
		slog.String("kind", kind.String()),
		slog.Int64("request_id", id),
		slog.String("error", err.Error()),
	)
}
