package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

// Register creates a new plain user and logs them in.
// Returns ErrAlreadyExists if the email or username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Step 1: Only anonymous callers sign up
	if _, err := policy.RequireTier(ctx, domain.TierAnonymous); err != nil {
		return nil, err
	}

	// Step 2: Create the account
	user, err := s.createUser(ctx, input.normalize(), false, false)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 3: Issue token
	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.emit(ctx, user.Username, "", fmt.Sprintf("%s signs up", user.Username))
	s.emit(ctx, user.Username, "", fmt.Sprintf("%s logs in", user.Username))
	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))

	return result, nil
}

// RegisterAdmin creates an account on behalf of a super-admin, optionally
// flagged as admin or super-admin.
func (s *Service) RegisterAdmin(ctx context.Context, input RegisterAdminInput) (*domain.User, error) {
	actor, err := policy.RequireTier(ctx, domain.TierSuperAdmin)
	if err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, input.RegisterInput.normalize(), input.IsAdmin, input.IsSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterAdmin: %w", err)
	}

	s.emit(ctx, actor.Username, domain.UserObject(user.Username),
		fmt.Sprintf("Superadmin:%s signs up %s", actor.Username, user.Username))
	s.log.InfoContext(ctx, "account created by super-admin",
		slog.Int64("user_id", user.ID),
		slog.String("tier", user.Tier().String()),
	)

	return user, nil
}

func (s *Service) createUser(ctx context.Context, input RegisterInput, staff, superuser bool) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Email and username uniqueness are enforced by DB constraints.
	user, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Bio:          input.Bio,
		IsStaff:      staff,
		IsSuperuser:  superuser,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
