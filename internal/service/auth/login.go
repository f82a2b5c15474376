package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

// Login authenticates a user with username + password.
// Unknown usernames and wrong passwords fail with the same validation error.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user
	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("username", msgBadCredentials)
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 3: Verify password
	ok, err := s.passwords.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login compare password: %w", err)
	}
	if !ok {
		return nil, domain.NewValidationError("password", msgBadCredentials)
	}

	// Step 4: Issue token
	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.emit(ctx, user.Username, "", fmt.Sprintf("%s logs in", user.Username))
	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return result, nil
}
