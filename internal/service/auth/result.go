package auth

import (
	"time"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

// AuthResult holds the outcome of a successful authentication.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
