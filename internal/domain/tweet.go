package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTweetLength is the maximum tweet length in characters after trimming.
const MaxTweetLength = 280

const (
	msgTweetEmpty  = "tweet cannot be empty."
	msgTweetLength = "tweet must be less than or equal to 280 characters and must not be empty."
)

// Tweet is a short text post owned by one user.
type Tweet struct {
	ID        int64
	UserID    int64
	Text      string
	CreatedAt time.Time
}

// NormalizeTweetText trims raw and checks the length rules.
// An empty raw value and a value that is empty or too long after trimming
// are reported with different messages.
func NormalizeTweetText(field, raw string) (string, error) {
	if raw == "" {
		return "", NewValidationError(field, msgTweetEmpty)
	}
	text := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(text)
	if n == 0 || n > MaxTweetLength {
		return "", NewValidationError(field, msgTweetLength)
	}
	return text, nil
}
