package domain

import (
	"time"
	"unicode/utf8"
)

// MaxNameLength bounds first and last names in characters.
const MaxNameLength = 150

// User is a registered account. The two privilege flags are the only stored
// authority; the tier is derived from them on every request.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Bio          string
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
}

// Tier returns the access tier derived from the user's flags.
func (u *User) Tier() Tier {
	return TierOf(u)
}

// ProfileChanges carries the non-empty profile fields to overwrite.
// Empty strings leave the stored value untouched.
type ProfileChanges struct {
	FirstName string
	LastName  string
	Bio       string
}

// IsEmpty reports whether no field would change.
func (c ProfileChanges) IsEmpty() bool {
	return c.FirstName == "" && c.LastName == "" && c.Bio == ""
}

// Validate checks that at least one field is set and names fit MaxNameLength.
func (c ProfileChanges) Validate() error {
	if c.IsEmpty() {
		return NewValidationError("user", "Provide at least one updated field.")
	}

	var errs []FieldError
	if utf8.RuneCountInString(c.FirstName) > MaxNameLength {
		errs = append(errs, FieldError{Field: "first_name", Message: "first name must be at most 150 characters."})
	}
	if utf8.RuneCountInString(c.LastName) > MaxNameLength {
		errs = append(errs, FieldError{Field: "last_name", Message: "last name must be at most 150 characters."})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Actor is the authenticated caller of one request.
type Actor struct {
	UserID   int64
	Username string
	Tier     Tier
}

// AnonymousActor is the actor of a request without credentials.
var AnonymousActor = Actor{Tier: TierAnonymous}

// ActorFor builds the actor for a loaded user.
func ActorFor(u *User) Actor {
	if u == nil {
		return AnonymousActor
	}
	return Actor{UserID: u.ID, Username: u.Username, Tier: TierOf(u)}
}
