package user

import "github.com/heartmarshall/twitter-backend/internal/domain"

// UpdateProfileInput holds parameters for profile update operation.
// Empty fields are left unchanged; UserID is only read for super-admins.
type UpdateProfileInput struct {
	UserID    int64
	FirstName string
	LastName  string
	Bio       string
}

// Changes returns the requested profile changes.
func (i UpdateProfileInput) Changes() domain.ProfileChanges {
	return domain.ProfileChanges{FirstName: i.FirstName, LastName: i.LastName, Bio: i.Bio}
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	return i.Changes().Validate()
}
