package auth

import (
	"strings"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

const (
	msgMissingFields   = "Necessary fields like email, password, confirmation are missing."
	msgPasswordsDiffer = "Passwords must match."
	msgBadCredentials  = "Invalid username and/or password."
)

// RegisterInput holds parameters for sign-up. Username defaults to Email.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Confirmation string
	FirstName    string
	LastName     string
	Bio          string
}

// normalize trims identifiers and fills the default username.
func (i RegisterInput) normalize() RegisterInput {
	i.Email = strings.TrimSpace(i.Email)
	i.Username = strings.TrimSpace(i.Username)
	if i.Username == "" {
		i.Username = i.Email
	}
	return i
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	if i.Email == "" || i.Password == "" || i.Confirmation == "" {
		return domain.NewValidationError("email", msgMissingFields)
	}
	if i.Password != i.Confirmation {
		return domain.NewValidationError("confirmation", msgPasswordsDiffer)
	}

	var errs []domain.FieldError
	if len(i.Username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "username must be at most 150 characters."})
	}
	if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "email must be at most 254 characters."})
	}
	if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "password must be at most 72 bytes."})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RegisterAdminInput is a sign-up performed by a super-admin, optionally
// granting privileges.
type RegisterAdminInput struct {
	RegisterInput
	IsAdmin      bool
	IsSuperAdmin bool
}

// LoginInput holds parameters for username + password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	if strings.TrimSpace(i.Username) == "" || i.Password == "" {
		return domain.NewValidationError("username", msgBadCredentials)
	}
	return nil
}
