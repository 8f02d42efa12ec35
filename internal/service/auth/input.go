package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 64
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if !domain.IsValidUsername(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 1-32 letters, digits, '-' or '_'"})
	}

	if strings.TrimSpace(i.Password) == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if n := utf8.RuneCountInString(i.Password); n < minPasswordLength || n > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be 6-64 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ProfileInput holds a profile change. Nil fields are left as they are,
// but at least one must be set.
type ProfileInput struct {
	Username *string
	Password *string
}

// Validate checks all set fields and collects all errors.
func (i ProfileInput) Validate() error {
	if i.Username == nil && i.Password == nil {
		return domain.NewValidationError("profile", "username or password required")
	}

	var errs []domain.FieldError

	if i.Username != nil && !domain.IsValidUsername(*i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 1-32 letters, digits, '-' or '_'"})
	}
	if i.Password != nil {
		if n := utf8.RuneCountInString(*i.Password); strings.TrimSpace(*i.Password) == "" || n < minPasswordLength || n > maxPasswordLength {
			errs = append(errs, domain.FieldError{Field: "password", Message: "must be 6-64 characters"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
