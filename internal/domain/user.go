package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The ID is the identity every other
// record refers to.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// IsValidUsername reports whether s is 1-32 characters of letters, digits,
// underscore or dash.
func IsValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}
