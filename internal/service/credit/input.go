package credit

import (
	"strings"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// ExchangeInput identifies the receiver of a credit by username.
type ExchangeInput struct {
	Username string
}

// Validate checks all fields and collects all errors.
func (i ExchangeInput) Validate() error {
	if strings.TrimSpace(i.Username) == "" {
		return domain.NewValidationError("other_username", "required")
	}
	return nil
}
