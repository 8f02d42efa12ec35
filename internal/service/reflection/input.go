package reflection

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// CreateInput describes a new reflection on a freet.
type CreateInput struct {
	FreetID uuid.UUID
	Content string
	Public  bool
}

// Validate checks the freet reference only; content rules live in
// domain.NormalizeContent.
func (i CreateInput) Validate() error {
	if i.FreetID == uuid.Nil {
		return domain.NewValidationError("freet_id", "required")
	}
	return nil
}

// UpdateInput carries a reflection edit. Public is required, Content is
// left unchanged when nil.
type UpdateInput struct {
	Content *string
	Public  *bool
}

func (i UpdateInput) Validate() error {
	if i.Public == nil {
		return domain.NewValidationError("public", "required")
	}
	return nil
}
