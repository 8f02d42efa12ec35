package domain

import (
	"time"

	"github.com/google/uuid"
)

// Freet is a published short post.
type Freet struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time
}
