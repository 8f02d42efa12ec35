package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reflection is an author's note attached to a freet. Private reflections
// are visible to their owner only.
type Reflection struct {
	ID        uuid.UUID
	FreetID   uuid.UUID
	Owner     uuid.UUID
	Content   string
	Public    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VisibleTo reports whether viewer may read r. uuid.Nil is an anonymous
// viewer.
func (r *Reflection) VisibleTo(viewer uuid.UUID) bool {
	return r.Public || (viewer != uuid.Nil && viewer == r.Owner)
}
