package domain

import (
	"time"

	"github.com/google/uuid"
)

// CooldownRecord is the moderation flag attached to a single freet.
type CooldownRecord struct {
	ID          uuid.UUID
	FreetID     uuid.UUID
	Provocative bool
	UpdatedAt   time.Time
}

// NewCooldownRecord returns a non-provocative record for freetID.
func NewCooldownRecord(freetID uuid.UUID, now time.Time) CooldownRecord {
	return CooldownRecord{
		ID:        uuid.New(),
		FreetID:   freetID,
		UpdatedAt: now,
	}
}
