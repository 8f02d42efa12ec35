package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleState is the lifecycle state of a scheduled freet.
type ScheduleState string

const (
	ScheduleStateDraft     ScheduleState = "draft"
	ScheduleStateScheduled ScheduleState = "scheduled"
	ScheduleStateUpdated   ScheduleState = "updated"
	ScheduleStateDeleted   ScheduleState = "deleted"
)

func (s ScheduleState) String() string { return string(s) }

// IsValid reports whether s is a known state.
func (s ScheduleState) IsValid() bool {
	switch s {
	case ScheduleStateDraft, ScheduleStateScheduled, ScheduleStateUpdated, ScheduleStateDeleted:
		return true
	}
	return false
}

// ScheduledItem is content that becomes eligible for publication at PublishAt.
// Nothing publishes it automatically; IsDue is the eligibility check an
// external publisher would use.
type ScheduledItem struct {
	ID        uuid.UUID
	Owner     uuid.UUID
	Content   string
	PublishAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// State derives the lifecycle state from the timestamps. A persisted item
// that was never edited is Scheduled.
func (s *ScheduledItem) State() ScheduleState {
	if s.ID == uuid.Nil {
		return ScheduleStateDraft
	}
	if s.UpdatedAt.After(s.CreatedAt) {
		return ScheduleStateUpdated
	}
	return ScheduleStateScheduled
}

// IsDue reports whether the item's publish instant has been reached.
func (s *ScheduledItem) IsDue(now time.Time) bool {
	return !s.PublishAt.After(now)
}
