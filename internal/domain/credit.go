package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CreditRecord is a user's trust score together with the ordered list of
// users they have given credit to. Exactly one exists per user.
type CreditRecord struct {
	ID            uuid.UUID
	Owner         uuid.UUID
	Score         int64
	CreditedUsers []uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCreditRecord returns a zero-score record for owner.
func NewCreditRecord(owner uuid.UUID, now time.Time) CreditRecord {
	return CreditRecord{
		ID:            uuid.New(),
		Owner:         owner,
		Score:         0,
		CreditedUsers: []uuid.UUID{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ApplyExchange mutates giver and receiver for one credit exchange: the
// receiver's score goes up by one and the receiver is appended to the
// giver's provenance list. The giver's score is unchanged.
func ApplyExchange(giver, receiver *CreditRecord, now time.Time) {
	receiver.Score++
	receiver.UpdatedAt = now

	giver.CreditedUsers = append(slices.Clone(giver.CreditedUsers), receiver.Owner)
	giver.UpdatedAt = now
}

// HasCredited reports whether the record's owner has credited user at least once.
func (c *CreditRecord) HasCredited(user uuid.UUID) bool {
	return slices.Contains(c.CreditedUsers, user)
}
