package scheduled

import (
	"time"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// ScheduleInput holds the editable fields of a scheduled freet.
type ScheduleInput struct {
	Content   string
	PublishAt time.Time
}

// storagePrecision is the resolution of TIMESTAMPTZ columns.
const storagePrecision = time.Microsecond

// normalize validates content first, then the publish date, and returns the
// trimmed content and the publish date at storage precision. now must
// already be at storage precision. The first failing rule is reported.
func (i ScheduleInput) normalize(now time.Time, maxLen int) (string, time.Time, error) {
	content, err := domain.NormalizeContent(i.Content, maxLen)
	if err != nil {
		return "", time.Time{}, err
	}
	publishAt := i.PublishAt.UTC().Truncate(storagePrecision)
	if err := domain.ValidatePublishAt(publishAt, now); err != nil {
		return "", time.Time{}, err
	}
	return content, publishAt, nil
}
