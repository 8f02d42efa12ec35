package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultMaxContentLength is the freet length limit in characters.
const DefaultMaxContentLength = 140

// NormalizeContent trims content and checks it against the length limit.
// Length is counted in characters (runes), not bytes.
func NormalizeContent(raw string, maxLen int) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", NewKindError(ErrInvalidContent, "content", "must be at least one character long")
	}
	if utf8.RuneCountInString(content) > maxLen {
		return "", NewKindError(ErrContentTooLong, "content",
			fmt.Sprintf("must be no more than %d characters", maxLen))
	}
	return content, nil
}

// ValidatePublishAt requires publishAt to be strictly after now.
// publishAt equal to now counts as the past.
func ValidatePublishAt(publishAt, now time.Time) error {
	if publishAt.IsZero() {
		return NewValidationError("publish_date", "required")
	}
	if !publishAt.After(now) {
		return NewKindError(ErrPublishDateInPast, "publish_date", "publish date is in the past")
	}
	return nil
}
