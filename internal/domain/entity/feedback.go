package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackType classifies a feedback submission. The set mirrors what the
// submission form offers; unknown values are stored as-is.
type FeedbackType string

const (
	FeedbackBug        FeedbackType = "Bug"
	FeedbackSuggestion FeedbackType = "Suggestion"
	FeedbackQuestion   FeedbackType = "Question"
	FeedbackOther      FeedbackType = "Other"
)

// Feedback is one user-submitted feedback item. Replies attach to it as a
// thread owned by the viewing surface.
type Feedback struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"userId"`
	Username    string       `json:"username"`
	Type        FeedbackType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Rating      int          `json:"rating"` // 0..5 stars
	CreatedAt   time.Time    `json:"createdAt"`
}
