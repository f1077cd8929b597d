package repository

import (
	"context"

	"transit/internal/domain/entity"
	"transit/internal/errors"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback item is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository persists user feedback submissions.
type FeedbackRepository interface {
	// CreateFeedback persists a new feedback item.
	CreateFeedback(ctx context.Context, feedback *entity.Feedback) error

	// FindFeedbackByID retrieves one feedback item.
	// Returns ErrFeedbackNotFound if no such item exists.
	FindFeedbackByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)

	// FindFeedbackByUser retrieves a user's submissions, newest first.
	FindFeedbackByUser(ctx context.Context, userID uuid.UUID) ([]entity.Feedback, error)

	// FindAllFeedback retrieves submissions with pagination, newest first.
	FindAllFeedback(ctx context.Context, limit, offset int) ([]entity.Feedback, error)

	// DeleteFeedback removes a feedback item and its reply thread.
	DeleteFeedback(ctx context.Context, id uuid.UUID) error
}
