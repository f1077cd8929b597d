package usecase

import (
	"context"

	"transit/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFeedbackInput carries the fields needed to file a feedback entry.
type CreateFeedbackInput struct {
	UserID      uuid.UUID
	Username    string
	Type        entity.FeedbackType
	Title       string
	Description string
	Rating      int
}

// FeedbackUsecase defines the interface for user feedback use cases
type FeedbackUsecase interface {
	// CreateFeedback files a new feedback entry
	CreateFeedback(ctx context.Context, input CreateFeedbackInput) (*entity.Feedback, error)

	// GetFeedback retrieves a single feedback entry by ID
	GetFeedback(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)

	// ListFeedbackByUser retrieves feedback entries filed by a user
	ListFeedbackByUser(ctx context.Context, userID uuid.UUID) ([]entity.Feedback, error)

	// ListAllFeedback retrieves feedback entries with pagination, newest first
	ListAllFeedback(ctx context.Context, limit, offset int) ([]entity.Feedback, error)

	// DeleteFeedback removes a feedback entry together with its replies
	DeleteFeedback(ctx context.Context, id uuid.UUID) error
}
