package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"transit/internal/domain/entity"
	domainerrors "transit/internal/domain/errors"
	"transit/internal/domain/repository"
	"transit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	maxRating        = 5
	feedbackPageSize = 50
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	txManager    repository.TransactionManager
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(
	txManager repository.TransactionManager,
	feedbackRepo repository.FeedbackRepository,
	logger *slog.Logger,
) usecase.FeedbackUsecase {
	return &feedbackService{
		txManager:    txManager,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// CreateFeedback files a new feedback entry.
func (srv *feedbackService) CreateFeedback(ctx context.Context, input usecase.CreateFeedbackInput) (*entity.Feedback, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("feedback title must not be empty")
	}

	if input.Rating < 0 || input.Rating > maxRating {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 0 and 5")
	}

	feedback := &entity.Feedback{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Username:    input.Username,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Rating:      input.Rating,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	srv.logger.Info("Feedback created", "feedbackID", feedback.ID, "type", feedback.Type)

	return feedback, nil
}

// GetFeedback retrieves a single feedback entry by ID.
func (srv *feedbackService) GetFeedback(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.FindFeedbackByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, domainerrors.ErrFeedbackNotFound.WrapMessage("feedback not found")
		}

		return nil, errors.Wrap(err, "failed to find feedback")
	}

	return feedback, nil
}

// ListFeedbackByUser retrieves feedback entries filed by a user.
func (srv *feedbackService) ListFeedbackByUser(ctx context.Context, userID uuid.UUID) ([]entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.FindFeedbackByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return feedback, nil
}

// ListAllFeedback retrieves feedback entries with pagination, newest first.
func (srv *feedbackService) ListAllFeedback(ctx context.Context, limit, offset int) ([]entity.Feedback, error) {
	if limit <= 0 || limit > feedbackPageSize {
		limit = feedbackPageSize
	}
	if offset < 0 {
		offset = 0
	}

	feedback, err := srv.feedbackRepo.FindAllFeedback(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return feedback, nil
}

// DeleteFeedback removes a feedback entry together with its replies. Both
// deletes run in one transaction so a thread never outlives its feedback.
func (srv *feedbackService) DeleteFeedback(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		feedbackRepo := repoFactory.NewFeedbackRepository()

		if _, err := feedbackRepo.FindFeedbackByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrFeedbackNotFound) {
				return domainerrors.ErrFeedbackNotFound.WrapMessage("feedback not found")
			}

			return errors.Wrap(err, "failed to find feedback")
		}

		if err := feedbackRepo.DeleteFeedback(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete feedback")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete feedback with replies")
	}

	srv.logger.Info("Feedback deleted", "feedbackID", id)

	return nil
}
