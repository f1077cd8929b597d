package postgres

import (
	"context"

	"transit/internal/domain/entity"
	domainerrors "transit/internal/domain/errors"
	"transit/internal/domain/repository"
	"transit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// CreateFeedback persists a new feedback item.
func (repo *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required feedback information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

// FindFeedbackByID retrieves one feedback item.
func (repo *feedbackRepository) FindFeedbackByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&feedbackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedbackNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback by ID")
	}

	return toFeedbackDomain(&feedbackM), nil
}

// FindFeedbackByUser retrieves a user's submissions, newest first.
func (repo *feedbackRepository) FindFeedbackByUser(ctx context.Context, userID uuid.UUID) ([]entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find feedback by user")
	}

	return toFeedbackDomainList(feedbackModels), nil
}

// FindAllFeedback retrieves submissions with pagination, newest first.
func (repo *feedbackRepository) FindAllFeedback(ctx context.Context, limit, offset int) ([]entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	query := repo.db.WithContext(ctx).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find feedback")
	}

	return toFeedbackDomainList(feedbackModels), nil
}

// DeleteFeedback removes a feedback item and its reply thread.
func (repo *feedbackRepository) DeleteFeedback(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("feedback_id = ?", id).
		Delete(&model.ReplyModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete feedback replies")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FeedbackModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete feedback")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

func fromFeedbackDomain(feedback *entity.Feedback) *model.FeedbackModel {
	return &model.FeedbackModel{
		ID:          feedback.ID,
		UserID:      feedback.UserID,
		Username:    feedback.Username,
		Type:        string(feedback.Type),
		Title:       feedback.Title,
		Description: feedback.Description,
		Rating:      feedback.Rating,
		CreatedAt:   feedback.CreatedAt,
	}
}

func toFeedbackDomain(feedbackM *model.FeedbackModel) *entity.Feedback {
	return &entity.Feedback{
		ID:          feedbackM.ID,
		UserID:      feedbackM.UserID,
		Username:    feedbackM.Username,
		Type:        entity.FeedbackType(feedbackM.Type),
		Title:       feedbackM.Title,
		Description: feedbackM.Description,
		Rating:      feedbackM.Rating,
		CreatedAt:   feedbackM.CreatedAt,
	}
}

func toFeedbackDomainList(feedbackModels []*model.FeedbackModel) []entity.Feedback {
	feedback := make([]entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedback = append(feedback, *toFeedbackDomain(feedbackM))
	}

	return feedback
}
