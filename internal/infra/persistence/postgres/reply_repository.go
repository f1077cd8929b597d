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

// replyRepository implements the repository.ReplyRepository interface.
type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository is the constructor for replyRepository.
func NewReplyRepository(db *gorm.DB) repository.ReplyRepository {
	return &replyRepository{
		db: db,
	}
}

// CreateReply persists a new reply and returns the server-identified copy.
// The caller's temporary identifier is discarded; the database issues the
// permanent one.
func (repo *replyRepository) CreateReply(ctx context.Context, reply *entity.ReplyEntry) (*entity.ReplyEntry, error) {
	replyM := &model.ReplyModel{
		FeedbackID: reply.FeedbackID,
		Author:     reply.Author,
		Content:    reply.Content,
		CreatedAt:  reply.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(replyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrFeedbackNotFound
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required reply information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create reply")
	}

	return toReplyDomain(replyM), nil
}

// DeleteReply removes a reply from a feedback item's thread.
func (repo *replyRepository) DeleteReply(ctx context.Context, feedbackID uuid.UUID, replyID string) error {
	id, err := uuid.Parse(replyID)
	if err != nil {
		return repository.ErrReplyNotFound
	}

	result := repo.db.WithContext(ctx).
		Where("id = ? AND feedback_id = ?", id, feedbackID).
		Delete(&model.ReplyModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reply")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReplyNotFound
	}

	return nil
}

// FindRepliesByFeedback retrieves a feedback item's thread in creation order.
func (repo *replyRepository) FindRepliesByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]entity.ReplyEntry, error) {
	var replyModels []*model.ReplyModel

	if err := repo.db.WithContext(ctx).
		Where("feedback_id = ?", feedbackID).
		Order("created_at ASC").
		Find(&replyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find replies by feedback")
	}

	replies := make([]entity.ReplyEntry, 0, len(replyModels))
	for _, replyM := range replyModels {
		replies = append(replies, *toReplyDomain(replyM))
	}

	return replies, nil
}

func toReplyDomain(replyM *model.ReplyModel) *entity.ReplyEntry {
	return &entity.ReplyEntry{
		ID:         replyM.ID.String(),
		FeedbackID: replyM.FeedbackID,
		Author:     replyM.Author,
		Content:    replyM.Content,
		CreatedAt:  replyM.CreatedAt,
	}
}
