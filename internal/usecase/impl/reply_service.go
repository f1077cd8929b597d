package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "transit/internal/delivery/context"
	"transit/internal/domain/entity"
	domainerrors "transit/internal/domain/errors"
	"transit/internal/domain/repository"
	"transit/internal/domain/service"
	"transit/internal/optimistic"
	"transit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// replyService implements the ReplyUsecase interface.
type replyService struct {
	replyRepo    repository.ReplyRepository
	feedbackRepo repository.FeedbackRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewReplyService is the constructor for replyService.
func NewReplyService(
	replyRepo repository.ReplyRepository,
	feedbackRepo repository.FeedbackRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ReplyUsecase {
	return &replyService{
		replyRepo:    replyRepo,
		feedbackRepo: feedbackRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// ListReplies retrieves the reply thread for a feedback entry.
func (srv *replyService) ListReplies(ctx context.Context, feedbackID uuid.UUID) ([]entity.ReplyEntry, error) {
	if _, err := srv.findFeedback(ctx, feedbackID); err != nil {
		return nil, err
	}

	replies, err := srv.replyRepo.FindRepliesByFeedback(ctx, feedbackID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list replies")
	}

	return replies, nil
}

// PostReply appends a reply to a feedback thread. The reply is added to the
// thread under a temporary identifier, then swapped for the server copy once
// the write is confirmed. A failed write restores the thread unchanged.
func (srv *replyService) PostReply(ctx context.Context, feedbackID uuid.UUID, author, content string) ([]entity.ReplyEntry, error) {
	// Validation happens before any local mutation so a rejected reply never
	// flashes into the thread.
	if strings.TrimSpace(content) == "" {
		return nil, domainerrors.ErrEmptyReplyContent
	}

	if _, err := srv.findFeedback(ctx, feedbackID); err != nil {
		return nil, err
	}

	thread, err := srv.replyRepo.FindRepliesByFeedback(ctx, feedbackID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reply thread")
	}

	temp := entity.NewOptimisticReply(feedbackID, author, content)
	mutation := optimistic.AddAt(thread, len(thread), temp)

	confirmed, err := srv.replyRepo.CreateReply(ctx, &temp)
	if err != nil {
		restored, rollbackErr := mutation.Rollback()
		if rollbackErr != nil {
			return nil, errors.Wrap(rollbackErr, "failed to roll back reply")
		}

		srv.logger.Warn("Reply sync failed, thread restored",
			"feedbackID", feedbackID, "error", err)

		return restored, domainerrors.ErrReplySyncFailed.WrapMessage(err.Error())
	}

	settled, err := mutation.Resolve(func(r entity.ReplyEntry) bool { return r.ID == temp.ID }, *confirmed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve reply")
	}

	srv.publishReplyEvent(ctx, confirmed)

	return settled, nil
}

// DeleteReply removes a reply from a feedback thread. The removal is applied
// locally first; a failed delete restores the whole thread.
func (srv *replyService) DeleteReply(ctx context.Context, feedbackID uuid.UUID, replyID string) ([]entity.ReplyEntry, error) {
	thread, err := srv.replyRepo.FindRepliesByFeedback(ctx, feedbackID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reply thread")
	}

	mutation := optimistic.Remove(thread, func(r entity.ReplyEntry) bool { return r.ID == replyID })
	if !mutation.Changed() {
		return nil, domainerrors.ErrReplyNotFound.WrapMessage("reply not found in thread")
	}

	settled, err := mutation.Reconcile(ctx, func(ctx context.Context) error {
		return srv.replyRepo.DeleteReply(ctx, feedbackID, replyID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrReplyNotFound) {
			return settled, domainerrors.ErrReplyNotFound.WrapMessage("reply already removed")
		}

		srv.logger.Warn("Reply delete sync failed, thread restored",
			"feedbackID", feedbackID, "replyID", replyID, "error", err)

		return settled, domainerrors.ErrReplySyncFailed.WrapMessage(err.Error())
	}

	return settled, nil
}

func (srv *replyService) findFeedback(ctx context.Context, feedbackID uuid.UUID) (*entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.FindFeedbackByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, domainerrors.ErrFeedbackNotFound.WrapMessage("feedback not found")
		}

		return nil, errors.Wrap(err, "failed to find feedback")
	}

	return feedback, nil
}

// publishReplyEvent notifies the feedback owner asynchronously. Publish
// failures are logged and never fail the reply itself.
func (srv *replyService) publishReplyEvent(ctx context.Context, reply *entity.ReplyEntry) {
	event := &service.ReplyEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ReplyID:    reply.ID,
		FeedbackID: reply.FeedbackID.String(),
		Author:     reply.Author,
		Content:    reply.Content,
	}

	if err := srv.publisher.PublishReplyEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish reply event", "replyID", reply.ID, "error", err)
	}
}
