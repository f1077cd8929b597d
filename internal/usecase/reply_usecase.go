package usecase

import (
	"context"

	"transit/internal/domain/entity"

	"github.com/google/uuid"
)

// ReplyUsecase defines the interface for feedback reply use cases
type ReplyUsecase interface {
	// ListReplies retrieves the reply thread for a feedback entry
	ListReplies(ctx context.Context, feedbackID uuid.UUID) ([]entity.ReplyEntry, error)

	// PostReply appends a reply to a feedback thread. The reply appears in
	// the returned thread with its server-assigned identifier; when the sync
	// fails the thread is returned unchanged alongside the error.
	PostReply(ctx context.Context, feedbackID uuid.UUID, author, content string) ([]entity.ReplyEntry, error)

	// DeleteReply removes a reply from a feedback thread
	DeleteReply(ctx context.Context, feedbackID uuid.UUID, replyID string) ([]entity.ReplyEntry, error)
}
