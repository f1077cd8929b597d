package repository

import (
	"context"

	"transit/internal/domain/entity"
	"transit/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for reply persistence.
var (
	// ErrReplyNotFound is returned when a reply is not found.
	ErrReplyNotFound = errors.New("reply not found")
)

// ReplyRepository persists feedback reply threads. The server issues the
// permanent reply identifier on create; callers hold a temporary identifier
// until then.
type ReplyRepository interface {
	// CreateReply persists a new reply and returns the server-identified copy.
	CreateReply(ctx context.Context, reply *entity.ReplyEntry) (*entity.ReplyEntry, error)

	// DeleteReply removes a reply from a feedback item's thread.
	// Returns ErrReplyNotFound if no such reply exists.
	DeleteReply(ctx context.Context, feedbackID uuid.UUID, replyID string) error

	// FindRepliesByFeedback retrieves a feedback item's thread in creation order.
	FindRepliesByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]entity.ReplyEntry, error)
}
