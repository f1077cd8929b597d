package service

import (
	"context"
)

// ReplyEvent is emitted after a reply is confirmed by the server, so the
// feedback owner can be notified asynchronously.
type ReplyEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	ReplyID    string `json:"reply_id"`
	FeedbackID string `json:"feedback_id"`
	Author     string `json:"author"`
	Content    string `json:"content"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReplyEvent publishes a reply-posted event for async processing
	PublishReplyEvent(ctx context.Context, event *ReplyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
