package repository

import (
	"context"

	"transit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReplyRepository is a mock implementation of repository.ReplyRepository.
type MockReplyRepository struct {
	mock.Mock
}

// NewMockReplyRepository creates a mock wired to the test lifecycle.
func NewMockReplyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReplyRepository {
	m := &MockReplyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReplyRepository) CreateReply(ctx context.Context, reply *entity.ReplyEntry) (*entity.ReplyEntry, error) {
	args := m.Called(ctx, reply)
	confirmed, _ := args.Get(0).(*entity.ReplyEntry)

	return confirmed, args.Error(1)
}

func (m *MockReplyRepository) DeleteReply(ctx context.Context, feedbackID uuid.UUID, replyID string) error {
	args := m.Called(ctx, feedbackID, replyID)

	return args.Error(0)
}

func (m *MockReplyRepository) FindRepliesByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]entity.ReplyEntry, error) {
	args := m.Called(ctx, feedbackID)
	replies, _ := args.Get(0).([]entity.ReplyEntry)

	return replies, args.Error(1)
}
