package repository

import (
	"context"

	"transit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFeedbackRepository is a mock implementation of repository.FeedbackRepository.
type MockFeedbackRepository struct {
	mock.Mock
}

// NewMockFeedbackRepository creates a mock wired to the test lifecycle.
func NewMockFeedbackRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeedbackRepository {
	m := &MockFeedbackRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFeedbackRepository) CreateFeedback(ctx context.Context, feedback *entity.Feedback) error {
	args := m.Called(ctx, feedback)

	return args.Error(0)
}

func (m *MockFeedbackRepository) FindFeedbackByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	args := m.Called(ctx, id)
	feedback, _ := args.Get(0).(*entity.Feedback)

	return feedback, args.Error(1)
}

func (m *MockFeedbackRepository) FindFeedbackByUser(ctx context.Context, userID uuid.UUID) ([]entity.Feedback, error) {
	args := m.Called(ctx, userID)
	feedback, _ := args.Get(0).([]entity.Feedback)

	return feedback, args.Error(1)
}

func (m *MockFeedbackRepository) FindAllFeedback(ctx context.Context, limit, offset int) ([]entity.Feedback, error) {
	args := m.Called(ctx, limit, offset)
	feedback, _ := args.Get(0).([]entity.Feedback)

	return feedback, args.Error(1)
}

func (m *MockFeedbackRepository) DeleteFeedback(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
