package repository

import (
	"context"

	"transit/internal/domain/repository"
)

// MockTransactionManager runs the transactional function directly against a
// fixed repository factory, with no real transaction underneath.
type MockTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// MockRepositoryFactory hands out the mock repositories it was built with.
type MockRepositoryFactory struct {
	FavoriteRepo *MockFavoriteRepository
	ReplyRepo    *MockReplyRepository
	FeedbackRepo *MockFeedbackRepository
}

func (f *MockRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return f.FavoriteRepo
}

func (f *MockRepositoryFactory) NewReplyRepository() repository.ReplyRepository {
	return f.ReplyRepo
}

func (f *MockRepositoryFactory) NewFeedbackRepository() repository.FeedbackRepository {
	return f.FeedbackRepo
}
