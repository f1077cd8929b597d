// Package repository provides testify mocks for the repository contracts,
// maintained by hand alongside the interfaces they mirror.
package repository

import (
	"context"

	"transit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository is a mock implementation of repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

// NewMockFavoriteRepository creates a mock wired to the test lifecycle.
func NewMockFavoriteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFavoriteRepository {
	m := &MockFavoriteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFavoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]entity.FavoriteEntry, error) {
	args := m.Called(ctx, userID)
	favorites, _ := args.Get(0).([]entity.FavoriteEntry)

	return favorites, args.Error(1)
}

func (m *MockFavoriteRepository) UpsertFavorites(ctx context.Context, userID uuid.UUID, favorites []entity.FavoriteEntry) ([]entity.FavoriteEntry, error) {
	args := m.Called(ctx, userID, favorites)
	stored, _ := args.Get(0).([]entity.FavoriteEntry)

	return stored, args.Error(1)
}
