package impl

import (
	"context"
	"testing"

	"transit/internal/domain/entity"
	domainerrors "transit/internal/domain/errors"
	mockRepo "transit/internal/mocks/repository"
	mockSvc "transit/internal/mocks/service"
	"transit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
	qrService    *mockSvc.MockQRCodeService
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := NewFavoriteService(favoriteRepo, qrService, newDiscardLogger())

	return favoriteServiceFixtures{
		service:      service,
		favoriteRepo: favoriteRepo,
		qrService:    qrService,
	}
}

func TestFavoriteService_ToggleFavorite_Save(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	itinerary := newTestItinerary("1700000000000_1800_2")

	fx.favoriteRepo.On("FindFavoritesByUser", ctx, userID).
		Return([]entity.FavoriteEntry{}, nil)

	var synced []entity.FavoriteEntry
	fx.favoriteRepo.On("UpsertFavorites", ctx, userID, mock.Anything).
		Run(func(args mock.Arguments) {
			synced, _ = args.Get(2).([]entity.FavoriteEntry)
		}).
		Return(nil, nil)

	result, err := fx.service.ToggleFavorite(ctx, userID, itinerary)
	require.NoError(t, err)
	assert.True(t, result.Saved)
	require.Len(t, result.Favorites, 1)
	assert.Equal(t, itinerary.Key, result.Favorites[0].Key)
	assert.Equal(t, itinerary.Summary, result.Favorites[0].Summary)

	// The whole staged collection was pushed to the repository.
	require.Len(t, synced, 1)
	assert.Equal(t, itinerary.Key, synced[0].Key)
}

func TestFavoriteService_ToggleFavorite_Remove(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	itinerary := newTestItinerary("1700000000000_1800_2")

	existing := []entity.FavoriteEntry{
		{Key: "other_900_1"},
		{Key: itinerary.Key},
	}

	fx.favoriteRepo.On("FindFavoritesByUser", ctx, userID).
		Return(existing, nil)
	fx.favoriteRepo.On("UpsertFavorites", ctx, userID, mock.Anything).
		Return([]entity.FavoriteEntry{{Key: "other_900_1"}}, nil)

	result, err := fx.service.ToggleFavorite(ctx, userID, itinerary)
	require.NoError(t, err)
	assert.False(t, result.Saved)
	require.Len(t, result.Favorites, 1)
	assert.Equal(t, "other_900_1", result.Favorites[0].Key)
}

func TestFavoriteService_ToggleFavorite_SyncFailureRestoresSnapshot(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	itinerary := newTestItinerary("1700000000000_1800_2")

	existing := []entity.FavoriteEntry{{Key: "other_900_1"}}

	fx.favoriteRepo.On("FindFavoritesByUser", ctx, userID).
		Return(existing, nil)
	fx.favoriteRepo.On("UpsertFavorites", ctx, userID, mock.Anything).
		Return(nil, errors.New("connection reset"))

	result, err := fx.service.ToggleFavorite(ctx, userID, itinerary)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteSyncFailed)

	// The pre-toggle collection survives intact, not a partial merge.
	require.Len(t, result.Favorites, 1)
	assert.Equal(t, "other_900_1", result.Favorites[0].Key)
	assert.False(t, result.Saved)
}

func TestFavoriteService_ToggleFavorite_TwiceRestoresOriginal(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	itinerary := newTestItinerary("1700000000000_1800_2")

	// First toggle saves.
	fx.favoriteRepo.On("FindFavoritesByUser", ctx, userID).
		Return([]entity.FavoriteEntry{}, nil).Once()
	fx.favoriteRepo.On("UpsertFavorites", ctx, userID, mock.Anything).
		Return(nil, nil).Once()

	first, err := fx.service.ToggleFavorite(ctx, userID, itinerary)
	require.NoError(t, err)
	require.True(t, first.Saved)

	// Second toggle of the same key removes.
	fx.favoriteRepo.On("FindFavoritesByUser", ctx, userID).
		Return(first.Favorites, nil).Once()
	fx.favoriteRepo.On("UpsertFavorites", ctx, userID, mock.Anything).
		Return(nil, nil).Once()

	second, err := fx.service.ToggleFavorite(ctx, userID, itinerary)
	require.NoError(t, err)
	assert.False(t, second.Saved)
	assert.Empty(t, second.Favorites)
}

func TestFavoriteService_ToggleFavorite_RejectsMissingKey(t *testing.T) {
	fx := createTestFavoriteService(t)

	_, err := fx.service.ToggleFavorite(context.Background(), uuid.New(), &entity.NormalizedItinerary{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidItinerary)

	_, err = fx.service.ToggleFavorite(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidItinerary)
}

func TestFavoriteService_ShareQR(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.On("FindFavoritesByUser", ctx, userID).
		Return([]entity.FavoriteEntry{{Key: "abc_900_1"}}, nil)
	fx.qrService.On("GenerateShareQR", "abc_900_1").
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.ShareQR(ctx, userID, "abc_900_1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestFavoriteService_ShareQR_NotSaved(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.On("FindFavoritesByUser", ctx, userID).
		Return([]entity.FavoriteEntry{}, nil)

	_, err := fx.service.ShareQR(ctx, userID, "missing_900_1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
