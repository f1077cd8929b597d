package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"transit/internal/domain/entity"
	domainerrors "transit/internal/domain/errors"
	"transit/internal/domain/repository"
	"transit/internal/domain/service"
	"transit/internal/optimistic"
	"transit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		qrService:    qrService,
		logger:       logger,
	}
}

// ListFavorites retrieves the saved itineraries for a user.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.FavoriteEntry, error) {
	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// ToggleFavorite saves or removes the itinerary, matching by itinerary key.
// The change is applied to the local collection first and synced as a whole;
// a failed sync restores the pre-toggle snapshot, discarding the change.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, userID uuid.UUID, itinerary *entity.NormalizedItinerary) (*usecase.ToggleResult, error) {
	if itinerary == nil || itinerary.Key == "" {
		return nil, domainerrors.ErrInvalidItinerary.WrapMessage("itinerary with a key is required")
	}

	current, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	sameKey := func(f entity.FavoriteEntry) bool { return f.Key == itinerary.Key }
	saved := slices.ContainsFunc(current, sameKey)

	var mutation *optimistic.Mutation[entity.FavoriteEntry]
	if saved {
		mutation = optimistic.Remove(current, sameKey)
	} else {
		mutation = optimistic.Add(current, entity.NewFavoriteEntry(itinerary, time.Now().UTC()))
	}

	var confirmed []entity.FavoriteEntry

	settled, err := mutation.Reconcile(ctx, func(ctx context.Context) error {
		stored, upsertErr := srv.favoriteRepo.UpsertFavorites(ctx, userID, mutation.Staged())
		if upsertErr != nil {
			return upsertErr
		}
		confirmed = stored

		return nil
	})
	if err != nil {
		srv.logger.Warn("Favorite sync failed, change discarded",
			"userID", userID, "key", itinerary.Key, "error", err)

		return &usecase.ToggleResult{Favorites: settled, Saved: saved},
			domainerrors.ErrFavoriteSyncFailed.WrapMessage(err.Error())
	}

	if confirmed == nil {
		confirmed = settled
	}

	return &usecase.ToggleResult{Favorites: confirmed, Saved: !saved}, nil
}

// ShareQR renders a QR code PNG for a saved itinerary key.
func (srv *favoriteService) ShareQR(ctx context.Context, userID uuid.UUID, itineraryKey string) ([]byte, error) {
	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	if !slices.ContainsFunc(favorites, func(f entity.FavoriteEntry) bool { return f.Key == itineraryKey }) {
		return nil, domainerrors.ErrNotFound.WrapMessage("itinerary is not in favorites")
	}

	png, err := srv.qrService.GenerateShareQR(itineraryKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}
