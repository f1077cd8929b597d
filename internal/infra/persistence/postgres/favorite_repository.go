package postgres

import (
	"context"
	"encoding/json"

	"transit/internal/domain/entity"
	domainerrors "transit/internal/domain/errors"
	"transit/internal/domain/repository"
	"transit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// FindFavoritesByUser retrieves the user's favorites, most recently saved first.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]entity.FavoriteEntry, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]entity.FavoriteEntry, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorite, err := toFavoriteDomain(favoriteM)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode favorite")
		}
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}

// UpsertFavorites replaces the user's whole favorite set with the given list.
// Delete and insert run in one transaction so a failed sync never leaves a
// half-replaced set behind.
func (repo *favoriteRepository) UpsertFavorites(ctx context.Context, userID uuid.UUID, favorites []entity.FavoriteEntry) ([]entity.FavoriteEntry, error) {
	favoriteModels := make([]*model.FavoriteModel, 0, len(favorites))
	for i := range favorites {
		favoriteM, err := fromFavoriteDomain(userID, &favorites[i])
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode favorite")
		}
		favoriteModels = append(favoriteModels, favoriteM)
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ?", userID).
			Delete(&model.FavoriteModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear favorites")
		}

		if len(favoriteModels) == 0 {
			return nil
		}

		if err := tx.Create(&favoriteModels).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrConflict.WrapMessage("favorites changed concurrently")
			}
			if isNotNullConstraintViolation(err) {
				return domainerrors.ErrInvalidItinerary.WrapMessage("favorite is missing required fields")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to store favorites")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return repo.FindFavoritesByUser(ctx, userID)
}

func fromFavoriteDomain(userID uuid.UUID, favorite *entity.FavoriteEntry) (*model.FavoriteModel, error) {
	summary, err := json.Marshal(favorite.Summary)
	if err != nil {
		return nil, err
	}

	coordinates, err := json.Marshal(favorite.Coordinates)
	if err != nil {
		return nil, err
	}

	itinerary := favorite.Itinerary
	if len(itinerary) == 0 {
		itinerary = json.RawMessage("null")
	}

	return &model.FavoriteModel{
		UserID:       userID,
		ItineraryKey: favorite.Key,
		SavedAt:      favorite.SavedAt,
		Summary:      summary,
		Itinerary:    itinerary,
		Coordinates:  coordinates,
	}, nil
}

func toFavoriteDomain(favoriteM *model.FavoriteModel) (entity.FavoriteEntry, error) {
	var summary entity.TripSummary
	if err := json.Unmarshal(favoriteM.Summary, &summary); err != nil {
		return entity.FavoriteEntry{}, err
	}

	var coordinates []entity.Coordinate
	if len(favoriteM.Coordinates) > 0 {
		if err := json.Unmarshal(favoriteM.Coordinates, &coordinates); err != nil {
			return entity.FavoriteEntry{}, err
		}
	}

	return entity.FavoriteEntry{
		Key:         favoriteM.ItineraryKey,
		SavedAt:     favoriteM.SavedAt,
		Summary:     summary,
		Itinerary:   favoriteM.Itinerary,
		Coordinates: coordinates,
	}, nil
}
