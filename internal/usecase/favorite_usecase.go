package usecase

import (
	"context"

	"transit/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleResult reports the outcome of a favorite toggle after the remote
// sync settled.
type ToggleResult struct {
	// Favorites is the confirmed collection after the toggle
	Favorites []entity.FavoriteEntry `json:"favorites"`
	// Saved is true when the itinerary is a favorite after the toggle
	Saved bool `json:"saved"`
}

// FavoriteUsecase defines the interface for favorite itinerary use cases
type FavoriteUsecase interface {
	// ListFavorites retrieves the saved itineraries for a user
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.FavoriteEntry, error)

	// ToggleFavorite saves the itinerary when it is not in the user's
	// favorites and removes it when it is, matching by itinerary key. The
	// change is applied locally first and rolled back if the sync fails.
	ToggleFavorite(ctx context.Context, userID uuid.UUID, itinerary *entity.NormalizedItinerary) (*ToggleResult, error)

	// ShareQR renders a QR code PNG for a saved itinerary key
	ShareQR(ctx context.Context, userID uuid.UUID, itineraryKey string) ([]byte, error)
}
