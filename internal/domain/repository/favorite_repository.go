// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"transit/internal/domain/entity"
	"transit/internal/errors"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when a favorite entry is not found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository persists each user's favorite-itinerary set. The set is
// replaced wholesale on every sync, mirroring the snapshot/restore contract of
// the optimistic engine that drives it.
type FavoriteRepository interface {
	// FindFavoritesByUser retrieves the user's favorites, most recently saved first.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]entity.FavoriteEntry, error)

	// UpsertFavorites replaces the user's whole favorite set with the given
	// list and returns the confirmed list as stored.
	UpsertFavorites(ctx context.Context, userID uuid.UUID, favorites []entity.FavoriteEntry) ([]entity.FavoriteEntry, error)
}
