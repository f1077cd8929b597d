package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FavoriteModel is the GORM-specific struct for the 'favorite_itineraries' table.
// It stores one frozen itinerary snapshot per (user, itinerary key) pair.
type FavoriteModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_key"`
	ItineraryKey string          `gorm:"type:text;not null;uniqueIndex:idx_favorites_user_key"`
	SavedAt      time.Time       `gorm:"not null"`
	Summary      json.RawMessage `gorm:"type:jsonb;not null"`
	Itinerary    json.RawMessage `gorm:"type:jsonb;not null"`
	Coordinates  json.RawMessage `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorite_itineraries"
}
