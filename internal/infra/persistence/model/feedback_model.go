package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel is the GORM-specific struct for the 'feedback' table.
type FeedbackModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Username    string    `gorm:"type:text;not null"`
	Type        string    `gorm:"type:text;not null"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Rating      int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}

// ReplyModel is the GORM-specific struct for the 'feedback_replies' table.
// The database issues the permanent identifier; clients hold a temporary one
// until the insert is confirmed.
type ReplyModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FeedbackID uuid.UUID `gorm:"type:uuid;not null;index"`
	Author     string    `gorm:"type:text;not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReplyModel) TableName() string {
	return "feedback_replies"
}
