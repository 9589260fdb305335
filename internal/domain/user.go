package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username      string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Email         string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	FullName      string    `gorm:"not null;column:full_name" json:"full_name"`
	AvatarURL     string    `gorm:"column:avatar_url" json:"avatar_url"`
	CoverImageURL string    `gorm:"column:cover_image_url" json:"cover_image_url"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// WatchHistoryEntry is one row of a user's ordered watch history. At most one
// row per (user, video); re-watching bumps WatchedAt instead of inserting.
type WatchHistoryEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_user_video,priority:1" json:"user_id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_user_video,priority:2;index" json:"video_id"`
	WatchedAt time.Time `gorm:"not null;index" json:"watched_at"`
}

func (WatchHistoryEntry) TableName() string { return "watch_history_entries" }
