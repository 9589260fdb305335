package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Video struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title        string         `gorm:"not null;column:title" json:"title"`
	Description  string         `gorm:"column:description" json:"description"`
	VideoFileURL string         `gorm:"column:video_file_url" json:"video_file_url"`
	ThumbnailURL string         `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	// Duration in seconds, reported by the storage/transcoding collaborator.
	Duration    float64        `gorm:"not null;default:0" json:"duration"`
	Views       int64          `gorm:"not null;default:0" json:"views"`
	IsPublished bool           `gorm:"not null;default:false;index" json:"is_published"`
	Metadata    datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (Video) TableName() string { return "videos" }
