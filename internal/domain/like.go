package domain

import (
	"time"

	"github.com/google/uuid"
)

type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

func (k LikeTargetKind) Valid() bool {
	switch k {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	default:
		return false
	}
}

// LikeTarget names exactly one likeable entity. Modeling the target as a
// (kind, id) pair makes "exactly one target" structural instead of three
// mutually exclusive nullable columns.
type LikeTarget struct {
	Kind LikeTargetKind
	ID   uuid.UUID
}

// Like is a directed edge from a user to a single target. The composite
// unique index is what the toggle engine's conditional insert lands on.
type Like struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LikedByID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_like_edge,priority:1;index" json:"liked_by_id"`
	TargetKind LikeTargetKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_like_edge,priority:2" json:"target_kind"`
	TargetID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_like_edge,priority:3;index" json:"target_id"`
	CreatedAt  time.Time      `gorm:"not null;index" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
