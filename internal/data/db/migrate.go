package db

import (
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Entities
		&types.User{},
		&types.Video{},
		&types.Comment{},
		&types.Tweet{},
		&types.Playlist{},

		// Membership / history
		&types.PlaylistVideo{},
		&types.WatchHistoryEntry{},

		// Edges
		&types.Like{},
		&types.Subscription{},
	)
}
