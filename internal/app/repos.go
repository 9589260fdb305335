package app

import (
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/data/repos/content"
	"github.com/cliptube/cliptube-backend/internal/data/repos/engagement"
	"github.com/cliptube/cliptube-backend/internal/data/repos/user"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type Repos struct {
	User         user.UserRepo
	Video        content.VideoRepo
	Comment      content.CommentRepo
	Tweet        content.TweetRepo
	Playlist     content.PlaylistRepo
	Like         engagement.LikeRepo
	Subscription engagement.SubscriptionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         user.NewUserRepo(db, log),
		Video:        content.NewVideoRepo(db, log),
		Comment:      content.NewCommentRepo(db, log),
		Tweet:        content.NewTweetRepo(db, log),
		Playlist:     content.NewPlaylistRepo(db, log),
		Like:         engagement.NewLikeRepo(db, log),
		Subscription: engagement.NewSubscriptionRepo(db, log),
	}
}
