package app

import (
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/platform/logger"
	"github.com/cliptube/cliptube-backend/internal/services"
)

type Services struct {
	User       services.UserService
	Engagement services.EngagementService
	VideoView  services.VideoViewService
	Video      services.VideoService
	Comment    services.CommentService
	Tweet      services.TweetService
	Playlist   services.PlaylistService
	Channel    services.ChannelService
	Dashboard  services.DashboardService
	Cascade    services.CascadeService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		User:       services.NewUserService(db, log, r.User),
		Engagement: services.NewEngagementService(db, log, r.User, r.Video, r.Comment, r.Tweet, r.Like, r.Subscription),
		VideoView:  services.NewVideoViewService(db, log, cfg.PageLimitMax, r.User, r.Video, r.Like, r.Subscription),
		Video:      services.NewVideoService(db, log, r.Video),
		Comment:    services.NewCommentService(db, log, cfg.PageLimitMax, r.User, r.Video, r.Comment, r.Like),
		Tweet:      services.NewTweetService(db, log, r.User, r.Tweet, r.Like),
		Playlist:   services.NewPlaylistService(db, log, r.User, r.Video, r.Playlist, r.Like),
		Channel:    services.NewChannelService(db, log, r.User, r.Video, r.Like, r.Subscription),
		Dashboard:  services.NewDashboardService(db, log, r.User, r.Video, r.Like, r.Subscription),
		Cascade:    services.NewCascadeService(db, log, r.User, r.Video, r.Comment, r.Tweet, r.Playlist, r.Like),
	}
}
