package app

import (
	httpH "github.com/cliptube/cliptube-backend/internal/http/handlers"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	User       *httpH.UserHandler
	Video      *httpH.VideoHandler
	Comment    *httpH.CommentHandler
	Tweet      *httpH.TweetHandler
	Engagement *httpH.EngagementHandler
	Channel    *httpH.ChannelHandler
	Playlist   *httpH.PlaylistHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		User:       httpH.NewUserHandler(s.User),
		Video:      httpH.NewVideoHandler(s.VideoView, s.Video, s.Cascade),
		Comment:    httpH.NewCommentHandler(s.Comment, s.Cascade),
		Tweet:      httpH.NewTweetHandler(s.Tweet, s.Cascade),
		Engagement: httpH.NewEngagementHandler(s.Engagement, s.VideoView),
		Channel:    httpH.NewChannelHandler(s.Channel, s.Dashboard),
		Playlist:   httpH.NewPlaylistHandler(s.Playlist, s.Cascade),
	}
}
