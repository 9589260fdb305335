package app

import (
	appHTTP "github.com/cliptube/cliptube-backend/internal/http"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, h Handlers) *appHTTP.Server {
	return appHTTP.NewServer(appHTTP.RouterConfig{
		Log:               log,
		HealthHandler:     h.Health,
		UserHandler:       h.User,
		VideoHandler:      h.Video,
		CommentHandler:    h.Comment,
		TweetHandler:      h.Tweet,
		EngagementHandler: h.Engagement,
		ChannelHandler:    h.Channel,
		PlaylistHandler:   h.Playlist,
	})
}
