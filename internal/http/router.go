package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/cliptube/cliptube-backend/internal/http/handlers"
	httpMW "github.com/cliptube/cliptube-backend/internal/http/middleware"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler     *httpH.HealthHandler
	UserHandler       *httpH.UserHandler
	VideoHandler      *httpH.VideoHandler
	CommentHandler    *httpH.CommentHandler
	TweetHandler      *httpH.TweetHandler
	EngagementHandler *httpH.EngagementHandler
	ChannelHandler    *httpH.ChannelHandler
	PlaylistHandler   *httpH.PlaylistHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("cliptube-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.AttachViewer())
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")

	// Public reads. The viewer header, when present, only shapes the
	// viewer-relative flags.
	{
		if cfg.UserHandler != nil {
			api.POST("/users", cfg.UserHandler.CreateUser)
			api.GET("/users/:id", cfg.UserHandler.GetUser)
		}
		if cfg.VideoHandler != nil {
			api.GET("/videos", cfg.VideoHandler.ListVideos)
			api.GET("/videos/:id", cfg.VideoHandler.GetVideo)
		}
		if cfg.CommentHandler != nil {
			api.GET("/videos/:id/comments", cfg.CommentHandler.GetVideoComments)
		}
		if cfg.TweetHandler != nil {
			api.GET("/users/:id/tweets", cfg.TweetHandler.GetUserTweets)
		}
		if cfg.PlaylistHandler != nil {
			api.GET("/playlists/:id", cfg.PlaylistHandler.GetPlaylist)
			api.GET("/users/:id/playlists", cfg.PlaylistHandler.GetUserPlaylists)
		}
		if cfg.ChannelHandler != nil {
			api.GET("/channels/:username", cfg.ChannelHandler.GetChannelProfile)
			api.GET("/subscriptions/channel/:channelId/subscribers", cfg.ChannelHandler.GetChannelSubscribers)
			api.GET("/subscriptions/user/:subscriberId/channels", cfg.ChannelHandler.GetSubscribedChannels)
		}
	}

	// Mutations and viewer-scoped reads need an identified viewer.
	protected := api.Group("/")
	protected.Use(httpMW.RequireViewer())
	{
		if cfg.VideoHandler != nil {
			protected.POST("/videos", cfg.VideoHandler.PublishVideo)
			protected.PATCH("/videos/:id", cfg.VideoHandler.UpdateVideo)
			protected.PATCH("/videos/:id/toggle-publish", cfg.VideoHandler.TogglePublish)
			protected.DELETE("/videos/:id", cfg.VideoHandler.DeleteVideo)
			protected.GET("/users/history", cfg.VideoHandler.GetWatchHistory)
		}
		if cfg.CommentHandler != nil {
			protected.POST("/videos/:id/comments", cfg.CommentHandler.AddComment)
			protected.PATCH("/comments/:id", cfg.CommentHandler.UpdateComment)
			protected.DELETE("/comments/:id", cfg.CommentHandler.DeleteComment)
		}
		if cfg.TweetHandler != nil {
			protected.POST("/tweets", cfg.TweetHandler.CreateTweet)
			protected.PATCH("/tweets/:id", cfg.TweetHandler.UpdateTweet)
			protected.DELETE("/tweets/:id", cfg.TweetHandler.DeleteTweet)
		}
		if cfg.EngagementHandler != nil {
			protected.POST("/likes/toggle/video/:id", cfg.EngagementHandler.ToggleVideoLike)
			protected.POST("/likes/toggle/comment/:id", cfg.EngagementHandler.ToggleCommentLike)
			protected.POST("/likes/toggle/tweet/:id", cfg.EngagementHandler.ToggleTweetLike)
			protected.GET("/likes/videos", cfg.EngagementHandler.GetLikedVideos)
			protected.POST("/subscriptions/toggle/:channelId", cfg.EngagementHandler.ToggleSubscription)
		}
		if cfg.PlaylistHandler != nil {
			protected.POST("/playlists", cfg.PlaylistHandler.CreatePlaylist)
			protected.PATCH("/playlists/:id", cfg.PlaylistHandler.UpdatePlaylist)
			protected.DELETE("/playlists/:id", cfg.PlaylistHandler.DeletePlaylist)
			protected.POST("/playlists/:id/videos/:videoId", cfg.PlaylistHandler.AddVideo)
			protected.DELETE("/playlists/:id/videos/:videoId", cfg.PlaylistHandler.RemoveVideo)
		}
		if cfg.ChannelHandler != nil {
			protected.GET("/dashboard/stats", cfg.ChannelHandler.GetChannelStats)
		}
	}

	return r
}
