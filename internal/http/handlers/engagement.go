package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/http/middleware"
	"github.com/cliptube/cliptube-backend/internal/http/response"
	"github.com/cliptube/cliptube-backend/internal/services"
)

type EngagementHandler struct {
	engagement services.EngagementService
	videoViews services.VideoViewService
}

func NewEngagementHandler(engagement services.EngagementService, videoViews services.VideoViewService) *EngagementHandler {
	return &EngagementHandler{engagement: engagement, videoViews: videoViews}
}

// POST /likes/toggle/video/:id
func (eh *EngagementHandler) ToggleVideoLike(c *gin.Context) {
	eh.toggleLike(c, types.LikeTargetVideo)
}

// POST /likes/toggle/comment/:id
func (eh *EngagementHandler) ToggleCommentLike(c *gin.Context) {
	eh.toggleLike(c, types.LikeTargetComment)
}

// POST /likes/toggle/tweet/:id
func (eh *EngagementHandler) ToggleTweetLike(c *gin.Context) {
	eh.toggleLike(c, types.LikeTargetTweet)
}

func (eh *EngagementHandler) toggleLike(c *gin.Context, kind types.LikeTargetKind) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	active, err := eh.engagement.ToggleLike(c.Request.Context(), middleware.Viewer(c), types.LikeTarget{Kind: kind, ID: targetID})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"liked": active})
}

// POST /subscriptions/toggle/:channelId
func (eh *EngagementHandler) ToggleSubscription(c *gin.Context) {
	channelID, ok := pathID(c, "channelId")
	if !ok {
		return
	}
	active, err := eh.engagement.ToggleSubscription(c.Request.Context(), middleware.Viewer(c), channelID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"subscribed": active})
}

// GET /likes/videos
func (eh *EngagementHandler) GetLikedVideos(c *gin.Context) {
	videos, err := eh.videoViews.GetLikedVideos(c.Request.Context(), middleware.Viewer(c))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"videos": videos})
}
