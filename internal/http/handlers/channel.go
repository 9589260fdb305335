package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cliptube/cliptube-backend/internal/http/middleware"
	"github.com/cliptube/cliptube-backend/internal/http/response"
	"github.com/cliptube/cliptube-backend/internal/services"
)

type ChannelHandler struct {
	channels  services.ChannelService
	dashboard services.DashboardService
}

func NewChannelHandler(channels services.ChannelService, dashboard services.DashboardService) *ChannelHandler {
	return &ChannelHandler{channels: channels, dashboard: dashboard}
}

// GET /channels/:username
func (ch *ChannelHandler) GetChannelProfile(c *gin.Context) {
	profile, err := ch.channels.GetChannelProfile(c.Request.Context(), middleware.Viewer(c), c.Param("username"))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"channel": profile})
}

// GET /subscriptions/channel/:channelId/subscribers
func (ch *ChannelHandler) GetChannelSubscribers(c *gin.Context) {
	channelID, ok := pathID(c, "channelId")
	if !ok {
		return
	}
	subscribers, err := ch.channels.GetChannelSubscribers(c.Request.Context(), channelID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"subscribers": subscribers})
}

// GET /subscriptions/user/:subscriberId/channels
func (ch *ChannelHandler) GetSubscribedChannels(c *gin.Context) {
	subscriberID, ok := pathID(c, "subscriberId")
	if !ok {
		return
	}
	channels, err := ch.channels.GetSubscribedChannels(c.Request.Context(), middleware.Viewer(c), subscriberID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"channels": channels})
}

// GET /dashboard/stats
func (ch *ChannelHandler) GetChannelStats(c *gin.Context) {
	stats, err := ch.dashboard.GetChannelStats(c.Request.Context(), middleware.Viewer(c))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"stats": stats})
}
