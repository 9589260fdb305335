package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/http/middleware"
	"github.com/cliptube/cliptube-backend/internal/http/response"
	"github.com/cliptube/cliptube-backend/internal/services"
)

type VideoHandler struct {
	videoViews services.VideoViewService
	videos     services.VideoService
	cascade    services.CascadeService
}

func NewVideoHandler(videoViews services.VideoViewService, videos services.VideoService, cascade services.CascadeService) *VideoHandler {
	return &VideoHandler{videoViews: videoViews, videos: videos, cascade: cascade}
}

// GET /videos?query=&userId=&sortBy=&sortType=&page=&limit=
func (vh *VideoHandler) ListVideos(c *gin.Context) {
	filter := services.VideoFilter{
		Search:  c.Query("query"),
		SortBy:  c.Query("sortBy"),
		SortDir: c.Query("sortType"),
	}
	if raw := c.Query("userId"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "bad_user_id", err)
			return
		}
		filter.OwnerID = ownerID
	}

	page, err := vh.videoViews.ListVideos(c.Request.Context(), middleware.Viewer(c), filter, pageParams(c))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, page)
}

// GET /videos/:id
func (vh *VideoHandler) GetVideo(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := vh.videoViews.GetVideo(c.Request.Context(), middleware.Viewer(c), videoID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"video": detail})
}

// POST /videos
func (vh *VideoHandler) PublishVideo(c *gin.Context) {
	var req struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		VideoFileURL string  `json:"video_file_url"`
		ThumbnailURL string  `json:"thumbnail_url"`
		Duration     float64 `json:"duration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	video, err := vh.videos.PublishVideo(c.Request.Context(), middleware.Viewer(c), &types.Video{
		Title:        req.Title,
		Description:  req.Description,
		VideoFileURL: req.VideoFileURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"video": video})
}

// PATCH /videos/:id
func (vh *VideoHandler) UpdateVideo(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	video, err := vh.videos.UpdateVideoDetails(c.Request.Context(), middleware.Viewer(c), videoID, req.Title, req.Description)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"video": video})
}

// PATCH /videos/:id/toggle-publish
func (vh *VideoHandler) TogglePublish(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	video, err := vh.videos.TogglePublishStatus(c.Request.Context(), middleware.Viewer(c), videoID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"video": video})
}

// DELETE /videos/:id
func (vh *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := vh.cascade.DeleteVideo(c.Request.Context(), middleware.Viewer(c), videoID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}

// GET /users/history
func (vh *VideoHandler) GetWatchHistory(c *gin.Context) {
	history, err := vh.videoViews.GetWatchHistory(c.Request.Context(), middleware.Viewer(c))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"videos": history})
}
