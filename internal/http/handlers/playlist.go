package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliptube/cliptube-backend/internal/http/middleware"
	"github.com/cliptube/cliptube-backend/internal/http/response"
	"github.com/cliptube/cliptube-backend/internal/services"
)

type PlaylistHandler struct {
	playlists services.PlaylistService
	cascade   services.CascadeService
}

func NewPlaylistHandler(playlists services.PlaylistService, cascade services.CascadeService) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists, cascade: cascade}
}

// POST /playlists
func (ph *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	playlist, err := ph.playlists.CreatePlaylist(c.Request.Context(), middleware.Viewer(c), req.Name, req.Description)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"playlist": playlist})
}

// GET /playlists/:id
func (ph *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := ph.playlists.GetPlaylist(c.Request.Context(), middleware.Viewer(c), playlistID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"playlist": view})
}

// GET /users/:id/playlists
func (ph *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	ownerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	playlists, err := ph.playlists.GetUserPlaylists(c.Request.Context(), middleware.Viewer(c), ownerID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"playlists": playlists})
}

// PATCH /playlists/:id
func (ph *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	playlist, err := ph.playlists.UpdatePlaylist(c.Request.Context(), middleware.Viewer(c), playlistID, req.Name, req.Description)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"playlist": playlist})
}

// POST /playlists/:id/videos/:videoId
func (ph *PlaylistHandler) AddVideo(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}
	added, err := ph.playlists.AddVideoToPlaylist(c.Request.Context(), middleware.Viewer(c), playlistID, videoID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"added": added})
}

// DELETE /playlists/:id/videos/:videoId
func (ph *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}
	if err := ph.playlists.RemoveVideoFromPlaylist(c.Request.Context(), middleware.Viewer(c), playlistID, videoID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"removed": true})
}

// DELETE /playlists/:id
func (ph *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ph.cascade.DeletePlaylist(c.Request.Context(), middleware.Viewer(c), playlistID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}
