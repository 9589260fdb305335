package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliptube/cliptube-backend/internal/http/middleware"
	"github.com/cliptube/cliptube-backend/internal/http/response"
	"github.com/cliptube/cliptube-backend/internal/services"
)

type CommentHandler struct {
	comments services.CommentService
	cascade  services.CascadeService
}

func NewCommentHandler(comments services.CommentService, cascade services.CascadeService) *CommentHandler {
	return &CommentHandler{comments: comments, cascade: cascade}
}

// GET /videos/:id/comments?page=&limit=
func (ch *CommentHandler) GetVideoComments(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, err := ch.comments.GetVideoComments(c.Request.Context(), middleware.Viewer(c), videoID, pageParams(c))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, page)
}

// POST /videos/:id/comments
func (ch *CommentHandler) AddComment(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	comment, err := ch.comments.AddComment(c.Request.Context(), middleware.Viewer(c), videoID, req.Content)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"comment": comment})
}

// PATCH /comments/:id
func (ch *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	comment, err := ch.comments.UpdateComment(c.Request.Context(), middleware.Viewer(c), commentID, req.Content)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"comment": comment})
}

// DELETE /comments/:id
func (ch *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ch.cascade.DeleteComment(c.Request.Context(), middleware.Viewer(c), commentID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}
