package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliptube/cliptube-backend/internal/http/middleware"
	"github.com/cliptube/cliptube-backend/internal/http/response"
	"github.com/cliptube/cliptube-backend/internal/services"
)

type TweetHandler struct {
	tweets  services.TweetService
	cascade services.CascadeService
}

func NewTweetHandler(tweets services.TweetService, cascade services.CascadeService) *TweetHandler {
	return &TweetHandler{tweets: tweets, cascade: cascade}
}

// POST /tweets
func (th *TweetHandler) CreateTweet(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	tweet, err := th.tweets.CreateTweet(c.Request.Context(), middleware.Viewer(c), req.Content)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"tweet": tweet})
}

// GET /users/:id/tweets
func (th *TweetHandler) GetUserTweets(c *gin.Context) {
	ownerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tweets, err := th.tweets.GetUserTweets(c.Request.Context(), middleware.Viewer(c), ownerID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tweets": tweets})
}

// PATCH /tweets/:id
func (th *TweetHandler) UpdateTweet(c *gin.Context) {
	tweetID, ok := pathID(c, "id")
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

	tweet, err := th.tweets.UpdateTweet(c.Request.Context(), middleware.Viewer(c), tweetID, req.Content)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tweet": tweet})
}

// DELETE /tweets/:id
func (th *TweetHandler) DeleteTweet(c *gin.Context) {
	tweetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := th.cascade.DeleteTweet(c.Request.Context(), middleware.Viewer(c), tweetID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}
