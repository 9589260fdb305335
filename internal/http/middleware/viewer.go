package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/http/response"
)

// HeaderViewerID carries the acting user's id. Absent or blank means an
// anonymous viewer; reads still work, viewer-relative flags come back false.
const HeaderViewerID = "X-Viewer-Id"

const viewerKey = "viewer_id"

// AttachViewer resolves the viewer header once per request. A malformed id
// is rejected outright rather than silently treated as anonymous.
func AttachViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderViewerID))
		if raw == "" {
			c.Set(viewerKey, uuid.Nil)
			c.Next()
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "bad_viewer_id", err)
			c.Abort()
			return
		}
		c.Set(viewerKey, id)
		c.Next()
	}
}

// RequireViewer guards mutating routes; anonymous requests get a 401.
func RequireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Viewer(c) == uuid.Nil {
			response.RespondError(c, http.StatusUnauthorized, "viewer_required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Viewer returns the resolved viewer id, uuid.Nil when anonymous.
func Viewer(c *gin.Context) uuid.UUID {
	v, ok := c.Get(viewerKey)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
