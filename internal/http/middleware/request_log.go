package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/platform/ctxutil"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if viewer := Viewer(c); viewer != uuid.Nil {
			fields = append(fields, "viewer_id", viewer.String())
		}
		tr := ctxutil.TraceFrom(c.Request.Context())
		if tr.TraceID != "" {
			fields = append(fields, "trace_id", tr.TraceID)
		}
		if tr.RequestID != "" {
			fields = append(fields, "request_id", tr.RequestID)
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
