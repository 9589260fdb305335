package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/http/response"
	"github.com/cliptube/cliptube-backend/internal/pkg/pagination"
)

// pathID parses a uuid path param, responding 400 itself on failure.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_"+name, err)
		return uuid.Nil, false
	}
	return id, true
}

func pageParams(c *gin.Context) pagination.Params {
	return pagination.Params{
		Page:  intQuery(c, "page", 1),
		Limit: intQuery(c, "limit", 10),
	}
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	var n int
	for _, r := range raw {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	return n
}
