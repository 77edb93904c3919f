package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CxTrack/PostBuild-CRM-sub002/pkg/apierrors"
)

const defaultUserID uint64 = 1

// ScopeMiddleware resolves the acting user from the X-User-ID header set by
// the upstream gateway. Authentication itself lives there, not here; an
// absent header falls back to the default user.
func ScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := defaultUserID
		if raw := c.GetHeader("X-User-ID"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				c.AbortWithStatusJSON(
					http.StatusBadRequest,
					apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserScope, GetLang(c)),
				)
				return
			}
			userID = parsed
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) uint64 {
	if value, exists := c.Get("user_id"); exists {
		if id, ok := value.(uint64); ok {
			return id
		}
	}
	return defaultUserID
}
