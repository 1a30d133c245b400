package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"academicHub/internal/api"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().
			Interface("panic", recovered).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("layer", "middleware").
			Msg("panic recovered in HTTP request")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			api.NewErrorResponse(api.ErrCodeInternalError, "internal server error"))
	})
}
