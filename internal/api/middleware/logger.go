package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDKey    string = "request_id"
	RequestIDHeader string = "X-Request-ID"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Принимаем ID от балансировщика, иначе генерируем свой
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(c.Request.Context(), RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()

		log.Info().
			Str("request_id", requestID).
			Str("layer", "middleware").
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request started")

		c.Next()

		latency := time.Since(start)

		log.Info().
			Str("request_id", requestID).
			Str("layer", "middleware").
			Dur("latency", latency).
			Int("status", c.Writer.Status()).
			Msg("request completed")
	}
}
