package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"academicHub/internal/api"
	"academicHub/internal/api/middleware"
	"academicHub/internal/domain"
)

// handleDomainError обрабатывает domain ошибки и возвращает правильный HTTP response
func handleDomainError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		c.JSON(domainErr.Status, api.NewErrorResponse(string(domainErr.Code), domainErr.Message))
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Msg("unexpected error")

	// Fallback на internal error
	c.JSON(http.StatusInternalServerError, api.NewErrorResponse(api.ErrCodeInternalError, "internal server error"))
}

// badRequest отвечает INVALID_REQUEST для ошибок разбора входных данных
func badRequest(c *gin.Context, message string) {
	log.Warn().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("path", c.FullPath()).
		Msg(message)

	c.JSON(http.StatusBadRequest, api.NewErrorResponse(api.ErrCodeInvalidRequest, message))
}

// bindJSON разбирает тело запроса, при ошибке сам пишет ответ
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return false
	}
	return true
}

// queryInt64 читает обязательный положительный числовой query параметр
func queryInt64(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		badRequest(c, name+" parameter is required")
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		badRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return v, true
}

// callerID возвращает ID пользователя из токена, маршрут уже защищён Require*
func callerID(c *gin.Context) int64 {
	id, _ := middleware.UserID(c)
	return id
}
