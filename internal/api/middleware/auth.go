package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"academicHub/internal/api"
	"academicHub/internal/auth"
	"academicHub/internal/domain"
)

const (
	UserIDKey string = "user_id"
	RoleKey   string = "role"
)

// TokenValidator проверяет bearer токен, реализуется auth.Manager
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// AuthMiddleware разбирает bearer токен если он передан, проверку наличия делают Require*
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.ErrCodeUnauthorized, "invalid authorization format"))
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			log.Warn().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Str("layer", "middleware").
				Msg("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.ErrCodeUnauthorized, "invalid token"))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireAuth пропускает только запросы с валидным токеном
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.ErrCodeUnauthorized, "authorization required"))
			return
		}
		c.Next()
	}
}

// RequireRole пропускает только пользователей с одной из ролей
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.ErrCodeUnauthorized, "authorization required"))
			return
		}

		role, _ := c.Get(RoleKey)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			api.NewErrorResponse(api.ErrCodeForbidden, "role is not allowed for this operation"))
	}
}

// UserID возвращает ID пользователя из токена
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
