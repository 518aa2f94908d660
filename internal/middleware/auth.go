package middleware

import (
	"strings"

	"hr_portal_backend/internal/identity"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/pkg/apperrors"
	"hr_portal_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет bearer-токен провайдера идентификации
func AuthMiddleware(verifier identity.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrNoToken)
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrNoToken)
			return
		}

		ident, err := verifier.Verify(ctx, tokenStr)
		if err != nil {
			logger.CtxWarn(ctx, "Token verification failed", "error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrInvalidToken.WithError(err))
			return
		}

		c.Set(contextkeys.UserIDKey, ident.UID)
		c.Set(contextkeys.UserEmailKey, ident.Email)
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, ident.UID))

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}

// GetUserEmail - email из проверенного токена (может быть пустым)
func GetUserEmail(c *gin.Context) string {
	return c.GetString(contextkeys.UserEmailKey)
}
