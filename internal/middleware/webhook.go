package middleware

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"

	"hr_portal_backend/internal/logger"
	"hr_portal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const WebhookSecretHeader = "X-Webhook-Secret"

// maxWebhookBody - лимит тела при чтении поля secret
const maxWebhookBody = 1 << 20

// WebhookSecretMiddleware сверяет общий секрет из заголовка или поля "secret" тела.
// Тело после чтения восстанавливается для хэндлера.
func WebhookSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(WebhookSecretHeader)

		if provided == "" && c.Request.Body != nil {
			body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
			if err != nil {
				apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))

			var payload struct {
				Secret string `json:"secret"`
			}
			if len(body) > 0 {
				_ = json.Unmarshal(body, &payload)
			}
			provided = payload.Secret
		}

		if !SecretsEqual(secret, provided) {
			logger.CtxWarn(c.Request.Context(), "Webhook rejected: invalid secret",
				"path", c.Request.URL.Path,
				"ip", c.ClientIP(),
			)
			apperrors.HandleError(c, apperrors.ErrInvalidWebhookSecret)
			return
		}

		c.Next()
	}
}

// SecretsEqual - сравнение за постоянное время; пустой ожидаемый секрет не совпадает ни с чем
func SecretsEqual(expected, provided string) bool {
	if expected == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
