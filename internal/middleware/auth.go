package middleware

import (
	"strings"

	"fitstream_backend/internal/auth"
	"fitstream_backend/internal/logger"
	"fitstream_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Bearer token and stores the claims in
// the gin context under userID/email/name.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			logger.CtxWarn(ctx, "Rejected request: missing or malformed Authorization header",
				"path", c.Request.URL.Path,
				"ip", c.ClientIP(),
			)
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrTokenExpired) {
				logger.CtxInfo(ctx, "Rejected request: token expired", "path", c.Request.URL.Path)
				abortUnauthorized(c, apperrors.ErrTokenExpired)
				return
			}
			logger.CtxWarn(ctx, "Rejected request: invalid token",
				"path", c.Request.URL.Path,
				"ip", c.ClientIP(),
			)
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)

		// Carry the user ID on the request context so all downstream
		// log lines include it.
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, claims.UserID))

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}

// GetUserID extracts the authenticated user ID from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
