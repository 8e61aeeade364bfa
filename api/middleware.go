package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sales_tracker/internal/auth"
)

const userIDKey = "user_id"

// RequestID tags every request with an id for log correlation and echoes it
// back in the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// AuthRequired validates the bearer credential and threads the caller's
// user id to the wrapped handler. It short-circuits with a 401 on any
// failure.
func AuthRequired(validator *auth.Validator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validator.ValidateHeader(c.GetHeader("Authorization"))
		if err != nil {
			logger.Warn("rejected request credential",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": authMessage(err)})
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "Authorization Token is missing!"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token has expired!"
	case errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token type!"
	default:
		return "Token is invalid!"
	}
}
