package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for request-context keys.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	agencyIDKey  = contextKey("agencyID")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the standard
// context. It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetAgencyIDFromContext retrieves the authenticated agency ID set by the
// auth middleware. The boolean reports whether a caller is authenticated.
func GetAgencyIDFromContext(c *gin.Context) (string, bool) {
	agencyID, ok := c.Request.Context().Value(agencyIDKey).(string)
	if !ok || agencyID == "" {
		return "", false
	}
	return agencyID, true
}
