package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alaaldainabdo/scalable-login-system/internal/common"
	"github.com/alaaldainabdo/scalable-login-system/internal/logging"
)

const requestIDKey = "request_id"

// requestID takes X-Request-ID from the request or generates one, and echoes
// it on the response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(common.RequestIDHeaderName, id)
		c.Next()
	}
}

// requestLogger writes one line per request after the handler chain ran.
func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			requestIDKey, c.GetString(requestIDKey),
		}

		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			l.Error(ctx, "request", args...)
		case status >= http.StatusBadRequest:
			l.Warn(ctx, "request", args...)
		default:
			l.Info(ctx, "request", args...)
		}
	}
}

// recovery turns a handler panic into the generic 500 body.
func recovery(l logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		l.Error(c.Request.Context(), "panic recovered", "panic", recovered, requestIDKey, c.GetString(requestIDKey))
		c.AbortWithStatusJSON(http.StatusInternalServerError, messageResponse{Message: msgInternalError})
	})
}

// scoped returns the request context and a logger tagged with the request id.
func scoped(c *gin.Context, l logging.Logger) (context.Context, logging.Logger) {
	return c.Request.Context(), l.With(requestIDKey, c.GetString(requestIDKey))
}
