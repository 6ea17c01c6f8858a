package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-manager/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, echoes it back,
// and stores it in the request context so every log line carries it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog writes one line per request after the handler ran.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		template := "%s %s -> %d (%s)"
		args := []any{c.Request.Method, c.FullPath(), status, time.Since(start)}

		switch {
		case status >= 500:
			mw.l.Errorf(ctx, template, args...)
		case status >= 400:
			mw.l.Warnf(ctx, template, args...)
		default:
			mw.l.Infof(ctx, template, args...)
		}
	}
}
