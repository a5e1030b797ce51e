package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"restomenu/internal/pkg/response"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs one line when it
// completes, at a level chosen by the status class.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := requestID(c)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			ev = log.Error()
		case status >= http.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("request_id", id).
			Msg("request")
	}
}

// ErrorLogger logs detailed error information and recovers from panics.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, start, "panic", err, debug.Stack())

				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				c.Abort()
				return
			}

			for _, e := range c.Errors {
				logRequestError(c, start, fmt.Sprintf("%v", e.Type), e.Err, nil)
			}
		}()

		c.Next()
	}
}

func logRequestError(c *gin.Context, start time.Time, errType string, err error, stack []byte) {
	ev := log.Error().
		Err(err).
		Str("type", errType).
		Int("status", c.Writer.Status()).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString("request_id")).
		Dur("latency", time.Since(start))
	if stack != nil {
		ev = ev.Bytes("stack", stack)
	}
	ev.Msg("request_error")
}

func requestID(c *gin.Context) string {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = c.GetHeader("X-Request-Id")
	}
	return id
}
