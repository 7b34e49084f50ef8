package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a UUID, honoring one supplied by
// the client or an upstream proxy.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// Logging emits one structured line per request.
func Logging(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": c.GetString("request_id"),
			"client_ip":  c.ClientIP(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			reqLog.Error("Request completed", fields)
		} else {
			reqLog.Info("Request completed", fields)
		}
	}
}

// Recovery converts panics into the standard error envelope instead of
// a closed connection.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	panicLog := log.WithComponent("http")
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		panicLog.Error("Handler panic", map[string]interface{}{
			"panic":      recovered,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		})
		appErr := errors.Internal(nil)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
	})
}

// CORS allows browser clients on other origins to call the API.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
