// Package respond writes JSON responses in the envelope conventions the
// API uses: payloads as-is on success, AppError envelopes on failure.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/logger"
)

// OK writes a 200 response with the given payload.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes the error as an AppError envelope. Errors that are not
// AppErrors are logged and masked as a generic internal failure so no
// incidental detail leaks to clients.
func Error(c *gin.Context, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		logger.GetGlobalLogger().WithError(err).Error("Unclassified handler error", map[string]interface{}{
			"path": c.FullPath(),
		})
		appErr = errors.Internal(err)
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.GetGlobalLogger().WithError(appErr).Error("Request failed", map[string]interface{}{
			"path": c.FullPath(),
		})
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
