package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shootdesk/backend"
	"shootdesk/config"
	"shootdesk/middleware"
	"shootdesk/services/accounts"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Clock returns the current time in the dashboard timezone.
type Clock func() time.Time

func defaultClock() time.Time {
	return time.Now().In(config.Location())
}

// respondError maps service errors onto HTTP responses. Backend statuses are passed
// through; validation failures become 422.
func respondError(c *gin.Context, message string, err error) {
	logger := middleware.RequestLogger(c)

	var verr *accounts.ValidationError
	if errors.As(err, &verr) {
		utils.JSONFieldErrors(c, "Please fix the highlighted fields", verr.Fields)
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		logger.Warn(message, zap.Int("status", apiErr.Status), zap.Error(err))
		utils.JSONError(c, apiErr.Status, message, apiErr.Message)
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		logger.Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusGatewayTimeout, message, "The backend did not respond in time")
		return
	}

	logger.Error(message, zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, message, err.Error())
}
