package handlers

import (
	"net/http"

	"shootdesk/middleware"
	"shootdesk/services/notification"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Service notification.NotificationService
	Now     Clock
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc, Now: defaultClock}
}

func (h *NotificationHandler) FeedHandler(c *gin.Context) {
	feed, err := h.Service.Feed(c.Request.Context(), middleware.TokenFrom(c), h.Now())
	if err != nil {
		respondError(c, "Failed to load notifications", err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// ApprovalHandler resolves a cancellation or hold request from the approval dialog.
func (h *NotificationHandler) ApprovalHandler(c *gin.Context) {
	var body struct {
		ShootID string `json:"shootId" binding:"required"`
		Type    string `json:"type" binding:"required,oneof=cancellation hold"`
		Approve *bool  `json:"approve" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if err := h.Service.Resolve(c.Request.Context(), middleware.TokenFrom(c), body.ShootID, body.Type, *body.Approve); err != nil {
		respondError(c, "Failed to resolve request", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shootId": body.ShootID, "type": body.Type, "approved": *body.Approve})
}
