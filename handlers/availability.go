package handlers

import (
	"net/http"

	"shootdesk/middleware"
	"shootdesk/services/availability"
	"shootdesk/services/shoots"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Now     Clock
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Now: defaultClock}
}

// TimelineHandler builds the hourly timeline for ?date=YYYY-MM-DD, today by default.
func (h *AvailabilityHandler) TimelineHandler(c *gin.Context) {
	now := h.Now()
	date := shoots.StartOfDay(now)
	if raw := c.Query("date"); raw != "" {
		d, ok := shoots.ParseDateBound(raw, now.Location())
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", "expected YYYY-MM-DD")
			return
		}
		date = d
	}

	photographerID := c.Param("id")
	timeline, err := h.Service.Timeline(c.Request.Context(), middleware.TokenFrom(c), photographerID, date, now)
	if err != nil {
		respondError(c, "Failed to load availability", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"photographerId": photographerID,
		"date":           date.Format("2006-01-02"),
		"slots":          timeline,
	})
}

func (h *AvailabilityHandler) NextAvailabilityHandler(c *gin.Context) {
	next, err := h.Service.Next(c.Request.Context(), middleware.TokenFrom(c), c.Param("id"), h.Now())
	if err != nil {
		respondError(c, "Failed to load availability", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": next})
}
