package handlers

import (
	"context"
	"net/http"

	"shootdesk/models"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
)

// TourSource fetches public virtual-tour data.
type TourSource interface {
	PublicTour(ctx context.Context, id, variant string) ([]byte, error)
}

type PublicHandler struct {
	Tours TourSource
}

func NewPublicHandler(t TourSource) *PublicHandler {
	return &PublicHandler{Tours: t}
}

// TourHandler proxies one of the mls, branded or g-mls tour variants without auth.
func (h *PublicHandler) TourHandler(c *gin.Context) {
	variant := c.Param("variant")
	if !models.TourVariants[variant] {
		utils.JSONError(c, http.StatusNotFound, "Unknown tour variant", variant)
		return
	}
	data, err := h.Tours.PublicTour(c.Request.Context(), c.Param("id"), variant)
	if err != nil {
		respondError(c, "Failed to load tour", err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}
