package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"shootdesk/middleware"
	"shootdesk/models"
	"shootdesk/services/shoots"
	"shootdesk/services/weather"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShootHandler struct {
	Service shoots.ShootService
	Weather weather.WeatherService
	Now     Clock
}

func NewShootHandler(svc shoots.ShootService, w weather.WeatherService) *ShootHandler {
	return &ShootHandler{Service: svc, Weather: w, Now: defaultClock}
}

// splitMulti accepts both repeated and comma-separated query values.
func splitMulti(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func groupOptions(c *gin.Context) shoots.GroupOptions {
	opts := shoots.GroupOptions{HistoryLimit: shoots.DefaultHistoryLimit}
	if v, err := strconv.ParseBool(c.DefaultQuery("history", "false")); err == nil {
		opts.IncludeHistory = v
	}
	if n, err := strconv.Atoi(c.Query("historyLimit")); err == nil && n > 0 {
		opts.HistoryLimit = n
	}
	return opts
}

// BoardHandler filters and groups shoots. Filters come from the query string on GET
// and from the JSON body on POST.
func (h *ShootHandler) BoardHandler(c *gin.Context) {
	var f models.FiltersState
	var err error
	if c.Request.Method == http.MethodPost {
		err = c.ShouldBindJSON(&f)
	} else {
		err = c.ShouldBindQuery(&f)
	}
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filters", err.Error())
		return
	}
	f.Statuses = splitMulti(f.Statuses)
	f.PhotographerIDs = splitMulti(f.PhotographerIDs)
	f.Services = splitMulti(f.Services)

	grouped, err := h.Service.Board(c.Request.Context(), middleware.TokenFrom(c), f, groupOptions(c), h.Now())
	if err != nil {
		respondError(c, "Failed to load shoots", err)
		return
	}
	total := 0
	for _, g := range grouped.All() {
		total += len(g.Shoots)
	}
	c.JSON(http.StatusOK, gin.H{"groups": grouped, "total": total})
}

func (h *ShootHandler) list(c *gin.Context) ([]models.ShootSummary, bool) {
	list, err := h.Service.List(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		respondError(c, "Failed to load shoots", err)
		return nil, false
	}
	return list, true
}

func (h *ShootHandler) RequestedHandler(c *gin.Context) {
	list, ok := h.list(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"shoots": shoots.RequestedShoots(list)})
}

func (h *ShootHandler) PendingReviewsHandler(c *gin.Context) {
	list, ok := h.list(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"shoots": shoots.PendingReviews(list)})
}

func (h *ShootHandler) CountsHandler(c *gin.Context) {
	list, ok := h.list(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": shoots.CountByStatus(list)})
}

// WeatherHandler returns best-effort forecasts keyed by shoot id.
func (h *ShootHandler) WeatherHandler(c *gin.Context) {
	list, ok := h.list(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"forecasts": h.Weather.Forecasts(c.Request.Context(), list, h.Now())})
}

func (h *ShootHandler) AssignHandler(c *gin.Context) {
	var body struct {
		PhotographerID string `json:"photographerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	shootID := c.Param("id")
	res, err := h.Service.Assign(c.Request.Context(), middleware.TokenFrom(c), shootID, body.PhotographerID)
	if err != nil {
		respondError(c, "Failed to assign photographer", err)
		return
	}
	middleware.RequestLogger(c).Info("Photographer assigned",
		zap.String("shootID", shootID), zap.String("photographerID", body.PhotographerID))
	c.JSON(http.StatusOK, res)
}

func (h *ShootHandler) UpdateHandler(c *gin.Context) {
	var patch models.ShootPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	res, err := h.Service.Update(c.Request.Context(), middleware.TokenFrom(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, "Failed to update shoot", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
