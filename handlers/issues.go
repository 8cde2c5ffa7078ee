package handlers

import (
	"net/http"

	"shootdesk/middleware"
	"shootdesk/models"
	"shootdesk/services/issues"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
)

type IssueHandler struct {
	Service issues.IssueService
}

func NewIssueHandler(svc issues.IssueService) *IssueHandler {
	return &IssueHandler{Service: svc}
}

func (h *IssueHandler) IssuesHandler(c *gin.Context) {
	items, err := h.Service.Issues(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		respondError(c, "Failed to load issues", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"issues": items})
}

func (h *IssueHandler) EditingRequestsHandler(c *gin.Context) {
	reqs, err := h.Service.EditingRequests(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		respondError(c, "Failed to load editing requests", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

func (h *IssueHandler) UpdateEditingRequestHandler(c *gin.Context) {
	var patch models.EditingRequestPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if patch.Priority == nil && patch.Status == nil && patch.Summary == nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", "nothing to update")
		return
	}
	updated, err := h.Service.UpdateEditingRequest(c.Request.Context(), middleware.TokenFrom(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, "Failed to update editing request", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": updated})
}

func (h *IssueHandler) DeleteEditingRequestHandler(c *gin.Context) {
	if err := h.Service.DeleteEditingRequest(c.Request.Context(), middleware.TokenFrom(c), c.Param("id")); err != nil {
		respondError(c, "Failed to delete editing request", err)
		return
	}
	c.Status(http.StatusNoContent)
}
