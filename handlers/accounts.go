package handlers

import (
	"net/http"

	"shootdesk/middleware"
	"shootdesk/models"
	"shootdesk/services/accounts"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AccountHandler struct {
	Service accounts.AccountService
}

func NewAccountHandler(svc accounts.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

func (h *AccountHandler) submit(c *gin.Context, id string, status int) {
	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}
	var values models.AccountFormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	values.ID = id

	account, err := h.Service.Submit(c.Request.Context(), middleware.TokenFrom(c), values, viewer)
	if err != nil {
		respondError(c, "Failed to save account", err)
		return
	}
	middleware.RequestLogger(c).Info("Account saved", zap.String("accountID", account.ID), zap.String("role", values.Role))
	c.JSON(status, gin.H{"account": account})
}

func (h *AccountHandler) CreateAccountHandler(c *gin.Context) {
	h.submit(c, "", http.StatusCreated)
}

func (h *AccountHandler) UpdateAccountHandler(c *gin.Context) {
	h.submit(c, c.Param("id"), http.StatusOK)
}

// CreatorsHandler lists the accounts a superadmin may record as creator.
func (h *AccountHandler) CreatorsHandler(c *gin.Context) {
	list, err := h.Service.CreatorCandidates(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		respondError(c, "Failed to load creators", err)
		return
	}
	creators := make([]models.Creator, 0, len(list))
	for _, a := range list {
		creators = append(creators, models.Creator{ID: a.ID, Name: a.DisplayName()})
	}
	c.JSON(http.StatusOK, gin.H{"creators": creators})
}

func (h *AccountHandler) ImportTemplateHandler(c *gin.Context) {
	data, contentType, err := h.Service.ImportTemplate(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		respondError(c, "Failed to download template", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="accounts-import-template.csv"`)
	c.Data(http.StatusOK, contentType, data)
}

func (h *AccountHandler) UpdateProfileHandler(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil || len(body) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", "expected a non-empty JSON object")
		return
	}
	data, err := h.Service.UpdateProfile(c.Request.Context(), middleware.TokenFrom(c), body)
	if err != nil {
		respondError(c, "Failed to update profile", err)
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}
