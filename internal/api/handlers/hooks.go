package handlers

import (
	"net/http"

	"control-plane-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HookHandler receives identity provider webhooks
type HookHandler struct {
	service service.HookServiceInterface
}

// NewHookHandler creates a new hook handler
func NewHookHandler(service service.HookServiceInterface) *HookHandler {
	return &HookHandler{service: service}
}

// AfterRegistration handles POST /hooks/after-registration
// @Summary Provision a personal organisation after registration
// @Description Called by the identity provider once a registration flow completes. Requires the shared secret in X-API-KEY.
// @Tags hooks
// @Accept json
// @Produce json
// @Param payload body service.AfterRegistrationRequest true "Registration event"
// @Success 200 {object} service.AfterRegistrationResponse "Organisation provisioned"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security WebhookAPIKey
// @Router /hooks/after-registration [post]
func (h *HookHandler) AfterRegistration(c *gin.Context) {
	var req service.AfterRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	resp, err := h.service.AfterRegistration(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
