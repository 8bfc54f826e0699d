package handlers

import (
	"net/http"

	"control-plane-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganisationHandler handles HTTP requests for organisations
type OrganisationHandler struct {
	service service.OrganisationServiceInterface
}

// NewOrganisationHandler creates a new organisation handler
func NewOrganisationHandler(service service.OrganisationServiceInterface) *OrganisationHandler {
	return &OrganisationHandler{service: service}
}

// CreateOrganisation handles POST /api/v1/organisations
// @Summary Create a new organisation
// @Description Create an organisation owned by the calling principal. The Owner membership is created in the same transaction.
// @Tags organisations
// @Accept json
// @Produce json
// @Param organisation body service.CreateOrganisationRequest true "Organisation data"
// @Success 201 {object} service.CreateOrganisationResponse "Successfully created organisation"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing principal"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security PrincipalHeader
// @Router /organisations [post]
func (h *OrganisationHandler) CreateOrganisation(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}

	var req service.CreateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	created, err := h.service.CreateOrganisation(c.Request.Context(), principalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetOrganisation handles GET /api/v1/organisations/:id
// @Summary Get organisation by ID
// @Description Get an organisation the calling principal is a member of
// @Tags organisations
// @Produce json
// @Param id path string true "Organisation ID (UUID)"
// @Success 200 {object} service.OrganisationResponse "Successfully retrieved organisation"
// @Failure 400 {object} ErrorResponse "Invalid organisation ID"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Security PrincipalHeader
// @Router /organisations/{id} [get]
func (h *OrganisationHandler) GetOrganisation(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "organisation ID")
	if !ok {
		return
	}

	org, err := h.service.GetOrganisation(c.Request.Context(), principalID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganisations handles GET /api/v1/organisations
// @Summary List the principal's organisations
// @Description List every organisation where the calling principal holds an active membership
// @Tags organisations
// @Produce json
// @Success 200 {array} service.OrganisationResponse "Successfully retrieved organisations"
// @Failure 401 {object} ErrorResponse "Missing principal"
// @Security PrincipalHeader
// @Router /organisations [get]
func (h *OrganisationHandler) ListOrganisations(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}

	orgs, err := h.service.ListOrganisations(c.Request.Context(), principalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganisation handles PATCH /api/v1/organisations/:id
// @Summary Update an organisation
// @Description Partially update an organisation. Setting is_active to false deactivates it permanently.
// @Tags organisations
// @Accept json
// @Produce json
// @Param id path string true "Organisation ID (UUID)"
// @Param organisation body service.UpdateOrganisationRequest true "Fields to change"
// @Success 200 {object} service.OrganisationResponse "Successfully updated organisation"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Failure 422 {object} ErrorResponse "Organisation inactive"
// @Security PrincipalHeader
// @Router /organisations/{id} [patch]
func (h *OrganisationHandler) UpdateOrganisation(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "organisation ID")
	if !ok {
		return
	}

	var req service.UpdateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	org, err := h.service.UpdateOrganisation(c.Request.Context(), principalID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}
