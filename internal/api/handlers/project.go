package handlers

import (
	"net/http"

	"control-plane-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	service service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// CreateProject handles POST /api/v1/projects
// @Summary Create a new project
// @Description Create a project in an active organisation. owner_id defaults to the caller and must hold at least the member role.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Failure 422 {object} ErrorResponse "Owner not member or organisation inactive"
// @Security PrincipalHeader
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}

	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), principalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /api/v1/projects/:id
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security PrincipalHeader
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "project ID")
	if !ok {
		return
	}

	project, err := h.service.GetProject(c.Request.Context(), principalID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /api/v1/projects
// @Summary List projects
// @Description List projects across every organisation the caller belongs to, newest first. organisation_id narrows the list to one organisation.
// @Tags projects
// @Produce json
// @Param organisation_id query string false "Organisation ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size (1-100)" default(10)
// @Success 200 {object} service.PaginatedResponse[service.ProjectResponse] "Successfully retrieved projects"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Security PrincipalHeader
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	raw, present := c.GetQuery("organisation_id")
	if !present {
		h.list(c, nil)
		return
	}

	orgID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "Invalid organisation ID: invalid UUID format"})
		return
	}
	h.list(c, &orgID)
}

// ListOrganisationProjects handles GET /api/v1/organisations/:id/projects
// @Summary List organisation projects
// @Description List the projects of one organisation, newest first
// @Tags projects
// @Produce json
// @Param id path string true "Organisation ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size (1-100)" default(10)
// @Success 200 {object} service.PaginatedResponse[service.ProjectResponse] "Successfully retrieved projects"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Security PrincipalHeader
// @Router /organisations/{id}/projects [get]
func (h *ProjectHandler) ListOrganisationProjects(c *gin.Context) {
	orgID, ok := parseUUIDParam(c, "id", "organisation ID")
	if !ok {
		return
	}
	h.list(c, &orgID)
}

func (h *ProjectHandler) list(c *gin.Context, orgID *uuid.UUID) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	page, perPage, err := paginationParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	projects, err := h.service.ListProjects(c.Request.Context(), principalID, orgID, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// UpdateProject handles PUT /api/v1/projects/:id
// @Summary Update a project
// @Description Partially update a project, including its archived flag
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} service.ProjectResponse "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security PrincipalHeader
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "project ID")
	if !ok {
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), principalID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ArchiveProject handles POST /api/v1/projects/:id/archive
// @Summary Archive a project
// @Description Archive a project. Archiving an archived project is a no-op.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Project archived"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security PrincipalHeader
// @Router /projects/{id}/archive [post]
func (h *ProjectHandler) ArchiveProject(c *gin.Context) {
	h.setArchived(c, true)
}

// UnarchiveProject handles POST /api/v1/projects/:id/unarchive
// @Summary Unarchive a project
// @Description Unarchive a project. Unarchiving an active project is a no-op.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Project unarchived"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security PrincipalHeader
// @Router /projects/{id}/unarchive [post]
func (h *ProjectHandler) UnarchiveProject(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *ProjectHandler) setArchived(c *gin.Context, archived bool) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "project ID")
	if !ok {
		return
	}

	var (
		project *service.ProjectResponse
		err     error
	)
	if archived {
		project, err = h.service.ArchiveProject(c.Request.Context(), principalID, id)
	} else {
		project, err = h.service.UnarchiveProject(c.Request.Context(), principalID, id)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/v1/projects/:id
// @Summary Delete a project
// @Tags projects
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Successfully deleted project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security PrincipalHeader
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "project ID")
	if !ok {
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), principalID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
