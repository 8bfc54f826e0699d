package handlers

import (
	"net/http"

	"control-plane-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for organisation memberships
type MemberHandler struct {
	service service.OrganisationServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.OrganisationServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// ListMembers handles GET /api/v1/organisations/:id/members
// @Summary List organisation members
// @Description List active members, oldest first
// @Tags members
// @Produce json
// @Param id path string true "Organisation ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size (1-100)" default(10)
// @Success 200 {object} service.PaginatedResponse[service.OrganisationMemberResponse] "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Security PrincipalHeader
// @Router /organisations/{id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organisation ID")
	if !ok {
		return
	}
	page, perPage, err := paginationParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	members, err := h.service.ListMembers(c.Request.Context(), principalID, orgID, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// InviteMember handles POST /api/v1/organisations/:id/members
// @Summary Invite a member
// @Description Add an identity to the organisation with a role no higher than the caller's
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organisation ID (UUID)"
// @Param member body service.InviteMemberRequest true "Member data"
// @Success 201 {object} service.OrganisationMemberResponse "Successfully invited member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Failure 422 {object} ErrorResponse "Organisation inactive"
// @Security PrincipalHeader
// @Router /organisations/{id}/members [post]
func (h *MemberHandler) InviteMember(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organisation ID")
	if !ok {
		return
	}

	var req service.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	member, err := h.service.InviteMember(c.Request.Context(), principalID, orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ChangeRole handles PATCH /api/v1/organisations/:id/members/:memberId
// @Summary Change a member's role
// @Description Change the role of a member. The last active owner cannot be demoted.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organisation ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Param role body service.ChangeRoleRequest true "New role"
// @Success 200 {object} service.OrganisationMemberResponse "Successfully changed role"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Failure 422 {object} ErrorResponse "Last owner"
// @Security PrincipalHeader
// @Router /organisations/{id}/members/{memberId} [patch]
func (h *MemberHandler) ChangeRole(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organisation ID")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "memberId", "membership ID")
	if !ok {
		return
	}

	var req service.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	member, err := h.service.ChangeRole(c.Request.Context(), principalID, orgID, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/v1/organisations/:id/members/:memberId
// @Summary Remove a member
// @Description Deactivate a membership. Members may remove themselves. The last active owner cannot be removed.
// @Tags members
// @Param id path string true "Organisation ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Success 204 "Successfully removed member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Failure 422 {object} ErrorResponse "Last owner"
// @Security PrincipalHeader
// @Router /organisations/{id}/members/{memberId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organisation ID")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "memberId", "membership ID")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), principalID, orgID, memberID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
