package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/middleware"
)

// memberHandler handles HTTP requests for the member directory.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

// registerMemberRoutes registers routes related to directory members.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := &memberHandler{memberService: memberService}

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("/:id", h.getMember)
		members.GET("", h.listMembers)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deleteMember)
	}
}

// createMember godoc
// @Summary Add a member to the directory
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} domain.Member
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create member")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// getMember godoc
// @Summary Get a member by ID
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} domain.Member
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	member, err := h.memberService.GetMemberByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// listMembers godoc
// @Summary List directory members
// @Tags members
// @Produce json
// @Success 200 {object} dto.ListMembersResponse
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := pageParams(c)
	members, err := h.memberService.ListMembers(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ListMembersResponse{Members: members})
}

// updateMember godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} domain.Member
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// deleteMember godoc
// @Summary Remove a member from the directory
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}
	if err := h.memberService.DeleteMember(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete member")
		return
	}
	c.Status(http.StatusNoContent)
}
