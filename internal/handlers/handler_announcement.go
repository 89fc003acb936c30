package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/middleware"
)

// announcementHandler handles HTTP requests for the announcement feed.
type announcementHandler struct {
	announcementService portssvc.AnnouncementSvcFacade
}

// registerAnnouncementRoutes registers routes related to announcements.
func registerAnnouncementRoutes(rg *gin.RouterGroup, announcementService portssvc.AnnouncementSvcFacade) {
	h := &announcementHandler{announcementService: announcementService}

	announcements := rg.Group("/announcements")
	{
		announcements.POST("", h.createAnnouncement)
		announcements.GET("/:id", h.getAnnouncement)
		announcements.GET("", h.listAnnouncements)
		announcements.PUT("/:id", h.updateAnnouncement)
		announcements.DELETE("/:id", h.deleteAnnouncement)
	}
}

// createAnnouncement godoc
// @Summary Post an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body dto.CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} domain.Announcement
// @Security BearerAuth
// @Router /announcements [post]
func (h *announcementHandler) createAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create announcement")
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

// getAnnouncement godoc
// @Summary Get an announcement by ID
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} domain.Announcement
// @Security BearerAuth
// @Router /announcements/{id} [get]
func (h *announcementHandler) getAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	announcement, err := h.announcementService.GetAnnouncementByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve announcement")
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// listAnnouncements godoc
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Success 200 {object} dto.ListAnnouncementsResponse
// @Security BearerAuth
// @Router /announcements [get]
func (h *announcementHandler) listAnnouncements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := pageParams(c)
	announcements, err := h.announcementService.ListAnnouncements(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list announcements")
		return
	}
	c.JSON(http.StatusOK, dto.ListAnnouncementsResponse{Announcements: announcements})
}

// updateAnnouncement godoc
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param announcement body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} domain.Announcement
// @Security BearerAuth
// @Router /announcements/{id} [put]
func (h *announcementHandler) updateAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	announcement, err := h.announcementService.UpdateAnnouncement(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update announcement")
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// deleteAnnouncement godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (h *announcementHandler) deleteAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}
	if err := h.announcementService.DeleteAnnouncement(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete announcement")
		return
	}
	c.Status(http.StatusNoContent)
}
