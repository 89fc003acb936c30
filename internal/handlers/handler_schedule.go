package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/middleware"
)

// scheduleHandler handles HTTP requests for ministry schedules.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

// registerScheduleRoutes registers routes related to schedules.
func registerScheduleRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	h := &scheduleHandler{scheduleService: scheduleService}

	schedules := rg.Group("/schedules")
	{
		schedules.POST("", h.createSchedule)
		schedules.GET("/:id", h.getSchedule)
		schedules.GET("", h.listSchedules)
		schedules.PUT("/:id", h.updateSchedule)
		schedules.DELETE("/:id", h.deleteSchedule)
	}
}

// createSchedule godoc
// @Summary Create a schedule entry
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body dto.CreateScheduleRequest true "Schedule details"
// @Success 201 {object} domain.Schedule
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /schedules [post]
func (h *scheduleHandler) createSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create schedule")
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// getSchedule godoc
// @Summary Get a schedule entry by ID
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} domain.Schedule
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (h *scheduleHandler) getSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	schedule, err := h.scheduleService.GetScheduleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// listSchedules godoc
// @Summary List schedule entries
// @Tags schedules
// @Produce json
// @Success 200 {object} dto.ListSchedulesResponse
// @Security BearerAuth
// @Router /schedules [get]
func (h *scheduleHandler) listSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := pageParams(c)
	schedules, err := h.scheduleService.ListSchedules(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list schedules")
		return
	}
	c.JSON(http.StatusOK, dto.ListSchedulesResponse{Schedules: schedules})
}

// updateSchedule godoc
// @Summary Update a schedule entry
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param schedule body dto.UpdateScheduleRequest true "Fields to update"
// @Success 200 {object} domain.Schedule
// @Security BearerAuth
// @Router /schedules/{id} [put]
func (h *scheduleHandler) updateSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.UpdateSchedule(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// deleteSchedule godoc
// @Summary Delete a schedule entry
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *scheduleHandler) deleteSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}
	if err := h.scheduleService.DeleteSchedule(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete schedule")
		return
	}
	c.Status(http.StatusNoContent)
}
