package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/middleware"
)

// courseHandler handles HTTP requests for formation courses.
type courseHandler struct {
	courseService portssvc.CourseSvcFacade
}

// registerCourseRoutes registers routes related to courses.
func registerCourseRoutes(rg *gin.RouterGroup, courseService portssvc.CourseSvcFacade) {
	h := &courseHandler{courseService: courseService}

	courses := rg.Group("/courses")
	{
		courses.POST("", h.createCourse)
		courses.GET("/:id", h.getCourse)
		courses.GET("", h.listCourses)
		courses.PUT("/:id", h.updateCourse)
		courses.DELETE("/:id", h.deleteCourse)
	}
}

// createCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CreateCourseRequest true "Course details"
// @Success 201 {object} domain.Course
// @Security BearerAuth
// @Router /courses [post]
func (h *courseHandler) createCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	course, err := h.courseService.CreateCourse(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create course")
		return
	}
	c.JSON(http.StatusCreated, course)
}

// getCourse godoc
// @Summary Get a course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} domain.Course
// @Security BearerAuth
// @Router /courses/{id} [get]
func (h *courseHandler) getCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	course, err := h.courseService.GetCourseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// listCourses godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.ListCoursesResponse
// @Security BearerAuth
// @Router /courses [get]
func (h *courseHandler) listCourses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := pageParams(c)
	courses, err := h.courseService.ListCourses(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list courses")
		return
	}
	c.JSON(http.StatusOK, dto.ListCoursesResponse{Courses: courses})
}

// updateCourse godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param course body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} domain.Course
// @Security BearerAuth
// @Router /courses/{id} [put]
func (h *courseHandler) updateCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	course, err := h.courseService.UpdateCourse(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// deleteCourse godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /courses/{id} [delete]
func (h *courseHandler) deleteCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}
	if err := h.courseService.DeleteCourse(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete course")
		return
	}
	c.Status(http.StatusNoContent)
}
