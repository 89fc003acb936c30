package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/middleware"
)

// taskHandler handles HTTP requests related to ministry tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

// registerTaskRoutes registers routes related to tasks.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := &taskHandler{taskService: taskService}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("/:id", h.getTask)
		tasks.GET("", h.listTasks)
		tasks.PUT("/:id", h.updateTask)
		tasks.POST("/:id/transition", h.transitionTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// createTask godoc
// @Summary Create a ministry task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} domain.Task
// @Security BearerAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, task)
}

// getTask godoc
// @Summary Get a task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} domain.Task
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *taskHandler) getTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	task, err := h.taskService.GetTaskByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// listTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {object} dto.ListTasksResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := pageParams(c)
	tasks, err := h.taskService.ListTasks(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Tasks: tasks})
}

// updateTask godoc
// @Summary Update a task
// @Description Edits task fields. Status changes go through the transition endpoint.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} domain.Task
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *taskHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// transitionTask godoc
// @Summary Move a task through its lifecycle
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param transition body dto.TransitionTaskRequest true "Target status"
// @Success 200 {object} domain.Task
// @Failure 409 {object} map[string]string "Disallowed transition"
// @Security BearerAuth
// @Router /tasks/{id}/transition [post]
func (h *taskHandler) transitionTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransitionTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.taskService.TransitionTask(c.Request.Context(), c.Param("id"), req.Status, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to transition task")
		return
	}
	logger.Info("Task transitioned", slog.String("task_id", task.TaskID), slog.String("status", string(task.Status)))
	c.JSON(http.StatusOK, task)
}

// deleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}
