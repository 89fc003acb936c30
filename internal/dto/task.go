package dto

import (
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
)

// CreateTaskRequest defines the data needed to create a ministry task.
type CreateTaskRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	Ministry         string     `json:"ministry"`
	AssigneeMemberID string     `json:"assigneeMemberID"`
	DueDate          *time.Time `json:"dueDate"`
}

// UpdateTaskRequest defines the fields that may be changed on a task.
// Status changes go through their own endpoint so transitions are validated.
type UpdateTaskRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Ministry         *string    `json:"ministry"`
	AssigneeMemberID *string    `json:"assigneeMemberID"`
	DueDate          *time.Time `json:"dueDate"`
}

// TransitionTaskRequest moves a task to a new status.
type TransitionTaskRequest struct {
	Status domain.TaskStatus `json:"status" binding:"required,oneof=PENDING IN_PROGRESS DONE CANCELLED"`
}

// ListTasksResponse wraps the task listing.
type ListTasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
}
