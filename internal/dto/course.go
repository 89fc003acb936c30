package dto

import "github.com/parishworks/parish_management_app/internal/core/domain"

// CreateCourseRequest defines the data needed to create a learning course.
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Ministry    string `json:"ministry"`
	IsPublished bool   `json:"isPublished"`
}

// UpdateCourseRequest defines the fields that may be changed on a course.
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Ministry    *string `json:"ministry"`
	IsPublished *bool   `json:"isPublished"`
}

// ListCoursesResponse wraps the course listing.
type ListCoursesResponse struct {
	Courses []domain.Course `json:"courses"`
}
