package dto

import (
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
)

// CreateScheduleRequest defines the data needed to create a schedule entry.
type CreateScheduleRequest struct {
	Title             string    `json:"title" binding:"required"`
	Ministry          string    `json:"ministry"`
	StartsAt          time.Time `json:"startsAt" binding:"required"`
	EndsAt            time.Time `json:"endsAt" binding:"required"`
	Location          string    `json:"location"`
	AssignedMemberIDs []string  `json:"assignedMemberIDs"`
}

// UpdateScheduleRequest defines the fields that may be changed on a schedule.
type UpdateScheduleRequest struct {
	Title             *string    `json:"title"`
	Ministry          *string    `json:"ministry"`
	StartsAt          *time.Time `json:"startsAt"`
	EndsAt            *time.Time `json:"endsAt"`
	Location          *string    `json:"location"`
	AssignedMemberIDs *[]string  `json:"assignedMemberIDs"`
}

// ListSchedulesResponse wraps the schedule listing.
type ListSchedulesResponse struct {
	Schedules []domain.Schedule `json:"schedules"`
}
