package dto

import (
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
)

// CreateMemberRequest defines the data needed to add a directory member.
type CreateMemberRequest struct {
	Name      string     `json:"name" binding:"required"`
	Email     string     `json:"email" binding:"omitempty,email"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birthDate"`
	Ministry  string     `json:"ministry"`
}

// UpdateMemberRequest defines the fields that may be changed on a member.
type UpdateMemberRequest struct {
	Name      *string    `json:"name"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Phone     *string    `json:"phone"`
	BirthDate *time.Time `json:"birthDate"`
	Ministry  *string    `json:"ministry"`
	IsActive  *bool      `json:"isActive"`
}

// ListMembersResponse wraps the member directory listing.
type ListMembersResponse struct {
	Members []domain.Member `json:"members"`
}
