package dto

import (
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create an application user.
type CreateUserRequest struct {
	Username string      `json:"username" binding:"required,min=3"`
	Password string      `json:"password" binding:"required,min=8"`
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Role     domain.Role `json:"role" binding:"required,oneof=ADMIN COORDINATOR TREASURER SECRETARY MEMBER"`
}

// UpdateUserRequest defines the fields that may be changed on a user.
type UpdateUserRequest struct {
	Name  *string      `json:"name"`
	Email *string      `json:"email" binding:"omitempty,email"`
	Role  *domain.Role `json:"role" binding:"omitempty,oneof=ADMIN COORDINATOR TREASURER SECRETARY MEMBER"`
}

// UserResponse mirrors domain.User for API output, omitting credentials.
type UserResponse struct {
	UserID    string      `json:"userID"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
