package domain

import (
	"database/sql"
	"time"
)

// User represents an application user who can sign in.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// Refresh token fields; only the hash is ever stored.
	RefreshTokenHash       sql.NullString `json:"-"`
	RefreshTokenExpiryTime sql.NullTime   `json:"-"`
}
