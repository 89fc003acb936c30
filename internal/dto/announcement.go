package dto

import "github.com/parishworks/parish_management_app/internal/core/domain"

// CreateAnnouncementRequest defines the data needed to post an announcement.
type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body" binding:"required"`
	Ministry    string `json:"ministry"`
	IsPublished bool   `json:"isPublished"`
}

// UpdateAnnouncementRequest defines the fields that may be changed on a post.
type UpdateAnnouncementRequest struct {
	Title       *string `json:"title"`
	Body        *string `json:"body"`
	Ministry    *string `json:"ministry"`
	IsPublished *bool   `json:"isPublished"`
}

// ListAnnouncementsResponse wraps the feed listing.
type ListAnnouncementsResponse struct {
	Announcements []domain.Announcement `json:"announcements"`
}
