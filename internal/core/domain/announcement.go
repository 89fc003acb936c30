package domain

// Announcement is a feed post shown to the community.
type Announcement struct {
	AnnouncementID string `json:"announcementID"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	Ministry       string `json:"ministry"` // empty means parish-wide
	IsPublished    bool   `json:"isPublished"`
	AuditFields
}
