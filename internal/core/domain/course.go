package domain

// Course is a learning module offered to members (catechesis, formation).
type Course struct {
	CourseID    string `json:"courseID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ministry    string `json:"ministry"`
	IsPublished bool   `json:"isPublished"`
	AuditFields
}
