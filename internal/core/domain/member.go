package domain

import "time"

// Member is an entry of the parish member directory. Members are people of
// the community; they may or may not also be application users.
type Member struct {
	MemberID  string     `json:"memberID"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Ministry  string     `json:"ministry"`
	IsActive  bool       `json:"isActive"`
	AuditFields
}
