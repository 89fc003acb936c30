package domain

import "time"

// Schedule is a ministry event (mass, rehearsal, meeting) with the members
// assigned to serve in it.
type Schedule struct {
	ScheduleID        string    `json:"scheduleID"`
	Title             string    `json:"title"`
	Ministry          string    `json:"ministry"`
	StartsAt          time.Time `json:"startsAt"`
	EndsAt            time.Time `json:"endsAt"`
	Location          string    `json:"location"`
	AssignedMemberIDs []string  `json:"assignedMemberIDs"`
	AuditFields
}
