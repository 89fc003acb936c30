package domain

import "time"

// TaskStatus is the lifecycle state of a ministry task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
	TaskCancelled  TaskStatus = "CANCELLED"
)

// Task is a unit of ministry work assigned to a member.
type Task struct {
	TaskID           string     `json:"taskID"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Ministry         string     `json:"ministry"`
	AssigneeMemberID string     `json:"assigneeMemberID"` // optional
	DueDate          *time.Time `json:"dueDate,omitempty"`
	Status           TaskStatus `json:"status"`
	AuditFields
}

// CanTransitionTo reports whether a task status change is allowed.
// Tasks move forward only; any open task may be cancelled.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case TaskPending:
		return next == TaskInProgress || next == TaskDone || next == TaskCancelled
	case TaskInProgress:
		return next == TaskDone || next == TaskCancelled
	default:
		return false
	}
}
