package repositories

import (
	"context"
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
)

// MemberRepository persists the member directory.
type MemberRepository interface {
	SaveMember(ctx context.Context, member domain.Member) error
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error)
	UpdateMember(ctx context.Context, member domain.Member) error
	DeleteMember(ctx context.Context, memberID string) error
}

// TaskRepository persists ministry tasks.
type TaskRepository interface {
	SaveTask(ctx context.Context, task domain.Task) error
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, limit, offset int) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, taskID string) error
}

// ScheduleRepository persists ministry schedules.
type ScheduleRepository interface {
	SaveSchedule(ctx context.Context, schedule domain.Schedule) error
	FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)
	ListSchedules(ctx context.Context, limit, offset int) ([]domain.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule domain.Schedule) error
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

// InventoryRepository persists inventory items.
type InventoryRepository interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	// AdjustItemQuantity applies the delta in-database and returns the
	// updated item, so concurrent adjustments cannot lose each other.
	AdjustItemQuantity(ctx context.Context, itemID string, delta int, updatedBy string, updatedAt time.Time) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// AnnouncementRepository persists feed announcements.
type AnnouncementRepository interface {
	SaveAnnouncement(ctx context.Context, a domain.Announcement) error
	FindAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context, limit, offset int) ([]domain.Announcement, error)
	UpdateAnnouncement(ctx context.Context, a domain.Announcement) error
	DeleteAnnouncement(ctx context.Context, announcementID string) error
}

// CourseRepository persists learning courses.
type CourseRepository interface {
	SaveCourse(ctx context.Context, course domain.Course) error
	FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error)
	ListCourses(ctx context.Context, limit, offset int) ([]domain.Course, error)
	UpdateCourse(ctx context.Context, course domain.Course) error
	DeleteCourse(ctx context.Context, courseID string) error
}
