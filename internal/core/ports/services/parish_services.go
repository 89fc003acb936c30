package services

import (
	"context"

	"github.com/parishworks/parish_management_app/internal/core/domain"
	"github.com/parishworks/parish_management_app/internal/dto"
)

// MemberSvcFacade exposes the member directory to the transport layer.
type MemberSvcFacade interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorUserID string) (*domain.Member, error)
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, userID string) (*domain.Member, error)
	DeleteMember(ctx context.Context, memberID string, userID string) error
}

// TaskSvcFacade exposes ministry tasks to the transport layer.
type TaskSvcFacade interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error)
	GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, limit, offset int) ([]domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, userID string) (*domain.Task, error)
	TransitionTask(ctx context.Context, taskID string, next domain.TaskStatus, userID string) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string, userID string) error
}

// ScheduleSvcFacade exposes ministry schedules to the transport layer.
type ScheduleSvcFacade interface {
	CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest, creatorUserID string) (*domain.Schedule, error)
	GetScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)
	ListSchedules(ctx context.Context, limit, offset int) ([]domain.Schedule, error)
	UpdateSchedule(ctx context.Context, scheduleID string, req dto.UpdateScheduleRequest, userID string) (*domain.Schedule, error)
	DeleteSchedule(ctx context.Context, scheduleID string, userID string) error
}

// InventorySvcFacade exposes inventory items to the transport layer.
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, creatorUserID string) (*domain.InventoryItem, error)
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateInventoryItemRequest, userID string) (*domain.InventoryItem, error)
	AdjustQuantity(ctx context.Context, itemID string, delta int, userID string) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID string, userID string) error
}

// AnnouncementSvcFacade exposes the announcements feed to the transport layer.
type AnnouncementSvcFacade interface {
	CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest, creatorUserID string) (*domain.Announcement, error)
	GetAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context, limit, offset int) ([]domain.Announcement, error)
	UpdateAnnouncement(ctx context.Context, announcementID string, req dto.UpdateAnnouncementRequest, userID string) (*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, announcementID string, userID string) error
}

// CourseSvcFacade exposes learning courses to the transport layer.
type CourseSvcFacade interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest, creatorUserID string) (*domain.Course, error)
	GetCourseByID(ctx context.Context, courseID string) (*domain.Course, error)
	ListCourses(ctx context.Context, limit, offset int) ([]domain.Course, error)
	UpdateCourse(ctx context.Context, courseID string, req dto.UpdateCourseRequest, userID string) (*domain.Course, error)
	DeleteCourse(ctx context.Context, courseID string, userID string) error
}
