package services

import (
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/platform/config"
	"github.com/parishworks/parish_management_app/internal/platform/events"
	"github.com/parishworks/parish_management_app/internal/repositories/database/pgsql"
)

// NewServiceContainer wires every service over the repository container.
func NewServiceContainer(repos *pgsql.RepositoryContainer, cfg *config.Config, publisher events.Publisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.User),
		Token:        NewTokenService(cfg),
		GoogleOAuth:  NewGoogleOAuthService(cfg),
		Account:      NewAccountService(repos.Account, repos.User),
		Category:     NewCategoryService(repos.Category, repos.User),
		Project:      NewProjectService(repos.Project, repos.User),
		Transaction:  NewTransactionService(repos.Transaction, repos.Account, repos.Category, repos.User, publisher),
		Reporting:    NewReportingService(repos.Reporting),
		Member:       NewMemberService(repos.Member, repos.User),
		Task:         NewTaskService(repos.Task, repos.Member, repos.User),
		Schedule:     NewScheduleService(repos.Schedule, repos.Member, repos.User),
		Inventory:    NewInventoryService(repos.Inventory, repos.User),
		Announcement: NewAnnouncementService(repos.Announcement, repos.User, publisher),
		Course:       NewCourseService(repos.Course, repos.User),
	}
}
