package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
)

// RepositoryContainer bundles every repository implementation behind its port
// interface, all sharing one connection pool.
type RepositoryContainer struct {
	User         portsrepo.UserRepository
	Account      portsrepo.AccountRepository
	Category     portsrepo.CategoryRepository
	Project      portsrepo.ProjectRepository
	Transaction  portsrepo.TransactionRepository
	Reporting    portsrepo.ReportingRepository
	Member       portsrepo.MemberRepository
	Task         portsrepo.TaskRepository
	Schedule     portsrepo.ScheduleRepository
	Inventory    portsrepo.InventoryRepository
	Announcement portsrepo.AnnouncementRepository
	Course       portsrepo.CourseRepository
}

// NewRepositoryContainer builds all PostgreSQL repositories over the pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		User:         newPgxUserRepository(pool),
		Account:      newPgxAccountRepository(pool),
		Category:     newPgxCategoryRepository(pool),
		Project:      newPgxProjectRepository(pool),
		Transaction:  newPgxTransactionRepository(pool),
		Reporting:    newPgxReportingRepository(pool),
		Member:       newPgxMemberRepository(pool),
		Task:         newPgxTaskRepository(pool),
		Schedule:     newPgxScheduleRepository(pool),
		Inventory:    newPgxInventoryRepository(pool),
		Announcement: newPgxAnnouncementRepository(pool),
		Course:       newPgxCourseRepository(pool),
	}
}
