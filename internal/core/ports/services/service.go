package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	User         UserSvcFacade
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	Account      AccountSvcFacade
	Category     CategorySvcFacade
	Project      ProjectSvcFacade
	Transaction  TransactionSvcFacade
	Reporting    ReportingSvcFacade
	Member       MemberSvcFacade
	Task         TaskSvcFacade
	Schedule     ScheduleSvcFacade
	Inventory    InventorySvcFacade
	Announcement AnnouncementSvcFacade
	Course       CourseSvcFacade
}
