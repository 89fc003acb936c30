package domain

// Role is the closed set of roles a user can hold in the parish.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleCoordinator Role = "COORDINATOR"
	RoleTreasurer   Role = "TREASURER"
	RoleSecretary   Role = "SECRETARY"
	RoleMember      Role = "MEMBER"
)

// Permission names a capability that a role may or may not hold.
type Permission string

const (
	// PermManageFinance allows creating/updating/deleting financial records.
	PermManageFinance Permission = "MANAGE_FINANCE"
	// PermPostPaidTransaction allows persisting a new transaction directly as
	// PAID. Roles without it have their new transactions forced to
	// PENDING_APPROVAL.
	PermPostPaidTransaction Permission = "POST_PAID_TRANSACTION"
	// PermApproveTransaction allows approving or rejecting pending transactions.
	PermApproveTransaction Permission = "APPROVE_TRANSACTION"
	// PermManageDirectory allows managing the member directory.
	PermManageDirectory Permission = "MANAGE_DIRECTORY"
	// PermManageContent allows managing tasks, schedules, inventory,
	// announcements and courses.
	PermManageContent Permission = "MANAGE_CONTENT"
	// PermManageUsers allows creating application users and changing roles.
	PermManageUsers Permission = "MANAGE_USERS"
)

// rolePermissions is the explicit permission matrix. Absent entries mean the
// role does not hold the permission; there is no inference from role names.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: {
		PermManageFinance:       {},
		PermPostPaidTransaction: {},
		PermApproveTransaction:  {},
		PermManageDirectory:     {},
		PermManageContent:       {},
		PermManageUsers:         {},
	},
	RoleCoordinator: {
		PermManageFinance:       {},
		PermPostPaidTransaction: {},
		PermApproveTransaction:  {},
		PermManageDirectory:     {},
		PermManageContent:       {},
	},
	RoleTreasurer: {
		PermManageFinance: {},
	},
	RoleSecretary: {
		PermManageDirectory: {},
		PermManageContent:   {},
	},
	RoleMember: {},
}

// Has reports whether the role holds the given permission.
func (r Role) Has(p Permission) bool {
	perms, ok := rolePermissions[r]
	if !ok {
		return false
	}
	_, ok = perms[p]
	return ok
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]
	return ok
}
