package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parishworks/parish_management_app/internal/core/domain"
)

func TestRolePermissions(t *testing.T) {
	// Admin holds everything.
	for _, p := range []domain.Permission{
		domain.PermManageFinance,
		domain.PermPostPaidTransaction,
		domain.PermApproveTransaction,
		domain.PermManageDirectory,
		domain.PermManageContent,
		domain.PermManageUsers,
	} {
		assert.True(t, domain.RoleAdmin.Has(p), "admin must hold %s", p)
	}

	// Coordinator holds everything except user management.
	assert.True(t, domain.RoleCoordinator.Has(domain.PermApproveTransaction))
	assert.True(t, domain.RoleCoordinator.Has(domain.PermPostPaidTransaction))
	assert.False(t, domain.RoleCoordinator.Has(domain.PermManageUsers))

	// Treasurer manages finance but cannot post paid entries or approve;
	// their paid transactions are forced through the approval queue.
	assert.True(t, domain.RoleTreasurer.Has(domain.PermManageFinance))
	assert.False(t, domain.RoleTreasurer.Has(domain.PermPostPaidTransaction))
	assert.False(t, domain.RoleTreasurer.Has(domain.PermApproveTransaction))

	// Secretary handles directory and content, not money.
	assert.True(t, domain.RoleSecretary.Has(domain.PermManageDirectory))
	assert.True(t, domain.RoleSecretary.Has(domain.PermManageContent))
	assert.False(t, domain.RoleSecretary.Has(domain.PermManageFinance))

	// Plain members hold nothing.
	assert.False(t, domain.RoleMember.Has(domain.PermManageFinance))
	assert.False(t, domain.RoleMember.Has(domain.PermManageContent))
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, domain.RoleAdmin.IsValid())
	assert.True(t, domain.RoleMember.IsValid())
	assert.False(t, domain.Role("SUPERUSER").IsValid())
	assert.False(t, domain.Role("").IsValid())
}
