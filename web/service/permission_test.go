package service

import (
	"testing"

	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/web/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionTableSeedsDefaults(t *testing.T) {
	setupTest(t)

	permissionService := PermissionService{}
	table, err := permissionService.GetTable(1)
	require.NoError(t, err)
	assert.Equal(t, access.Defaults(), table)
}

func TestUpdatePagePermission(t *testing.T) {
	setupTest(t)

	permissionService := PermissionService{}

	err := permissionService.UpdatePagePermission(1, access.PageBilling, model.RoleStaff, true)
	require.NoError(t, err)

	ok, err := permissionService.CanAccessPage(1, access.PageBilling, model.RoleStaff)
	require.NoError(t, err)
	assert.True(t, ok)

	// Teacher flag on the same page is untouched.
	ok, err = permissionService.CanAccessPage(1, access.PageBilling, model.RoleTeacher)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResetPermissionsRestoresDefaults(t *testing.T) {
	setupTest(t)

	permissionService := PermissionService{}

	require.NoError(t, permissionService.UpdatePagePermission(1, access.PageStudents, model.RoleStaff, false))
	require.NoError(t, permissionService.ResetPermissions(1))

	table, err := permissionService.GetTable(1)
	require.NoError(t, err)
	assert.Equal(t, access.Defaults(), table)
}

func TestPermissionsAreScopedPerOrg(t *testing.T) {
	setupTest(t)
	otherOrg := seedOrg(t, "second-owner")

	permissionService := PermissionService{}

	require.NoError(t, permissionService.UpdatePagePermission(1, access.PageExams, model.RoleTeacher, false))

	ok, err := permissionService.CanAccessPage(otherOrg, access.PageExams, model.RoleTeacher)
	require.NoError(t, err)
	assert.True(t, ok, "permission change in one org must not leak into another")
}

func TestOwnerAlwaysPassesStoredTable(t *testing.T) {
	setupTest(t)

	permissionService := PermissionService{}

	require.NoError(t, permissionService.UpdatePagePermission(1, access.PageSettings, model.RoleStaff, false))

	ok, err := permissionService.CanAccessPage(1, access.PageSettings, model.RoleOwner)
	require.NoError(t, err)
	assert.True(t, ok)
}
