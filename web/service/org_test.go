package service

import (
	"testing"

	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/web/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesOrgWithOwner(t *testing.T) {
	setupTest(t)

	orgService := OrgService{}
	org, owner, err := orgService.Register(&RegisterForm{
		Username: "director-park",
		Password: "secret-password",
		Name:     "Park Director",
		OrgName:  "Gangnam Math Academy",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleOwner, owner.Role)
	assert.Equal(t, org.Id, owner.OrgId)
	assert.Equal(t, owner.Id, org.OwnerId)

	// A new org starts from the factory permission table.
	permissionService := PermissionService{}
	table, err := permissionService.GetTable(org.Id)
	require.NoError(t, err)
	assert.Equal(t, access.Defaults(), table)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupTest(t)

	orgService := OrgService{}
	_, _, err := orgService.Register(&RegisterForm{
		Username: "admin",
		Password: "secret-password",
		Name:     "Copycat",
		OrgName:  "Copy Academy",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateSettings(t *testing.T) {
	setupTest(t)

	orgService := OrgService{}
	org, err := orgService.UpdateSettings(1, &OrgSettingsForm{
		Name:     "Renamed Academy",
		Settings: `{"theme":"dark"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Academy", org.Name)
	assert.JSONEq(t, `{"theme":"dark"}`, org.Settings)
}
