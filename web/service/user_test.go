package service

import (
	"testing"

	"github.com/hakwonlab/acadpanel/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAccountUsernameTaken(t *testing.T) {
	setupTest(t)

	userService := UserService{}

	// "admin" is seeded on a fresh database.
	_, err := userService.AddAccount(1, &AccountForm{
		Username: "admin",
		Password: "whatever-123",
		Name:     "Duplicate",
		Role:     "staff",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAccountLifecycle(t *testing.T) {
	setupTest(t)

	userService := UserService{}

	account, err := userService.AddAccount(1, &AccountForm{
		Username: "teacher-kim",
		Password: "secret-password",
		Name:     "Kim Teacher",
		Role:     "teacher",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleTeacher, account.Role)
	assert.NotEqual(t, "secret-password", account.Password, "password must be stored hashed")

	updated, err := userService.UpdateAccount(1, account.Id, &AccountForm{
		Username: "teacher-kim",
		Name:     "Kim Teacher",
		Role:     "manager",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleManager, updated.Role)

	require.NoError(t, userService.DeleteAccount(1, account.Id))
	err = userService.DeleteAccount(1, account.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLastOwnerCannotBeDeleted(t *testing.T) {
	setupTest(t)

	userService := UserService{}
	owner, err := userService.GetFirstUser()
	require.NoError(t, err)

	err = userService.DeleteAccount(1, owner.Id)
	assert.ErrorIs(t, err, ErrForbidden)

	// With a second owner present the first one may go.
	_, err = userService.AddAccount(1, &AccountForm{
		Username: "second-owner",
		Password: "secret-password",
		Name:     "Second Owner",
		Role:     "owner",
	})
	require.NoError(t, err)
	assert.NoError(t, userService.DeleteAccount(1, owner.Id))
}

func TestCheckUser(t *testing.T) {
	setupTest(t)

	userService := UserService{}

	user := userService.CheckUser("admin", "admin", "")
	require.NotNil(t, user)
	assert.Equal(t, model.RoleOwner, user.Role)

	assert.Nil(t, userService.CheckUser("admin", "wrong", ""))
	assert.Nil(t, userService.CheckUser("ghost", "admin", ""))
}

func TestAccountsAreScopedPerOrg(t *testing.T) {
	setupTest(t)
	otherOrg := seedOrg(t, "scoped-owner")

	userService := UserService{}

	accounts, err := userService.GetAccounts(1)
	require.NoError(t, err)
	for _, account := range accounts {
		assert.Equal(t, 1, account.OrgId)
	}

	// Updating a foreign account reads as missing.
	foreign, err := userService.GetAccounts(otherOrg)
	require.NoError(t, err)
	require.NotEmpty(t, foreign)
	_, err = userService.UpdateAccount(1, foreign[0].Id, &AccountForm{
		Username: "hijack",
		Name:     "Hijack",
		Role:     "staff",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
