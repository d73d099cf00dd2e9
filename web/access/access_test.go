package access

import (
	"testing"

	"github.com/hakwonlab/acadpanel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessPageOwnerBypass(t *testing.T) {
	// Owner passes even when the table has no entry at all.
	empty := Table{}
	for _, page := range Pages {
		assert.True(t, CanAccessPage(empty, page, model.RoleOwner))
	}
}

func TestCanAccessPageFailsClosed(t *testing.T) {
	empty := Table{}
	assert.False(t, CanAccessPage(empty, PageStudents, model.RoleStaff))
	assert.False(t, CanAccessPage(empty, PageStudents, model.RoleTeacher))
	assert.False(t, CanAccessPage(empty, "no-such-page", model.RoleStaff))
}

func TestCanAccessPageReadsStoredFlags(t *testing.T) {
	table := Table{
		PageBilling: {Staff: true, Teacher: false},
	}
	assert.True(t, CanAccessPage(table, PageBilling, model.RoleStaff))
	assert.False(t, CanAccessPage(table, PageBilling, model.RoleTeacher))
}

func TestManagerGetsNoViewBypass(t *testing.T) {
	// Manager can delete records but page views still require a stored
	// entry, and no manager flag is ever stored.
	table := Table{
		PageStudents: {Staff: true, Teacher: true},
	}
	assert.False(t, CanAccessPage(table, PageStudents, model.RoleManager))
	assert.True(t, CanMutate(model.RoleManager))
}

func TestCanMutateIsTotal(t *testing.T) {
	assert.True(t, CanMutate(model.RoleOwner))
	assert.True(t, CanMutate(model.RoleManager))
	assert.False(t, CanMutate(model.RoleTeacher))
	assert.False(t, CanMutate(model.RoleStaff))
	assert.False(t, CanMutate(""))
	assert.False(t, CanMutate("superadmin"))
}

func TestDefaultsCoverEveryPage(t *testing.T) {
	defaults := Defaults()
	for _, page := range Pages {
		_, ok := defaults[page]
		assert.True(t, ok, "page %s has no default entry", page)
	}
	assert.Len(t, defaults, len(Pages))
}

func TestTableSet(t *testing.T) {
	table := Table{}

	table.Set(PageExams, model.RoleStaff, true)
	assert.True(t, CanAccessPage(table, PageExams, model.RoleStaff))
	assert.False(t, CanAccessPage(table, PageExams, model.RoleTeacher))

	table.Set(PageExams, model.RoleStaff, false)
	assert.False(t, CanAccessPage(table, PageExams, model.RoleStaff))

	// Owner and manager flags are never stored.
	table.Set(PageExams, model.RoleOwner, true)
	table.Set(PageExams, model.RoleManager, true)
	assert.Equal(t, Flags{}, table[PageExams])
}
