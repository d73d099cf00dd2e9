// Package access decides who may view which dashboard page and who may run
// destructive operations. All decisions are pure functions over a per-organization
// permission table; a missing entry always denies.
package access

import "github.com/hakwonlab/acadpanel/database/model"

// Page identifies one protected dashboard section.
type Page string

const (
	PageOverview      Page = "overview"
	PageStudents      Page = "students"
	PageClasses       Page = "classes"
	PageAttendance    Page = "attendance"
	PageConsultations Page = "consultations"
	PageExams         Page = "exams"
	PageHomework      Page = "homework"
	PageLessons       Page = "lessons"
	PageBilling       Page = "billing"
	PageSchedule      Page = "schedule"
	PageRooms         Page = "rooms"
	PageSeats         Page = "seats"
	PageExpenses      Page = "expenses"
	PageSettings      Page = "settings"
)

// Pages lists every registered page, in sidebar order.
var Pages = []Page{
	PageOverview,
	PageStudents,
	PageClasses,
	PageAttendance,
	PageConsultations,
	PageExams,
	PageHomework,
	PageLessons,
	PageBilling,
	PageSchedule,
	PageRooms,
	PageSeats,
	PageExpenses,
	PageSettings,
}

// Flags holds the stored view permissions for one page. Owner is implicit
// and never stored.
type Flags struct {
	Staff   bool `json:"staff"`
	Teacher bool `json:"teacher"`
}

// Table maps each page to its flags. Absence of a key means no access.
type Table map[Page]Flags

// Defaults returns a fresh copy of the factory permission table: day-to-day
// pages are open to staff and teachers, money and settings pages are not.
func Defaults() Table {
	return Table{
		PageOverview:      {Staff: true, Teacher: true},
		PageStudents:      {Staff: true, Teacher: true},
		PageClasses:       {Staff: true, Teacher: true},
		PageAttendance:    {Staff: true, Teacher: true},
		PageConsultations: {Staff: false, Teacher: true},
		PageExams:         {Staff: false, Teacher: true},
		PageHomework:      {Staff: true, Teacher: true},
		PageLessons:       {Staff: true, Teacher: true},
		PageBilling:       {Staff: false, Teacher: false},
		PageSchedule:      {Staff: true, Teacher: true},
		PageRooms:         {Staff: true, Teacher: false},
		PageSeats:         {Staff: true, Teacher: false},
		PageExpenses:      {Staff: false, Teacher: false},
		PageSettings:      {Staff: false, Teacher: false},
	}
}

// CanAccessPage reports whether role may view page under table t.
//
// Owner always passes. Staff and teacher read their stored flag, failing
// closed when the page has no entry. Every other role is denied here;
// manager in particular gets no view bypass even though CanMutate grants it
// delete rights. That matches the shipped behavior and is pinned by tests.
func CanAccessPage(t Table, page Page, role model.Role) bool {
	if role == model.RoleOwner {
		return true
	}

	flags, ok := t[page]
	if !ok {
		return false
	}

	switch role {
	case model.RoleStaff:
		return flags.Staff
	case model.RoleTeacher:
		return flags.Teacher
	}
	return false
}

// CanMutate reports whether role may run destructive operations (deletes,
// settings and permission writes). Total over arbitrary input.
func CanMutate(role model.Role) bool {
	return role == model.RoleOwner || role == model.RoleManager
}

// Set updates one role flag for one page, creating the entry when absent.
// Only staff and teacher flags exist; other roles are ignored.
func (t Table) Set(page Page, role model.Role, hasAccess bool) {
	flags := t[page]
	switch role {
	case model.RoleStaff:
		flags.Staff = hasAccess
	case model.RoleTeacher:
		flags.Teacher = hasAccess
	default:
		return
	}
	t[page] = flags
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for page, flags := range t {
		out[page] = flags
	}
	return out
}

// ValidPage reports whether p names a registered page.
func ValidPage(p Page) bool {
	for _, page := range Pages {
		if page == p {
			return true
		}
	}
	return false
}
