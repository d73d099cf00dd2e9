package service

import (
	"testing"

	"github.com/hakwonlab/acadpanel/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentCrud(t *testing.T) {
	setupTest(t)

	studentService := StudentService{}

	student, err := studentService.AddStudent(1, &StudentForm{
		Name:   "Kim Minji",
		Grade:  "middle-2",
		School: "Daechi Middle School",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StudentActive, student.Status)
	assert.NotEmpty(t, student.CheckinCode)

	got, err := studentService.GetStudent(1, student.Id)
	require.NoError(t, err)
	assert.Equal(t, "Kim Minji", got.Name)

	updated, err := studentService.UpdateStudent(1, student.Id, &StudentForm{
		Name:  "Kim Minji",
		Grade: "middle-3",
	})
	require.NoError(t, err)
	assert.Equal(t, "middle-3", updated.Grade)

	students, err := studentService.GetStudents(1, StudentFilter{Grade: "middle-3"})
	require.NoError(t, err)
	assert.Len(t, students, 1)

	require.NoError(t, studentService.DeleteStudent(1, student.Id))
	_, err = studentService.GetStudent(1, student.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentCrossOrgIsolation(t *testing.T) {
	setupTest(t)
	otherOrg := seedOrg(t, "rival-owner")

	studentId := seedStudent(t, 1, "Lee Junho")

	studentService := StudentService{}

	// A foreign id is indistinguishable from a missing one.
	_, err := studentService.GetStudent(otherOrg, studentId)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = studentService.UpdateStudent(otherOrg, studentId, &StudentForm{Name: "Hijacked"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = studentService.DeleteStudent(otherOrg, studentId)
	assert.ErrorIs(t, err, ErrNotFound)

	// The record is untouched in its own org.
	got, err := studentService.GetStudent(1, studentId)
	require.NoError(t, err)
	assert.Equal(t, "Lee Junho", got.Name)
}

func TestStudentValidation(t *testing.T) {
	setupTest(t)

	studentService := StudentService{}

	_, err := studentService.AddStudent(1, &StudentForm{Name: "K"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")

	_, err = studentService.AddStudent(1, &StudentForm{Name: "Kim Minji", Status: "expelled"})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "status")
}
