package service

import (
	"testing"

	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollRespectsCapacity(t *testing.T) {
	setupTest(t)

	classService := ClassService{}
	class, err := classService.AddClass(1, &ClassForm{
		Name:     "Math A",
		Subject:  "math",
		Capacity: 1,
	})
	require.NoError(t, err)

	first := seedStudent(t, 1, "Park Seoyeon")
	second := seedStudent(t, 1, "Choi Hana")

	require.NoError(t, classService.Enroll(1, class.Id, first))
	err = classService.Enroll(1, class.Id, second)
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	setupTest(t)

	classService := ClassService{}
	class, err := classService.AddClass(1, &ClassForm{
		Name:     "English B",
		Subject:  "english",
		Capacity: 10,
	})
	require.NoError(t, err)

	studentId := seedStudent(t, 1, "Jang Woojin")

	require.NoError(t, classService.Enroll(1, class.Id, studentId))
	err = classService.Enroll(1, class.Id, studentId)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEnrollRejectsForeignStudent(t *testing.T) {
	setupTest(t)
	otherOrg := seedOrg(t, "enroll-owner")

	classService := ClassService{}
	class, err := classService.AddClass(1, &ClassForm{
		Name:     "Science C",
		Subject:  "science",
		Capacity: 10,
	})
	require.NoError(t, err)

	foreignStudent := seedStudent(t, otherOrg, "Outside Kid")

	err = classService.Enroll(1, class.Id, foreignStudent)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRosterAndUnenroll(t *testing.T) {
	setupTest(t)

	classService := ClassService{}
	class, err := classService.AddClass(1, &ClassForm{
		Name:     "Korean D",
		Subject:  "korean",
		Capacity: 10,
	})
	require.NoError(t, err)

	studentId := seedStudent(t, 1, "Yoon Dahye")
	require.NoError(t, classService.Enroll(1, class.Id, studentId))

	roster, err := classService.GetRoster(1, class.Id)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Yoon Dahye", roster[0].Name)

	require.NoError(t, classService.Unenroll(1, class.Id, studentId))
	err = classService.Unenroll(1, class.Id, studentId)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteClassRemovesEnrollments(t *testing.T) {
	setupTest(t)

	classService := ClassService{}
	class, err := classService.AddClass(1, &ClassForm{
		Name:     "History E",
		Subject:  "history",
		Capacity: 10,
	})
	require.NoError(t, err)

	studentId := seedStudent(t, 1, "Han Jimin")
	require.NoError(t, classService.Enroll(1, class.Id, studentId))

	require.NoError(t, classService.DeleteClass(1, class.Id))

	var count int64
	database.GetDB().Model(model.Enrollment{}).Where("class_id = ?", class.Id).Count(&count)
	assert.Zero(t, count)
}
