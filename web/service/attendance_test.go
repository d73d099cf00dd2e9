package service

import (
	"testing"
	"time"

	"github.com/hakwonlab/acadpanel/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceDuplicateDateConflicts(t *testing.T) {
	setupTest(t)

	attendanceService := AttendanceService{}
	studentId := seedStudent(t, 1, "Seo Yuna")

	form := &AttendanceForm{
		StudentId: studentId,
		Date:      "2026-03-02",
		Status:    "present",
	}
	_, err := attendanceService.AddRecord(1, form)
	require.NoError(t, err)

	_, err = attendanceService.AddRecord(1, form)
	assert.ErrorIs(t, err, ErrConflict)

	// A different day is fine.
	form.Date = "2026-03-03"
	_, err = attendanceService.AddRecord(1, form)
	assert.NoError(t, err)
}

func TestAttendanceRejectsForeignStudent(t *testing.T) {
	setupTest(t)
	otherOrg := seedOrg(t, "attendance-owner")

	attendanceService := AttendanceService{}
	foreignStudent := seedStudent(t, otherOrg, "Outside Kid")

	_, err := attendanceService.AddRecord(1, &AttendanceForm{
		StudentId: foreignStudent,
		Date:      "2026-03-02",
		Status:    "present",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// Updates cannot repoint a record at another org's student either.
	ownStudent := seedStudent(t, 1, "Lim Dohyun")
	record, err := attendanceService.AddRecord(1, &AttendanceForm{
		StudentId: ownStudent,
		Date:      "2026-03-02",
		Status:    "present",
	})
	require.NoError(t, err)

	_, err = attendanceService.UpdateRecord(1, record.Id, &AttendanceForm{
		StudentId: foreignStudent,
		Date:      "2026-03-02",
		Status:    "absent",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	kept, err := attendanceService.GetRecord(1, record.Id)
	require.NoError(t, err)
	assert.Equal(t, ownStudent, kept.StudentId)
}

func TestAttendanceFilters(t *testing.T) {
	setupTest(t)

	attendanceService := AttendanceService{}
	studentId := seedStudent(t, 1, "Moon Haeun")

	for _, rec := range []struct{ date, status string }{
		{"2026-03-02", "present"},
		{"2026-03-03", "late"},
		{"2026-03-04", "absent"},
	} {
		_, err := attendanceService.AddRecord(1, &AttendanceForm{
			StudentId: studentId,
			Date:      rec.date,
			Status:    rec.status,
		})
		require.NoError(t, err)
	}

	records, err := attendanceService.GetRecords(1, AttendanceFilter{Status: "late"})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = attendanceService.GetRecords(1, AttendanceFilter{From: "2026-03-03", To: "2026-03-04"})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCheckinByCode(t *testing.T) {
	setupTest(t)

	studentService := StudentService{}
	attendanceService := AttendanceService{}

	student, err := studentService.AddStudent(1, &StudentForm{Name: "Baek Siwoo"})
	require.NoError(t, err)

	got, err := attendanceService.CheckinByCode(student.CheckinCode)
	require.NoError(t, err)
	assert.Equal(t, student.Id, got.Id)

	// Today's record exists with status present.
	settingService := SettingService{}
	loc, err := settingService.GetTimeLocation()
	require.NoError(t, err)
	today := time.Now().In(loc).Format("2006-01-02")

	records, err := attendanceService.GetRecords(1, AttendanceFilter{StudentId: student.Id, Date: today})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.AttendancePresent, records[0].Status)

	// Checking in twice on the same day conflicts.
	_, err = attendanceService.CheckinByCode(student.CheckinCode)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCheckinUnknownCode(t *testing.T) {
	setupTest(t)

	attendanceService := AttendanceService{}
	_, err := attendanceService.CheckinByCode("no-such-code")
	assert.ErrorIs(t, err, ErrNotFound)
}
