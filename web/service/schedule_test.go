package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClassAndRoom(t *testing.T) (classId int, roomId int) {
	t.Helper()
	classService := ClassService{}
	class, err := classService.AddClass(1, &ClassForm{
		Name:     "Math Intensive",
		Subject:  "math",
		Capacity: 20,
	})
	require.NoError(t, err)

	roomService := RoomService{}
	room, err := roomService.AddRoom(1, &RoomForm{Name: "Room 101", Capacity: 20})
	require.NoError(t, err)
	return class.Id, room.Id
}

func TestScheduleOverlapConflicts(t *testing.T) {
	setupTest(t)
	classId, roomId := seedClassAndRoom(t)

	scheduleService := ScheduleService{}

	_, err := scheduleService.AddSchedule(1, &ScheduleForm{
		ClassId:   classId,
		RoomId:    roomId,
		DayOfWeek: 1,
		StartTime: "14:00",
		EndTime:   "16:00",
	})
	require.NoError(t, err)

	// Overlapping slot in the same room on the same day.
	_, err = scheduleService.AddSchedule(1, &ScheduleForm{
		ClassId:   classId,
		RoomId:    roomId,
		DayOfWeek: 1,
		StartTime: "15:00",
		EndTime:   "17:00",
	})
	assert.ErrorIs(t, err, ErrConflict)

	// Back to back is not an overlap.
	_, err = scheduleService.AddSchedule(1, &ScheduleForm{
		ClassId:   classId,
		RoomId:    roomId,
		DayOfWeek: 1,
		StartTime: "16:00",
		EndTime:   "18:00",
	})
	assert.NoError(t, err)

	// Same slot on another day is fine.
	_, err = scheduleService.AddSchedule(1, &ScheduleForm{
		ClassId:   classId,
		RoomId:    roomId,
		DayOfWeek: 2,
		StartTime: "15:00",
		EndTime:   "17:00",
	})
	assert.NoError(t, err)
}

func TestScheduleRejectsInvertedTimes(t *testing.T) {
	setupTest(t)
	classId, roomId := seedClassAndRoom(t)

	scheduleService := ScheduleService{}

	_, err := scheduleService.AddSchedule(1, &ScheduleForm{
		ClassId:   classId,
		RoomId:    roomId,
		DayOfWeek: 1,
		StartTime: "16:00",
		EndTime:   "14:00",
	})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateScheduleIgnoresOwnSlot(t *testing.T) {
	setupTest(t)
	classId, roomId := seedClassAndRoom(t)

	scheduleService := ScheduleService{}

	created, err := scheduleService.AddSchedule(1, &ScheduleForm{
		ClassId:   classId,
		RoomId:    roomId,
		DayOfWeek: 3,
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	// Shifting a slot within itself must not collide with itself.
	_, err = scheduleService.UpdateSchedule(1, created.Id, &ScheduleForm{
		ClassId:   classId,
		RoomId:    roomId,
		DayOfWeek: 3,
		StartTime: "10:30",
		EndTime:   "12:30",
	})
	assert.NoError(t, err)
}
