package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
)

type ScheduleForm struct {
	ClassId   int    `json:"classId" form:"classId" validate:"required,min=1"`
	RoomId    int    `json:"roomId" form:"roomId" validate:"omitempty,min=1"`
	DayOfWeek int    `json:"dayOfWeek" form:"dayOfWeek" validate:"min=0,max=6"`
	StartTime string `json:"startTime" form:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" form:"endTime" validate:"required,datetime=15:04"`
}

type ScheduleService struct{}

func (s *ScheduleService) GetSchedules(orgId int, classId int, dayOfWeek int) ([]model.Schedule, error) {
	db := database.GetDB()
	query := db.Model(model.Schedule{}).
		Where("org_id = ?", orgId).
		Order("day_of_week asc, start_time asc")
	if classId > 0 {
		query = query.Where("class_id = ?", classId)
	}
	if dayOfWeek >= 0 {
		query = query.Where("day_of_week = ?", dayOfWeek)
	}
	var schedules []model.Schedule
	err := query.Find(&schedules).Error
	return schedules, err
}

func (s *ScheduleService) GetSchedule(orgId int, id int) (*model.Schedule, error) {
	db := database.GetDB()
	schedule := &model.Schedule{}
	err := db.Model(model.Schedule{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(schedule).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) AddSchedule(orgId int, form *ScheduleForm) (*model.Schedule, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if form.EndTime <= form.StartTime {
		return nil, newFieldError("endTime", "must be after startTime")
	}
	if err := s.checkOverlap(orgId, 0, form); err != nil {
		return nil, err
	}
	schedule := &model.Schedule{
		OrgId:     orgId,
		ClassId:   form.ClassId,
		RoomId:    form.RoomId,
		DayOfWeek: form.DayOfWeek,
		StartTime: form.StartTime,
		EndTime:   form.EndTime,
	}
	return schedule, database.GetDB().Create(schedule).Error
}

func (s *ScheduleService) UpdateSchedule(orgId int, id int, form *ScheduleForm) (*model.Schedule, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if form.EndTime <= form.StartTime {
		return nil, newFieldError("endTime", "must be after startTime")
	}
	schedule, err := s.GetSchedule(orgId, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOverlap(orgId, schedule.Id, form); err != nil {
		return nil, err
	}
	schedule.ClassId = form.ClassId
	schedule.RoomId = form.RoomId
	schedule.DayOfWeek = form.DayOfWeek
	schedule.StartTime = form.StartTime
	schedule.EndTime = form.EndTime
	return schedule, database.GetDB().Save(schedule).Error
}

func (s *ScheduleService) DeleteSchedule(orgId int, id int) error {
	schedule, err := s.GetSchedule(orgId, id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Schedule{}, schedule.Id).Error
}

// checkOverlap rejects a slot whose room is already booked for an
// intersecting time range on the same weekday.
func (s *ScheduleService) checkOverlap(orgId int, excludeId int, form *ScheduleForm) error {
	if form.RoomId == 0 {
		return nil
	}
	db := database.GetDB()
	var count int64
	query := db.Model(model.Schedule{}).
		Where("org_id = ? AND room_id = ? AND day_of_week = ?", orgId, form.RoomId, form.DayOfWeek).
		Where("start_time < ? AND end_time > ?", form.EndTime, form.StartTime)
	if excludeId > 0 {
		query = query.Where("id != ?", excludeId)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	return nil
}
