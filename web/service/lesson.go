package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
)

type LessonForm struct {
	ClassId     int    `json:"classId" form:"classId" validate:"omitempty,min=1"`
	TeacherId   int    `json:"teacherId" form:"teacherId" validate:"omitempty,min=1"`
	RoomId      int    `json:"roomId" form:"roomId" validate:"omitempty,min=1"`
	Title       string `json:"title" form:"title" validate:"required,min=2,max=100"`
	Description string `json:"description" form:"description"`
	LessonDate  string `json:"lessonDate" form:"lessonDate" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime" form:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime     string `json:"endTime" form:"endTime" validate:"omitempty,datetime=15:04"`
	Status      string `json:"status" form:"status" validate:"omitempty,oneof=scheduled done cancelled"`
}

type LessonFilter struct {
	ClassId int    `form:"classId"`
	From    string `form:"from"`
	To      string `form:"to"`
	Status  string `form:"status"`
}

type LessonService struct{}

func (s *LessonService) GetLessons(orgId int, filter LessonFilter) ([]model.Lesson, error) {
	db := database.GetDB()
	query := db.Model(model.Lesson{}).
		Where("org_id = ?", orgId).
		Order("lesson_date desc, start_time asc")
	if filter.ClassId > 0 {
		query = query.Where("class_id = ?", filter.ClassId)
	}
	if filter.From != "" {
		query = query.Where("lesson_date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("lesson_date <= ?", filter.To)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var lessons []model.Lesson
	err := query.Find(&lessons).Error
	return lessons, err
}

func (s *LessonService) GetLesson(orgId int, id int) (*model.Lesson, error) {
	db := database.GetDB()
	lesson := &model.Lesson{}
	err := db.Model(model.Lesson{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(lesson).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) AddLesson(orgId int, form *LessonForm) (*model.Lesson, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	status := form.Status
	if status == "" {
		status = "scheduled"
	}
	lesson := &model.Lesson{
		OrgId:       orgId,
		ClassId:     form.ClassId,
		TeacherId:   form.TeacherId,
		RoomId:      form.RoomId,
		Title:       form.Title,
		Description: form.Description,
		LessonDate:  form.LessonDate,
		StartTime:   form.StartTime,
		EndTime:     form.EndTime,
		Status:      status,
	}
	return lesson, database.GetDB().Create(lesson).Error
}

func (s *LessonService) UpdateLesson(orgId int, id int, form *LessonForm) (*model.Lesson, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	lesson, err := s.GetLesson(orgId, id)
	if err != nil {
		return nil, err
	}
	lesson.ClassId = form.ClassId
	lesson.TeacherId = form.TeacherId
	lesson.RoomId = form.RoomId
	lesson.Title = form.Title
	lesson.Description = form.Description
	lesson.LessonDate = form.LessonDate
	lesson.StartTime = form.StartTime
	lesson.EndTime = form.EndTime
	if form.Status != "" {
		lesson.Status = form.Status
	}
	return lesson, database.GetDB().Save(lesson).Error
}

func (s *LessonService) DeleteLesson(orgId int, id int) error {
	lesson, err := s.GetLesson(orgId, id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Lesson{}, lesson.Id).Error
}
