package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
)

type HomeworkForm struct {
	ClassId     int    `json:"classId" form:"classId" validate:"omitempty,min=1"`
	TeacherId   int    `json:"teacherId" form:"teacherId" validate:"omitempty,min=1"`
	Title       string `json:"title" form:"title" validate:"required,min=2,max=100"`
	Description string `json:"description" form:"description"`
	DueDate     string `json:"dueDate" form:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status" form:"status" validate:"omitempty,oneof=active closed"`
}

type HomeworkService struct{}

func (s *HomeworkService) GetHomeworks(orgId int, classId int, status string) ([]model.Homework, error) {
	db := database.GetDB()
	query := db.Model(model.Homework{}).
		Where("org_id = ?", orgId).
		Order("due_date desc")
	if classId > 0 {
		query = query.Where("class_id = ?", classId)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var homeworks []model.Homework
	err := query.Find(&homeworks).Error
	return homeworks, err
}

func (s *HomeworkService) GetHomework(orgId int, id int) (*model.Homework, error) {
	db := database.GetDB()
	homework := &model.Homework{}
	err := db.Model(model.Homework{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(homework).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return homework, nil
}

func (s *HomeworkService) AddHomework(orgId int, form *HomeworkForm) (*model.Homework, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	status := form.Status
	if status == "" {
		status = "active"
	}
	homework := &model.Homework{
		OrgId:       orgId,
		ClassId:     form.ClassId,
		TeacherId:   form.TeacherId,
		Title:       form.Title,
		Description: form.Description,
		DueDate:     form.DueDate,
		Status:      status,
	}
	return homework, database.GetDB().Create(homework).Error
}

func (s *HomeworkService) UpdateHomework(orgId int, id int, form *HomeworkForm) (*model.Homework, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	homework, err := s.GetHomework(orgId, id)
	if err != nil {
		return nil, err
	}
	homework.ClassId = form.ClassId
	homework.TeacherId = form.TeacherId
	homework.Title = form.Title
	homework.Description = form.Description
	homework.DueDate = form.DueDate
	if form.Status != "" {
		homework.Status = form.Status
	}
	return homework, database.GetDB().Save(homework).Error
}

func (s *HomeworkService) DeleteHomework(orgId int, id int) error {
	homework, err := s.GetHomework(orgId, id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Homework{}, homework.Id).Error
}
