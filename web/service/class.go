package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"

	"gorm.io/gorm"
)

type ClassForm struct {
	Name        string `json:"name" form:"name" validate:"required,min=2,max=50"`
	Subject     string `json:"subject" form:"subject" validate:"required,max=50"`
	TeacherName string `json:"teacherName" form:"teacherName" validate:"omitempty,max=50"`
	Capacity    int    `json:"capacity" form:"capacity" validate:"required,min=1,max=500"`
	Room        string `json:"room" form:"room" validate:"omitempty,max=50"`
	Status      string `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
	Notes       string `json:"notes" form:"notes"`
}

type ClassFilter struct {
	Status  string `form:"status"`
	Subject string `form:"subject"`
}

type ClassService struct{}

func (s *ClassService) GetClasses(orgId int, filter ClassFilter) ([]model.Class, error) {
	db := database.GetDB()
	query := db.Model(model.Class{}).
		Where("org_id = ?", orgId).
		Order("name asc")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	var classes []model.Class
	err := query.Find(&classes).Error
	return classes, err
}

func (s *ClassService) GetClass(orgId int, id int) (*model.Class, error) {
	db := database.GetDB()
	class := &model.Class{}
	err := db.Model(model.Class{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(class).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) AddClass(orgId int, form *ClassForm) (*model.Class, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	status := form.Status
	if status == "" {
		status = "active"
	}
	class := &model.Class{
		OrgId:       orgId,
		Name:        form.Name,
		Subject:     form.Subject,
		TeacherName: form.TeacherName,
		Capacity:    form.Capacity,
		Room:        form.Room,
		Status:      status,
		Notes:       form.Notes,
	}
	return class, database.GetDB().Create(class).Error
}

func (s *ClassService) UpdateClass(orgId int, id int, form *ClassForm) (*model.Class, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	class, err := s.GetClass(orgId, id)
	if err != nil {
		return nil, err
	}
	class.Name = form.Name
	class.Subject = form.Subject
	class.TeacherName = form.TeacherName
	class.Capacity = form.Capacity
	class.Room = form.Room
	if form.Status != "" {
		class.Status = form.Status
	}
	class.Notes = form.Notes
	return class, database.GetDB().Save(class).Error
}

func (s *ClassService) DeleteClass(orgId int, id int) error {
	class, err := s.GetClass(orgId, id)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("org_id = ? AND class_id = ?", orgId, class.Id).Delete(model.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Class{}, class.Id).Error
	})
}

// GetRoster lists the students enrolled in one class.
func (s *ClassService) GetRoster(orgId int, classId int) ([]model.Student, error) {
	if _, err := s.GetClass(orgId, classId); err != nil {
		return nil, err
	}
	db := database.GetDB()
	var students []model.Student
	err := db.Model(model.Student{}).
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.org_id = ? AND enrollments.class_id = ?", orgId, classId).
		Order("students.name asc").
		Find(&students).Error
	return students, err
}

// Enroll adds a student to a class. Both records must belong to the caller's
// organization; capacity is enforced and a repeat enrollment is a conflict.
func (s *ClassService) Enroll(orgId int, classId int, studentId int) error {
	class, err := s.GetClass(orgId, classId)
	if err != nil {
		return err
	}

	if err := checkStudentScope(orgId, studentId); err != nil {
		return err
	}

	db := database.GetDB()
	var enrolled int64
	err = db.Model(model.Enrollment{}).
		Where("org_id = ? AND class_id = ?", orgId, classId).
		Count(&enrolled).Error
	if err != nil {
		return err
	}
	if int(enrolled) >= class.Capacity {
		return ErrCapacity
	}

	err = db.Create(&model.Enrollment{
		OrgId:     orgId,
		StudentId: studentId,
		ClassId:   classId,
	}).Error
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (s *ClassService) Unenroll(orgId int, classId int, studentId int) error {
	db := database.GetDB()
	result := db.Where("org_id = ? AND class_id = ? AND student_id = ?", orgId, classId, studentId).
		Delete(model.Enrollment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
