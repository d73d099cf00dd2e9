package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"

	qrcode "github.com/skip2/go-qrcode"
)

// StudentForm is the validated payload for creating or updating a student.
type StudentForm struct {
	Name        string `json:"name" form:"name" validate:"required,min=2,max=50"`
	Grade       string `json:"grade" form:"grade" validate:"omitempty,max=20"`
	School      string `json:"school" form:"school" validate:"omitempty,max=100"`
	Phone       string `json:"phone" form:"phone" validate:"omitempty,max=20"`
	ParentPhone string `json:"parentPhone" form:"parentPhone" validate:"omitempty,max=20"`
	Status      string `json:"status" form:"status" validate:"omitempty,oneof=active inactive graduated withdrawn"`
	Notes       string `json:"notes" form:"notes"`
}

// StudentFilter narrows a student list query.
type StudentFilter struct {
	Status string `form:"status"`
	Grade  string `form:"grade"`
	Search string `form:"search"`
}

type StudentService struct{}

func (s *StudentService) GetStudents(orgId int, filter StudentFilter) ([]model.Student, error) {
	db := database.GetDB()
	query := db.Model(model.Student{}).
		Where("org_id = ?", orgId).
		Order("created_at desc")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Grade != "" {
		query = query.Where("grade = ?", filter.Grade)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	var students []model.Student
	err := query.Find(&students).Error
	return students, err
}

// GetStudent returns one student of the caller's organization. A student of
// another organization is indistinguishable from an absent one.
func (s *StudentService) GetStudent(orgId int, id int) (*model.Student, error) {
	db := database.GetDB()
	student := &model.Student{}
	err := db.Model(model.Student{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(student).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) AddStudent(orgId int, form *StudentForm) (*model.Student, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	status := model.StudentStatus(form.Status)
	if status == "" {
		status = model.StudentActive
	}
	student := &model.Student{
		OrgId:       orgId,
		Name:        form.Name,
		Grade:       form.Grade,
		School:      form.School,
		Phone:       form.Phone,
		ParentPhone: form.ParentPhone,
		Status:      status,
		CheckinCode: database.NewCheckinCode(),
		Notes:       form.Notes,
	}
	err := database.GetDB().Create(student).Error
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	return student, err
}

func (s *StudentService) UpdateStudent(orgId int, id int, form *StudentForm) (*model.Student, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	student, err := s.GetStudent(orgId, id)
	if err != nil {
		return nil, err
	}
	student.Name = form.Name
	student.Grade = form.Grade
	student.School = form.School
	student.Phone = form.Phone
	student.ParentPhone = form.ParentPhone
	if form.Status != "" {
		student.Status = model.StudentStatus(form.Status)
	}
	student.Notes = form.Notes
	return student, database.GetDB().Save(student).Error
}

func (s *StudentService) DeleteStudent(orgId int, id int) error {
	student, err := s.GetStudent(orgId, id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Student{}, student.Id).Error
}

// CheckinQR renders the student's check-in code as a QR PNG for printing on
// an attendance card.
func (s *StudentService) CheckinQR(orgId int, id int) ([]byte, error) {
	student, err := s.GetStudent(orgId, id)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(student.CheckinCode, qrcode.Medium, 256)
}
