package service

import (
	"time"

	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
)

type AttendanceForm struct {
	StudentId int    `json:"studentId" form:"studentId" validate:"required,min=1"`
	Date      string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" form:"status" validate:"required,oneof=present late absent excused"`
	ClassId   int    `json:"classId" form:"classId"`
	Notes     string `json:"notes" form:"notes"`
}

type AttendanceFilter struct {
	StudentId int    `form:"studentId"`
	Date      string `form:"date"`
	From      string `form:"from"`
	To        string `form:"to"`
	Status    string `form:"status"`
}

type AttendanceService struct {
	settingService SettingService
}

func (s *AttendanceService) GetRecords(orgId int, filter AttendanceFilter) ([]model.Attendance, error) {
	db := database.GetDB()
	query := db.Model(model.Attendance{}).
		Where("org_id = ?", orgId).
		Order("date desc, student_id asc")
	if filter.StudentId > 0 {
		query = query.Where("student_id = ?", filter.StudentId)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var records []model.Attendance
	err := query.Find(&records).Error
	return records, err
}

func (s *AttendanceService) GetRecord(orgId int, id int) (*model.Attendance, error) {
	db := database.GetDB()
	record := &model.Attendance{}
	err := db.Model(model.Attendance{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(record).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *AttendanceService) AddRecord(orgId int, form *AttendanceForm) (*model.Attendance, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if err := checkStudentScope(orgId, form.StudentId); err != nil {
		return nil, err
	}
	record := &model.Attendance{
		OrgId:     orgId,
		StudentId: form.StudentId,
		Date:      form.Date,
		Status:    model.AttendanceStatus(form.Status),
		ClassId:   form.ClassId,
		Notes:     form.Notes,
	}
	err := database.GetDB().Create(record).Error
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	return record, err
}

func (s *AttendanceService) UpdateRecord(orgId int, id int, form *AttendanceForm) (*model.Attendance, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if err := checkStudentScope(orgId, form.StudentId); err != nil {
		return nil, err
	}
	record, err := s.GetRecord(orgId, id)
	if err != nil {
		return nil, err
	}
	record.StudentId = form.StudentId
	record.Date = form.Date
	record.Status = model.AttendanceStatus(form.Status)
	record.ClassId = form.ClassId
	record.Notes = form.Notes
	err = database.GetDB().Save(record).Error
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	return record, err
}

func (s *AttendanceService) DeleteRecord(orgId int, id int) error {
	record, err := s.GetRecord(orgId, id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Attendance{}, record.Id).Error
}

// CheckinByCode records a present mark for today using a student's check-in
// code. The code itself identifies the organization, so no caller scope is
// required; kiosks at the academy entrance call this without a session.
func (s *AttendanceService) CheckinByCode(code string) (*model.Student, error) {
	db := database.GetDB()
	student := &model.Student{}
	err := db.Model(model.Student{}).
		Where("checkin_code = ?", code).
		First(student).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	loc, err := s.settingService.GetTimeLocation()
	if err != nil {
		loc = time.Local
	}
	today := time.Now().In(loc).Format("2006-01-02")

	err = db.Create(&model.Attendance{
		OrgId:     student.OrgId,
		StudentId: student.Id,
		Date:      today,
		Status:    model.AttendancePresent,
	}).Error
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}
