package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
)

type ConsultationForm struct {
	StudentId int    `json:"studentId" form:"studentId" validate:"required,min=1"`
	TeacherId int    `json:"teacherId" form:"teacherId" validate:"omitempty,min=1"`
	Date      string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Type      string `json:"type" form:"type" validate:"omitempty,oneof=academic behavior parent admission etc"`
	Summary   string `json:"summary" form:"summary" validate:"omitempty,max=200"`
	Notes     string `json:"notes" form:"notes"`
	Status    string `json:"status" form:"status" validate:"omitempty,oneof=scheduled done cancelled"`
}

type ConsultationFilter struct {
	StudentId int    `form:"studentId"`
	Status    string `form:"status"`
	From      string `form:"from"`
	To        string `form:"to"`
}

type ConsultationService struct{}

func (s *ConsultationService) GetConsultations(orgId int, filter ConsultationFilter) ([]model.Consultation, error) {
	db := database.GetDB()
	query := db.Model(model.Consultation{}).
		Where("org_id = ?", orgId).
		Order("date desc")
	if filter.StudentId > 0 {
		query = query.Where("student_id = ?", filter.StudentId)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}
	var consultations []model.Consultation
	err := query.Find(&consultations).Error
	return consultations, err
}

func (s *ConsultationService) GetConsultation(orgId int, id int) (*model.Consultation, error) {
	db := database.GetDB()
	consultation := &model.Consultation{}
	err := db.Model(model.Consultation{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(consultation).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return consultation, nil
}

func (s *ConsultationService) AddConsultation(orgId int, form *ConsultationForm) (*model.Consultation, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if err := checkStudentScope(orgId, form.StudentId); err != nil {
		return nil, err
	}
	status := form.Status
	if status == "" {
		status = "scheduled"
	}
	consultation := &model.Consultation{
		OrgId:     orgId,
		StudentId: form.StudentId,
		TeacherId: form.TeacherId,
		Date:      form.Date,
		Type:      form.Type,
		Summary:   form.Summary,
		Notes:     form.Notes,
		Status:    status,
	}
	return consultation, database.GetDB().Create(consultation).Error
}

func (s *ConsultationService) UpdateConsultation(orgId int, id int, form *ConsultationForm) (*model.Consultation, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if err := checkStudentScope(orgId, form.StudentId); err != nil {
		return nil, err
	}
	consultation, err := s.GetConsultation(orgId, id)
	if err != nil {
		return nil, err
	}
	consultation.StudentId = form.StudentId
	consultation.TeacherId = form.TeacherId
	consultation.Date = form.Date
	consultation.Type = form.Type
	consultation.Summary = form.Summary
	consultation.Notes = form.Notes
	if form.Status != "" {
		consultation.Status = form.Status
	}
	return consultation, database.GetDB().Save(consultation).Error
}

func (s *ConsultationService) DeleteConsultation(orgId int, id int) error {
	consultation, err := s.GetConsultation(orgId, id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Consultation{}, consultation.Id).Error
}

// GetUpcoming returns consultations still scheduled for the given date.
// The daily reminder job uses this.
func (s *ConsultationService) GetUpcoming(orgId int, date string) ([]model.Consultation, error) {
	db := database.GetDB()
	var consultations []model.Consultation
	err := db.Model(model.Consultation{}).
		Where("org_id = ? AND date = ? AND status = ?", orgId, date, "scheduled").
		Find(&consultations).Error
	return consultations, err
}

// checkStudentScope verifies a referenced student belongs to the caller's
// organization. A foreign id reads as absent.
func checkStudentScope(orgId int, studentId int) error {
	var count int64
	err := database.GetDB().Model(model.Student{}).
		Where("id = ? AND org_id = ?", studentId, orgId).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
