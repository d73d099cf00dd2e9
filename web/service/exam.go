package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExamForm struct {
	ClassId    int    `json:"classId" form:"classId" validate:"omitempty,min=1"`
	Title      string `json:"title" form:"title" validate:"required,min=2,max=100"`
	Subject    string `json:"subject" form:"subject" validate:"omitempty,max=50"`
	ExamDate   string `json:"examDate" form:"examDate" validate:"omitempty,datetime=2006-01-02"`
	TotalScore int    `json:"totalScore" form:"totalScore" validate:"omitempty,min=1,max=1000"`
}

type ExamResultForm struct {
	StudentId int `json:"studentId" form:"studentId" validate:"required,min=1"`
	Score     int `json:"score" form:"score" validate:"min=0"`
}

type ExamService struct{}

func (s *ExamService) GetExams(orgId int, classId int) ([]model.Exam, error) {
	db := database.GetDB()
	query := db.Model(model.Exam{}).
		Where("org_id = ?", orgId).
		Order("exam_date desc")
	if classId > 0 {
		query = query.Where("class_id = ?", classId)
	}
	var exams []model.Exam
	err := query.Find(&exams).Error
	return exams, err
}

func (s *ExamService) GetExam(orgId int, id int) (*model.Exam, error) {
	db := database.GetDB()
	exam := &model.Exam{}
	err := db.Model(model.Exam{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(exam).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) AddExam(orgId int, form *ExamForm) (*model.Exam, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	totalScore := form.TotalScore
	if totalScore == 0 {
		totalScore = 100
	}
	exam := &model.Exam{
		OrgId:      orgId,
		ClassId:    form.ClassId,
		Title:      form.Title,
		Subject:    form.Subject,
		ExamDate:   form.ExamDate,
		TotalScore: totalScore,
	}
	return exam, database.GetDB().Create(exam).Error
}

func (s *ExamService) UpdateExam(orgId int, id int, form *ExamForm) (*model.Exam, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	exam, err := s.GetExam(orgId, id)
	if err != nil {
		return nil, err
	}
	exam.ClassId = form.ClassId
	exam.Title = form.Title
	exam.Subject = form.Subject
	exam.ExamDate = form.ExamDate
	if form.TotalScore > 0 {
		exam.TotalScore = form.TotalScore
	}
	return exam, database.GetDB().Save(exam).Error
}

func (s *ExamService) DeleteExam(orgId int, id int) error {
	exam, err := s.GetExam(orgId, id)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("org_id = ? AND exam_id = ?", orgId, exam.Id).Delete(model.ExamResult{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Exam{}, exam.Id).Error
	})
}

func (s *ExamService) GetResults(orgId int, examId int) ([]model.ExamResult, error) {
	if _, err := s.GetExam(orgId, examId); err != nil {
		return nil, err
	}
	db := database.GetDB()
	var results []model.ExamResult
	err := db.Model(model.ExamResult{}).
		Where("org_id = ? AND exam_id = ?", orgId, examId).
		Order("score desc").
		Find(&results).Error
	return results, err
}

// SaveResult records one student's score. Re-posting the same (exam, student)
// overwrites the score instead of failing; grade entry is re-run constantly.
func (s *ExamService) SaveResult(orgId int, examId int, form *ExamResultForm) (*model.ExamResult, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	exam, err := s.GetExam(orgId, examId)
	if err != nil {
		return nil, err
	}
	if form.Score > exam.TotalScore {
		return nil, newFieldError("score", "exceeds the exam total score")
	}
	if err := checkStudentScope(orgId, form.StudentId); err != nil {
		return nil, err
	}
	result := &model.ExamResult{
		OrgId:     orgId,
		ExamId:    examId,
		StudentId: form.StudentId,
		Score:     form.Score,
	}
	err = database.GetDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "org_id"}, {Name: "exam_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(result).Error
	return result, err
}

func (s *ExamService) DeleteResult(orgId int, examId int, studentId int) error {
	db := database.GetDB()
	result := db.Where("org_id = ? AND exam_id = ? AND student_id = ?", orgId, examId, studentId).
		Delete(model.ExamResult{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
