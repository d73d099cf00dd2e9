package service

import (
	"testing"

	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveResultCapsScore(t *testing.T) {
	setupTest(t)

	examService := ExamService{}
	exam, err := examService.AddExam(1, &ExamForm{
		Title:      "March Mock Exam",
		TotalScore: 100,
	})
	require.NoError(t, err)

	studentId := seedStudent(t, 1, "Oh Jiwon")

	_, err = examService.SaveResult(1, exam.Id, &ExamResultForm{
		StudentId: studentId,
		Score:     120,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "score")
}

func TestSaveResultUpserts(t *testing.T) {
	setupTest(t)

	examService := ExamService{}
	exam, err := examService.AddExam(1, &ExamForm{
		Title:      "April Mock Exam",
		TotalScore: 100,
	})
	require.NoError(t, err)

	studentId := seedStudent(t, 1, "Nam Sua")

	_, err = examService.SaveResult(1, exam.Id, &ExamResultForm{StudentId: studentId, Score: 70})
	require.NoError(t, err)

	// Saving again replaces the score instead of conflicting.
	_, err = examService.SaveResult(1, exam.Id, &ExamResultForm{StudentId: studentId, Score: 85})
	require.NoError(t, err)

	results, err := examService.GetResults(1, exam.Id)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 85, results[0].Score)
}

func TestDeleteExamRemovesResults(t *testing.T) {
	setupTest(t)

	examService := ExamService{}
	exam, err := examService.AddExam(1, &ExamForm{Title: "May Mock Exam"})
	require.NoError(t, err)

	studentId := seedStudent(t, 1, "Im Dohyun")
	_, err = examService.SaveResult(1, exam.Id, &ExamResultForm{StudentId: studentId, Score: 50})
	require.NoError(t, err)

	require.NoError(t, examService.DeleteExam(1, exam.Id))

	_, err = examService.GetResults(1, exam.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	database.GetDB().Model(model.ExamResult{}).Where("exam_id = ?", exam.Id).Count(&count)
	assert.Zero(t, count)
}
