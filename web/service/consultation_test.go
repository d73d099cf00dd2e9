package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsultationLifecycle(t *testing.T) {
	setupTest(t)

	consultationService := ConsultationService{}
	studentId := seedStudent(t, 1, "Ahn Chaewon")

	created, err := consultationService.AddConsultation(1, &ConsultationForm{
		StudentId: studentId,
		Date:      "2026-09-01",
		Type:      "parent",
		Notes:     "Discuss mock exam results with parents.",
	})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", created.Status)

	updated, err := consultationService.UpdateConsultation(1, created.Id, &ConsultationForm{
		StudentId: studentId,
		Date:      "2026-09-01",
		Type:      "parent",
		Summary:   "Parents agreed to extra classes.",
		Status:    "done",
	})
	require.NoError(t, err)
	assert.Equal(t, "done", updated.Status)

	require.NoError(t, consultationService.DeleteConsultation(1, created.Id))
	_, err = consultationService.GetConsultation(1, created.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUpcomingFiltersByDateAndStatus(t *testing.T) {
	setupTest(t)

	consultationService := ConsultationService{}
	studentId := seedStudent(t, 1, "Hong Gyuri")

	_, err := consultationService.AddConsultation(1, &ConsultationForm{
		StudentId: studentId,
		Date:      "2026-09-01",
	})
	require.NoError(t, err)

	done, err := consultationService.AddConsultation(1, &ConsultationForm{
		StudentId: studentId,
		Date:      "2026-09-01",
	})
	require.NoError(t, err)
	_, err = consultationService.UpdateConsultation(1, done.Id, &ConsultationForm{
		StudentId: studentId,
		Date:      "2026-09-01",
		Status:    "cancelled",
	})
	require.NoError(t, err)

	upcoming, err := consultationService.GetUpcoming(1, "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, upcoming, 1)

	upcoming, err = consultationService.GetUpcoming(1, "2026-09-02")
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}

func TestConsultationCrossOrgIsolation(t *testing.T) {
	setupTest(t)
	otherOrg := seedOrg(t, "consult-owner")

	consultationService := ConsultationService{}
	studentId := seedStudent(t, 1, "Go Yeonwoo")

	created, err := consultationService.AddConsultation(1, &ConsultationForm{
		StudentId: studentId,
		Date:      "2026-09-03",
	})
	require.NoError(t, err)

	_, err = consultationService.GetConsultation(otherOrg, created.Id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, consultationService.DeleteConsultation(otherOrg, created.Id), ErrNotFound)
}

func TestConsultationUpdateRejectsForeignStudent(t *testing.T) {
	setupTest(t)
	otherOrg := seedOrg(t, "consult-owner2")

	consultationService := ConsultationService{}
	studentId := seedStudent(t, 1, "Yang Dain")
	foreignStudent := seedStudent(t, otherOrg, "Outside Kid")

	created, err := consultationService.AddConsultation(1, &ConsultationForm{
		StudentId: studentId,
		Date:      "2026-09-05",
	})
	require.NoError(t, err)

	_, err = consultationService.UpdateConsultation(1, created.Id, &ConsultationForm{
		StudentId: foreignStudent,
		Date:      "2026-09-05",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	kept, err := consultationService.GetConsultation(1, created.Id)
	require.NoError(t, err)
	assert.Equal(t, studentId, kept.StudentId)
}
