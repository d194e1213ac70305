// file: internals/features/performance/aggregate/dto/final_result_dto_test.go
package dto

import (
	"testing"
	"time"

	"aula_backend/internals/features/performance/aggregate/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFinalResultCreateToModel(t *testing.T) {
	studentID := uuid.New()
	subjectID := uuid.New()
	periodID := uuid.New()

	ent := FinalResultCreateDTO{
		StudentID:   studentID,
		SubjectID:   subjectID,
		PeriodID:    periodID,
		Score:       87.5,
		WeightTotal: 95,
	}.ToModel()

	assert.Equal(t, studentID, ent.FinalResultStudentID)
	assert.Equal(t, subjectID, ent.FinalResultSubjectID)
	assert.Equal(t, periodID, ent.FinalResultPeriodID)
	assert.Equal(t, 87.5, ent.FinalResultScore)
	assert.Equal(t, 95.0, ent.FinalResultWeightTotal)
	assert.WithinDuration(t, time.Now().UTC(), ent.FinalResultComputedAt, time.Minute)
}

func TestFinalResultUpdateAppliesOnlyProvidedFields(t *testing.T) {
	ent := model.FinalResultModel{
		FinalResultScore:       70,
		FinalResultWeightTotal: 80,
	}

	score := 91.25
	FinalResultUpdateDTO{Score: &score}.ApplyUpdates(&ent)

	assert.Equal(t, 91.25, ent.FinalResultScore)
	assert.Equal(t, 80.0, ent.FinalResultWeightTotal, "absent fields stay untouched")
	assert.False(t, ent.FinalResultComputedAt.IsZero(), "manual edits refresh computed_at")
}
