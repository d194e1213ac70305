// file: internals/features/performance/aggregate/dto/final_result_dto.go
package dto

import (
	"time"

	"aula_backend/internals/features/performance/aggregate/model"
	"aula_backend/internals/features/performance/aggregate/service"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// =======================
// Request DTO
// =======================

type ComputeRequestDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	PeriodID  uuid.UUID `json:"period_id" validate:"required"`
}

// ComputeCourseRequestDTO recomputes one subject for every student
// enrolled in the course.
type ComputeCourseRequestDTO struct {
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	PeriodID  uuid.UUID `json:"period_id" validate:"required"`
}

// ComputeStudentRequestDTO recomputes every subject of the student's
// course for one period.
type ComputeStudentRequestDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	PeriodID  uuid.UUID `json:"period_id" validate:"required"`
}

// ComputeStudentCycleRequestDTO recomputes every subject across every
// period of the cycle for one student.
type ComputeStudentCycleRequestDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CycleID   uuid.UUID `json:"cycle_id" validate:"required"`
}

// FinalResultCreateDTO records a grade by hand, outside the
// aggregation pipeline. The next recompute overwrites it.
type FinalResultCreateDTO struct {
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	SubjectID   uuid.UUID `json:"subject_id" validate:"required"`
	PeriodID    uuid.UUID `json:"period_id" validate:"required"`
	Score       float64   `json:"score" validate:"min=0,max=100"`
	WeightTotal float64   `json:"weight_total" validate:"min=0"`
}

func (p FinalResultCreateDTO) ToModel() model.FinalResultModel {
	return model.FinalResultModel{
		FinalResultStudentID:   p.StudentID,
		FinalResultSubjectID:   p.SubjectID,
		FinalResultPeriodID:    p.PeriodID,
		FinalResultScore:       p.Score,
		FinalResultWeightTotal: p.WeightTotal,
		FinalResultComputedAt:  time.Now().UTC(),
	}
}

type FinalResultUpdateDTO struct {
	Score       *float64 `json:"score" validate:"omitempty,min=0,max=100"`
	WeightTotal *float64 `json:"weight_total" validate:"omitempty,min=0"`
}

func (p FinalResultUpdateDTO) ApplyUpdates(ent *model.FinalResultModel) {
	if p.Score != nil {
		ent.FinalResultScore = *p.Score
	}
	if p.WeightTotal != nil {
		ent.FinalResultWeightTotal = *p.WeightTotal
	}
	ent.FinalResultComputedAt = time.Now().UTC()
}

// =======================
// Response DTO
// =======================

type FinalResultResponseDTO struct {
	FinalResultID          uuid.UUID      `json:"final_result_id"`
	FinalResultStudentID   uuid.UUID      `json:"final_result_student_id"`
	FinalResultSubjectID   uuid.UUID      `json:"final_result_subject_id"`
	FinalResultPeriodID    uuid.UUID      `json:"final_result_period_id"`
	FinalResultScore       float64        `json:"final_result_score"`
	FinalResultWeightTotal float64        `json:"final_result_weight_total"`
	FinalResultBreakdown   datatypes.JSON `json:"final_result_breakdown,omitempty"`
	FinalResultComputedAt  time.Time      `json:"final_result_computed_at"`
	FinalResultCreatedAt   time.Time      `json:"final_result_created_at"`
	FinalResultUpdatedAt   time.Time      `json:"final_result_updated_at"`
}

// ComputeOutcomeDTO pairs the stored row with the fresh breakdown.
type ComputeOutcomeDTO struct {
	Result      FinalResultResponseDTO  `json:"result"`
	Computation service.Result          `json:"computation"`
}

// CourseComputeEntryDTO is one student's outcome in a course batch.
// Students whose context cannot be resolved are reported, not dropped.
type CourseComputeEntryDTO struct {
	StudentID uuid.UUID               `json:"student_id"`
	Result    *FinalResultResponseDTO `json:"result,omitempty"`
	Error     *string                 `json:"error,omitempty"`
}

// SubjectComputeEntryDTO is one subject's outcome in a student batch.
type SubjectComputeEntryDTO struct {
	SubjectID uuid.UUID               `json:"subject_id"`
	PeriodID  uuid.UUID               `json:"period_id"`
	Result    *FinalResultResponseDTO `json:"result,omitempty"`
	Error     *string                 `json:"error,omitempty"`
}

func FromModel(ent model.FinalResultModel) FinalResultResponseDTO {
	return FinalResultResponseDTO{
		FinalResultID:          ent.FinalResultID,
		FinalResultStudentID:   ent.FinalResultStudentID,
		FinalResultSubjectID:   ent.FinalResultSubjectID,
		FinalResultPeriodID:    ent.FinalResultPeriodID,
		FinalResultScore:       ent.FinalResultScore,
		FinalResultWeightTotal: ent.FinalResultWeightTotal,
		FinalResultBreakdown:   ent.FinalResultBreakdown,
		FinalResultComputedAt:  ent.FinalResultComputedAt,
		FinalResultCreatedAt:   ent.FinalResultCreatedAt,
		FinalResultUpdatedAt:   ent.FinalResultUpdatedAt,
	}
}

func FromModels(list []model.FinalResultModel) []FinalResultResponseDTO {
	out := make([]FinalResultResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
