// file: internals/features/evaluations/dto/evaluation_dto.go
package dto

import (
	"time"

	"aula_backend/internals/features/evaluations/model"

	"github.com/google/uuid"
)

// =======================
// Request DTO
// =======================

type EvaluationCreateDTO struct {
	EvaluationStudentID   uuid.UUID  `json:"evaluation_student_id" validate:"required"`
	EvaluationSubjectID   uuid.UUID  `json:"evaluation_subject_id" validate:"required"`
	EvaluationPeriodID    uuid.UUID  `json:"evaluation_period_id" validate:"required"`
	EvaluationTypeID      uuid.UUID  `json:"evaluation_type_id" validate:"required"`
	EvaluationValue       *float64   `json:"evaluation_value" validate:"required,gte=0,lte=100"`
	EvaluationDate        *time.Time `json:"evaluation_date,omitempty"`
	EvaluationDescription *string    `json:"evaluation_description,omitempty"`
}

type EvaluationUpdateDTO struct {
	EvaluationValue       *float64   `json:"evaluation_value,omitempty" validate:"omitempty,gte=0,lte=100"`
	EvaluationDate        *time.Time `json:"evaluation_date,omitempty"`
	EvaluationDescription *string    `json:"evaluation_description,omitempty"`
}

// BulkRollCallDTO records attendance (or any shared-type score) for a
// whole course in one shot. Entries land in a single transaction.
type BulkRollCallDTO struct {
	EvaluationSubjectID uuid.UUID           `json:"evaluation_subject_id" validate:"required"`
	EvaluationPeriodID  uuid.UUID           `json:"evaluation_period_id" validate:"required"`
	EvaluationTypeID    uuid.UUID           `json:"evaluation_type_id" validate:"required"`
	EvaluationDate      *time.Time          `json:"evaluation_date,omitempty"`
	Entries             []BulkRollCallEntry `json:"entries" validate:"required,min=1,dive"`
}

type BulkRollCallEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Value     *float64  `json:"value" validate:"required,gte=0,lte=100"`
}

// =======================
// Response DTO
// =======================

type EvaluationResponseDTO struct {
	EvaluationID          uuid.UUID `json:"evaluation_id"`
	EvaluationStudentID   uuid.UUID `json:"evaluation_student_id"`
	EvaluationSubjectID   uuid.UUID `json:"evaluation_subject_id"`
	EvaluationPeriodID    uuid.UUID `json:"evaluation_period_id"`
	EvaluationTypeID      uuid.UUID `json:"evaluation_type_id"`
	EvaluationTeacherID   uuid.UUID `json:"evaluation_teacher_id"`
	EvaluationValue       float64   `json:"evaluation_value"`
	EvaluationDate        time.Time `json:"evaluation_date"`
	EvaluationDescription *string   `json:"evaluation_description,omitempty"`
	EvaluationCreatedAt   time.Time `json:"evaluation_created_at"`
	EvaluationUpdatedAt   time.Time `json:"evaluation_updated_at"`
}

func (p *EvaluationCreateDTO) ToModel(teacherID uuid.UUID) model.EvaluationModel {
	ent := model.EvaluationModel{
		EvaluationStudentID:   p.EvaluationStudentID,
		EvaluationSubjectID:   p.EvaluationSubjectID,
		EvaluationPeriodID:    p.EvaluationPeriodID,
		EvaluationTypeID:      p.EvaluationTypeID,
		EvaluationTeacherID:   teacherID,
		EvaluationValue:       *p.EvaluationValue,
		EvaluationDescription: p.EvaluationDescription,
	}
	if p.EvaluationDate != nil {
		ent.EvaluationDate = *p.EvaluationDate
	}
	return ent
}

func (u *EvaluationUpdateDTO) ApplyUpdates(ent *model.EvaluationModel) {
	if u.EvaluationValue != nil {
		ent.EvaluationValue = *u.EvaluationValue
	}
	if u.EvaluationDate != nil {
		ent.EvaluationDate = *u.EvaluationDate
	}
	if u.EvaluationDescription != nil {
		ent.EvaluationDescription = u.EvaluationDescription
	}
}

func FromModel(ent model.EvaluationModel) EvaluationResponseDTO {
	return EvaluationResponseDTO{
		EvaluationID:          ent.EvaluationID,
		EvaluationStudentID:   ent.EvaluationStudentID,
		EvaluationSubjectID:   ent.EvaluationSubjectID,
		EvaluationPeriodID:    ent.EvaluationPeriodID,
		EvaluationTypeID:      ent.EvaluationTypeID,
		EvaluationTeacherID:   ent.EvaluationTeacherID,
		EvaluationValue:       ent.EvaluationValue,
		EvaluationDate:        ent.EvaluationDate,
		EvaluationDescription: ent.EvaluationDescription,
		EvaluationCreatedAt:   ent.EvaluationCreatedAt,
		EvaluationUpdatedAt:   ent.EvaluationUpdatedAt,
	}
}

func FromModels(list []model.EvaluationModel) []EvaluationResponseDTO {
	out := make([]EvaluationResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
