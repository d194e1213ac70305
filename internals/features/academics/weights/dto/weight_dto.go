// file: internals/features/academics/weights/dto/weight_dto.go
package dto

import (
	"time"

	"aula_backend/internals/features/academics/weights/model"

	"github.com/google/uuid"
)

// =======================
// Request DTO
// =======================

// WeightSetDTO has upsert semantics: the natural key selects the row,
// the percentage replaces whatever was there.
type WeightSetDTO struct {
	WeightTeacherID        uuid.UUID `json:"weight_teacher_id" validate:"required"`
	WeightSubjectID        uuid.UUID `json:"weight_subject_id" validate:"required"`
	WeightCycleID          uuid.UUID `json:"weight_cycle_id" validate:"required"`
	WeightEvaluationTypeID uuid.UUID `json:"weight_evaluation_type_id" validate:"required"`
	WeightPercentage       *float64  `json:"weight_percentage" validate:"required,gte=0,lte=100"`
}

// =======================
// Response DTO
// =======================

type WeightResponseDTO struct {
	WeightID               uuid.UUID `json:"weight_id"`
	WeightTeacherID        uuid.UUID `json:"weight_teacher_id"`
	WeightSubjectID        uuid.UUID `json:"weight_subject_id"`
	WeightCycleID          uuid.UUID `json:"weight_cycle_id"`
	WeightEvaluationTypeID uuid.UUID `json:"weight_evaluation_type_id"`
	WeightPercentage       float64   `json:"weight_percentage"`
	WeightCreatedAt        time.Time `json:"weight_created_at"`
	WeightUpdatedAt        time.Time `json:"weight_updated_at"`
}

func (p *WeightSetDTO) ToModel() model.WeightModel {
	return model.WeightModel{
		WeightTeacherID:        p.WeightTeacherID,
		WeightSubjectID:        p.WeightSubjectID,
		WeightCycleID:          p.WeightCycleID,
		WeightEvaluationTypeID: p.WeightEvaluationTypeID,
		WeightPercentage:       *p.WeightPercentage,
	}
}

func FromModel(ent model.WeightModel) WeightResponseDTO {
	return WeightResponseDTO{
		WeightID:               ent.WeightID,
		WeightTeacherID:        ent.WeightTeacherID,
		WeightSubjectID:        ent.WeightSubjectID,
		WeightCycleID:          ent.WeightCycleID,
		WeightEvaluationTypeID: ent.WeightEvaluationTypeID,
		WeightPercentage:       ent.WeightPercentage,
		WeightCreatedAt:        ent.WeightCreatedAt,
		WeightUpdatedAt:        ent.WeightUpdatedAt,
	}
}

func FromModels(list []model.WeightModel) []WeightResponseDTO {
	out := make([]WeightResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
