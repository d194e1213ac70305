// file: internals/features/academics/evaluationtypes/dto/evaluation_type_dto.go
package dto

import (
	"strings"
	"time"

	"aula_backend/internals/features/academics/evaluationtypes/model"

	"github.com/google/uuid"
)

type EvaluationTypeCreateDTO struct {
	EvaluationTypeName         string `json:"evaluation_type_name" validate:"required,min=2,max=80"`
	EvaluationTypeIsAttendance *bool  `json:"evaluation_type_is_attendance,omitempty"`
}

type EvaluationTypeUpdateDTO struct {
	EvaluationTypeName         *string `json:"evaluation_type_name,omitempty" validate:"omitempty,min=2,max=80"`
	EvaluationTypeIsAttendance *bool   `json:"evaluation_type_is_attendance,omitempty"`
}

type EvaluationTypeResponseDTO struct {
	EvaluationTypeID           uuid.UUID `json:"evaluation_type_id"`
	EvaluationTypeName         string    `json:"evaluation_type_name"`
	EvaluationTypeIsAttendance bool      `json:"evaluation_type_is_attendance"`
	EvaluationTypeCreatedAt    time.Time `json:"evaluation_type_created_at"`
	EvaluationTypeUpdatedAt    time.Time `json:"evaluation_type_updated_at"`
}

func (p *EvaluationTypeCreateDTO) Normalize() {
	p.EvaluationTypeName = strings.TrimSpace(p.EvaluationTypeName)
}

func (p *EvaluationTypeCreateDTO) ToModel() model.EvaluationTypeModel {
	isAttendance := false
	if p.EvaluationTypeIsAttendance != nil {
		isAttendance = *p.EvaluationTypeIsAttendance
	}
	return model.EvaluationTypeModel{
		EvaluationTypeName:         p.EvaluationTypeName,
		EvaluationTypeIsAttendance: isAttendance,
	}
}

func (u *EvaluationTypeUpdateDTO) ApplyUpdates(ent *model.EvaluationTypeModel) {
	if u.EvaluationTypeName != nil {
		ent.EvaluationTypeName = strings.TrimSpace(*u.EvaluationTypeName)
	}
	if u.EvaluationTypeIsAttendance != nil {
		ent.EvaluationTypeIsAttendance = *u.EvaluationTypeIsAttendance
	}
}

func FromModel(ent model.EvaluationTypeModel) EvaluationTypeResponseDTO {
	return EvaluationTypeResponseDTO{
		EvaluationTypeID:           ent.EvaluationTypeID,
		EvaluationTypeName:         ent.EvaluationTypeName,
		EvaluationTypeIsAttendance: ent.EvaluationTypeIsAttendance,
		EvaluationTypeCreatedAt:    ent.EvaluationTypeCreatedAt,
		EvaluationTypeUpdatedAt:    ent.EvaluationTypeUpdatedAt,
	}
}

func FromModels(list []model.EvaluationTypeModel) []EvaluationTypeResponseDTO {
	out := make([]EvaluationTypeResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
