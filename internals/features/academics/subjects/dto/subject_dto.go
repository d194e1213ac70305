// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"aula_backend/internals/features/academics/subjects/model"

	"github.com/google/uuid"
)

type SubjectCreateDTO struct {
	SubjectName        string  `json:"subject_name" validate:"required,min=2,max=120"`
	SubjectCode        *string `json:"subject_code,omitempty" validate:"omitempty,max=24"`
	SubjectDescription *string `json:"subject_description,omitempty"`
}

type SubjectUpdateDTO struct {
	SubjectName        *string `json:"subject_name,omitempty" validate:"omitempty,min=2,max=120"`
	SubjectCode        *string `json:"subject_code,omitempty" validate:"omitempty,max=24"`
	SubjectDescription *string `json:"subject_description,omitempty"`
}

type SubjectResponseDTO struct {
	SubjectID          uuid.UUID `json:"subject_id"`
	SubjectName        string    `json:"subject_name"`
	SubjectCode        *string   `json:"subject_code,omitempty"`
	SubjectDescription *string   `json:"subject_description,omitempty"`
	SubjectCreatedAt   time.Time `json:"subject_created_at"`
	SubjectUpdatedAt   time.Time `json:"subject_updated_at"`
}

func (p *SubjectCreateDTO) Normalize() {
	p.SubjectName = strings.TrimSpace(p.SubjectName)
}

func (p *SubjectCreateDTO) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectName:        p.SubjectName,
		SubjectCode:        p.SubjectCode,
		SubjectDescription: p.SubjectDescription,
	}
}

func (u *SubjectUpdateDTO) ApplyUpdates(ent *model.SubjectModel) {
	if u.SubjectName != nil {
		ent.SubjectName = strings.TrimSpace(*u.SubjectName)
	}
	if u.SubjectCode != nil {
		ent.SubjectCode = u.SubjectCode
	}
	if u.SubjectDescription != nil {
		ent.SubjectDescription = u.SubjectDescription
	}
}

func FromModel(ent model.SubjectModel) SubjectResponseDTO {
	return SubjectResponseDTO{
		SubjectID:          ent.SubjectID,
		SubjectName:        ent.SubjectName,
		SubjectCode:        ent.SubjectCode,
		SubjectDescription: ent.SubjectDescription,
		SubjectCreatedAt:   ent.SubjectCreatedAt,
		SubjectUpdatedAt:   ent.SubjectUpdatedAt,
	}
}

func FromModels(list []model.SubjectModel) []SubjectResponseDTO {
	out := make([]SubjectResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
