// file: internals/features/people/parents/dto/parent_dto.go
package dto

import (
	"strings"
	"time"

	"aula_backend/internals/features/people/parents/model"

	"github.com/google/uuid"
)

type ParentCreateDTO struct {
	ParentFirstName string  `json:"parent_first_name" validate:"required,min=2,max=120"`
	ParentLastName  string  `json:"parent_last_name" validate:"required,min=2,max=120"`
	ParentPhone     *string `json:"parent_phone,omitempty" validate:"omitempty,max=24"`
	ParentEmail     string  `json:"parent_email" validate:"required,email,max=120"`
	ParentPassword  string  `json:"parent_password" validate:"required,min=8"`
}

type ParentUpdateDTO struct {
	ParentFirstName *string `json:"parent_first_name,omitempty" validate:"omitempty,min=2,max=120"`
	ParentLastName  *string `json:"parent_last_name,omitempty" validate:"omitempty,min=2,max=120"`
	ParentPhone     *string `json:"parent_phone,omitempty" validate:"omitempty,max=24"`
	ParentEmail     *string `json:"parent_email,omitempty" validate:"omitempty,email,max=120"`
	ParentPassword  *string `json:"parent_password,omitempty" validate:"omitempty,min=8"`
}

type ParentLinkStudentDTO struct {
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	Relationship *string   `json:"relationship,omitempty" validate:"omitempty,oneof=father mother guardian"`
}

type ParentResponseDTO struct {
	ParentID        uuid.UUID `json:"parent_id"`
	ParentFirstName string    `json:"parent_first_name"`
	ParentLastName  string    `json:"parent_last_name"`
	ParentPhone     *string   `json:"parent_phone,omitempty"`
	ParentEmail     string    `json:"parent_email"`
	ParentCreatedAt time.Time `json:"parent_created_at"`
	ParentUpdatedAt time.Time `json:"parent_updated_at"`
}

type ParentStudentResponseDTO struct {
	ParentStudentID           uuid.UUID `json:"parent_student_id"`
	ParentStudentParentID     uuid.UUID `json:"parent_student_parent_id"`
	ParentStudentStudentID    uuid.UUID `json:"parent_student_student_id"`
	ParentStudentRelationship string    `json:"parent_student_relationship"`
	ParentStudentCreatedAt    time.Time `json:"parent_student_created_at"`
}

func (p *ParentCreateDTO) Normalize() {
	p.ParentFirstName = strings.TrimSpace(p.ParentFirstName)
	p.ParentLastName = strings.TrimSpace(p.ParentLastName)
	p.ParentEmail = strings.ToLower(strings.TrimSpace(p.ParentEmail))
}

func (p *ParentCreateDTO) ToModel() model.ParentModel {
	pw := p.ParentPassword
	return model.ParentModel{
		ParentFirstName: p.ParentFirstName,
		ParentLastName:  p.ParentLastName,
		ParentPhone:     p.ParentPhone,
		ParentEmail:     p.ParentEmail,
		ParentPassword:  &pw,
	}
}

func (u *ParentUpdateDTO) ApplyUpdates(ent *model.ParentModel) {
	if u.ParentFirstName != nil {
		ent.ParentFirstName = strings.TrimSpace(*u.ParentFirstName)
	}
	if u.ParentLastName != nil {
		ent.ParentLastName = strings.TrimSpace(*u.ParentLastName)
	}
	if u.ParentPhone != nil {
		ent.ParentPhone = u.ParentPhone
	}
	if u.ParentEmail != nil {
		ent.ParentEmail = strings.ToLower(strings.TrimSpace(*u.ParentEmail))
	}
	if u.ParentPassword != nil {
		ent.ParentPassword = u.ParentPassword
	}
}

func FromModel(ent model.ParentModel) ParentResponseDTO {
	return ParentResponseDTO{
		ParentID:        ent.ParentID,
		ParentFirstName: ent.ParentFirstName,
		ParentLastName:  ent.ParentLastName,
		ParentPhone:     ent.ParentPhone,
		ParentEmail:     ent.ParentEmail,
		ParentCreatedAt: ent.ParentCreatedAt,
		ParentUpdatedAt: ent.ParentUpdatedAt,
	}
}

func FromModels(list []model.ParentModel) []ParentResponseDTO {
	out := make([]ParentResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

func FromParentStudent(ent model.ParentStudentModel) ParentStudentResponseDTO {
	return ParentStudentResponseDTO{
		ParentStudentID:           ent.ParentStudentID,
		ParentStudentParentID:     ent.ParentStudentParentID,
		ParentStudentStudentID:    ent.ParentStudentStudentID,
		ParentStudentRelationship: ent.ParentStudentRelationship,
		ParentStudentCreatedAt:    ent.ParentStudentCreatedAt,
	}
}
