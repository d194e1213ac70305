// file: internals/features/people/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"aula_backend/internals/features/people/students/model"

	"github.com/google/uuid"
)

type StudentCreateDTO struct {
	StudentFirstName      string     `json:"student_first_name" validate:"required,min=2,max=120"`
	StudentLastName       string     `json:"student_last_name" validate:"required,min=2,max=120"`
	StudentDocumentNumber *string    `json:"student_document_number,omitempty" validate:"omitempty,max=24"`
	StudentBirthDate      *time.Time `json:"student_birth_date,omitempty"`
	StudentGender         *string    `json:"student_gender,omitempty" validate:"omitempty,oneof=male female other"`
	StudentEmail          *string    `json:"student_email,omitempty" validate:"omitempty,email,max=120"`
	StudentPassword       *string    `json:"student_password,omitempty" validate:"omitempty,min=8"`
}

type StudentUpdateDTO struct {
	StudentFirstName      *string    `json:"student_first_name,omitempty" validate:"omitempty,min=2,max=120"`
	StudentLastName       *string    `json:"student_last_name,omitempty" validate:"omitempty,min=2,max=120"`
	StudentDocumentNumber *string    `json:"student_document_number,omitempty" validate:"omitempty,max=24"`
	StudentBirthDate      *time.Time `json:"student_birth_date,omitempty"`
	StudentGender         *string    `json:"student_gender,omitempty" validate:"omitempty,oneof=male female other"`
	StudentEmail          *string    `json:"student_email,omitempty" validate:"omitempty,email,max=120"`
	StudentPassword       *string    `json:"student_password,omitempty" validate:"omitempty,min=8"`
	StudentIsActive       *bool      `json:"student_is_active,omitempty"`
}

type StudentResponseDTO struct {
	StudentID             uuid.UUID  `json:"student_id"`
	StudentFirstName      string     `json:"student_first_name"`
	StudentLastName       string     `json:"student_last_name"`
	StudentDocumentNumber *string    `json:"student_document_number,omitempty"`
	StudentBirthDate      *time.Time `json:"student_birth_date,omitempty"`
	StudentGender         *string    `json:"student_gender,omitempty"`
	StudentEmail          *string    `json:"student_email,omitempty"`
	StudentIsActive       bool       `json:"student_is_active"`
	StudentCreatedAt      time.Time  `json:"student_created_at"`
	StudentUpdatedAt      time.Time  `json:"student_updated_at"`
}

func (p *StudentCreateDTO) Normalize() {
	p.StudentFirstName = strings.TrimSpace(p.StudentFirstName)
	p.StudentLastName = strings.TrimSpace(p.StudentLastName)
}

func (p *StudentCreateDTO) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentFirstName:      p.StudentFirstName,
		StudentLastName:       p.StudentLastName,
		StudentDocumentNumber: p.StudentDocumentNumber,
		StudentBirthDate:      p.StudentBirthDate,
		StudentGender:         p.StudentGender,
		StudentEmail:          p.StudentEmail,
		StudentPassword:       p.StudentPassword,
		StudentIsActive:       true,
	}
}

func (u *StudentUpdateDTO) ApplyUpdates(ent *model.StudentModel) {
	if u.StudentFirstName != nil {
		ent.StudentFirstName = strings.TrimSpace(*u.StudentFirstName)
	}
	if u.StudentLastName != nil {
		ent.StudentLastName = strings.TrimSpace(*u.StudentLastName)
	}
	if u.StudentDocumentNumber != nil {
		ent.StudentDocumentNumber = u.StudentDocumentNumber
	}
	if u.StudentBirthDate != nil {
		ent.StudentBirthDate = u.StudentBirthDate
	}
	if u.StudentGender != nil {
		ent.StudentGender = u.StudentGender
	}
	if u.StudentEmail != nil {
		ent.StudentEmail = u.StudentEmail
	}
	if u.StudentPassword != nil {
		ent.StudentPassword = u.StudentPassword
	}
	if u.StudentIsActive != nil {
		ent.StudentIsActive = *u.StudentIsActive
	}
}

func FromModel(ent model.StudentModel) StudentResponseDTO {
	return StudentResponseDTO{
		StudentID:             ent.StudentID,
		StudentFirstName:      ent.StudentFirstName,
		StudentLastName:       ent.StudentLastName,
		StudentDocumentNumber: ent.StudentDocumentNumber,
		StudentBirthDate:      ent.StudentBirthDate,
		StudentGender:         ent.StudentGender,
		StudentEmail:          ent.StudentEmail,
		StudentIsActive:       ent.StudentIsActive,
		StudentCreatedAt:      ent.StudentCreatedAt,
		StudentUpdatedAt:      ent.StudentUpdatedAt,
	}
}

func FromModels(list []model.StudentModel) []StudentResponseDTO {
	out := make([]StudentResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
