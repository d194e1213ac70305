// file: internals/features/people/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"aula_backend/internals/features/people/teachers/model"

	"github.com/google/uuid"
)

type TeacherCreateDTO struct {
	TeacherFirstName string  `json:"teacher_first_name" validate:"required,min=2,max=120"`
	TeacherLastName  string  `json:"teacher_last_name" validate:"required,min=2,max=120"`
	TeacherSpecialty *string `json:"teacher_specialty,omitempty" validate:"omitempty,max=255"`
	TeacherEmail     string  `json:"teacher_email" validate:"required,email,max=120"`
	TeacherPassword  string  `json:"teacher_password" validate:"required,min=8"`
}

type TeacherUpdateDTO struct {
	TeacherFirstName *string `json:"teacher_first_name,omitempty" validate:"omitempty,min=2,max=120"`
	TeacherLastName  *string `json:"teacher_last_name,omitempty" validate:"omitempty,min=2,max=120"`
	TeacherSpecialty *string `json:"teacher_specialty,omitempty" validate:"omitempty,max=255"`
	TeacherEmail     *string `json:"teacher_email,omitempty" validate:"omitempty,email,max=120"`
	TeacherPassword  *string `json:"teacher_password,omitempty" validate:"omitempty,min=8"`
	TeacherIsActive  *bool   `json:"teacher_is_active,omitempty"`
}

type TeacherAssignSubjectDTO struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
}

type TeacherResponseDTO struct {
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherFirstName string    `json:"teacher_first_name"`
	TeacherLastName  string    `json:"teacher_last_name"`
	TeacherSpecialty *string   `json:"teacher_specialty,omitempty"`
	TeacherEmail     string    `json:"teacher_email"`
	TeacherIsActive  bool      `json:"teacher_is_active"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `json:"teacher_updated_at"`
}

type TeacherSubjectResponseDTO struct {
	TeacherSubjectID        uuid.UUID `json:"teacher_subject_id"`
	TeacherSubjectTeacherID uuid.UUID `json:"teacher_subject_teacher_id"`
	TeacherSubjectSubjectID uuid.UUID `json:"teacher_subject_subject_id"`
	TeacherSubjectCourseID  uuid.UUID `json:"teacher_subject_course_id"`
	TeacherSubjectCreatedAt time.Time `json:"teacher_subject_created_at"`
}

func (p *TeacherCreateDTO) Normalize() {
	p.TeacherFirstName = strings.TrimSpace(p.TeacherFirstName)
	p.TeacherLastName = strings.TrimSpace(p.TeacherLastName)
	p.TeacherEmail = strings.ToLower(strings.TrimSpace(p.TeacherEmail))
}

func (p *TeacherCreateDTO) ToModel() model.TeacherModel {
	pw := p.TeacherPassword
	return model.TeacherModel{
		TeacherFirstName: p.TeacherFirstName,
		TeacherLastName:  p.TeacherLastName,
		TeacherSpecialty: p.TeacherSpecialty,
		TeacherEmail:     p.TeacherEmail,
		TeacherPassword:  &pw,
		TeacherIsActive:  true,
	}
}

func (u *TeacherUpdateDTO) ApplyUpdates(ent *model.TeacherModel) {
	if u.TeacherFirstName != nil {
		ent.TeacherFirstName = strings.TrimSpace(*u.TeacherFirstName)
	}
	if u.TeacherLastName != nil {
		ent.TeacherLastName = strings.TrimSpace(*u.TeacherLastName)
	}
	if u.TeacherSpecialty != nil {
		ent.TeacherSpecialty = u.TeacherSpecialty
	}
	if u.TeacherEmail != nil {
		ent.TeacherEmail = strings.ToLower(strings.TrimSpace(*u.TeacherEmail))
	}
	if u.TeacherPassword != nil {
		ent.TeacherPassword = u.TeacherPassword
	}
	if u.TeacherIsActive != nil {
		ent.TeacherIsActive = *u.TeacherIsActive
	}
}

func FromModel(ent model.TeacherModel) TeacherResponseDTO {
	return TeacherResponseDTO{
		TeacherID:        ent.TeacherID,
		TeacherFirstName: ent.TeacherFirstName,
		TeacherLastName:  ent.TeacherLastName,
		TeacherSpecialty: ent.TeacherSpecialty,
		TeacherEmail:     ent.TeacherEmail,
		TeacherIsActive:  ent.TeacherIsActive,
		TeacherCreatedAt: ent.TeacherCreatedAt,
		TeacherUpdatedAt: ent.TeacherUpdatedAt,
	}
}

func FromModels(list []model.TeacherModel) []TeacherResponseDTO {
	out := make([]TeacherResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

func FromTeacherSubject(ent model.TeacherSubjectModel) TeacherSubjectResponseDTO {
	return TeacherSubjectResponseDTO{
		TeacherSubjectID:        ent.TeacherSubjectID,
		TeacherSubjectTeacherID: ent.TeacherSubjectTeacherID,
		TeacherSubjectSubjectID: ent.TeacherSubjectSubjectID,
		TeacherSubjectCourseID:  ent.TeacherSubjectCourseID,
		TeacherSubjectCreatedAt: ent.TeacherSubjectCreatedAt,
	}
}
