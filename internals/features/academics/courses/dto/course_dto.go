// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"strings"
	"time"

	"aula_backend/internals/features/academics/courses/model"

	"github.com/google/uuid"
)

// =======================
// Request DTO
// =======================

type CourseCreateDTO struct {
	CourseName     string  `json:"course_name" validate:"required,min=2,max=120"`
	CourseLevel    string  `json:"course_level" validate:"required,max=40"`
	CourseParallel *string `json:"course_parallel,omitempty" validate:"omitempty,max=8"`
	CourseShift    *string `json:"course_shift,omitempty" validate:"omitempty,oneof=morning afternoon evening"`
}

type CourseUpdateDTO struct {
	CourseName     *string `json:"course_name,omitempty" validate:"omitempty,min=2,max=120"`
	CourseLevel    *string `json:"course_level,omitempty" validate:"omitempty,max=40"`
	CourseParallel *string `json:"course_parallel,omitempty" validate:"omitempty,max=8"`
	CourseShift    *string `json:"course_shift,omitempty" validate:"omitempty,oneof=morning afternoon evening"`
}

type CourseAttachSubjectDTO struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
}

// =======================
// Response DTO
// =======================

type CourseResponseDTO struct {
	CourseID        uuid.UUID `json:"course_id"`
	CourseName      string    `json:"course_name"`
	CourseLevel     string    `json:"course_level"`
	CourseParallel  *string   `json:"course_parallel,omitempty"`
	CourseShift     string    `json:"course_shift"`
	CourseCreatedAt time.Time `json:"course_created_at"`
	CourseUpdatedAt time.Time `json:"course_updated_at"`
}

type CourseSubjectResponseDTO struct {
	CourseSubjectID        uuid.UUID `json:"course_subject_id"`
	CourseSubjectCourseID  uuid.UUID `json:"course_subject_course_id"`
	CourseSubjectSubjectID uuid.UUID `json:"course_subject_subject_id"`
	CourseSubjectCreatedAt time.Time `json:"course_subject_created_at"`
}

// =======================
// Helpers
// =======================

func (p *CourseCreateDTO) Normalize() {
	p.CourseName = strings.TrimSpace(p.CourseName)
	p.CourseLevel = strings.TrimSpace(p.CourseLevel)
}

func (p *CourseCreateDTO) ToModel() model.CourseModel {
	shift := "morning"
	if p.CourseShift != nil {
		shift = *p.CourseShift
	}
	return model.CourseModel{
		CourseName:     p.CourseName,
		CourseLevel:    p.CourseLevel,
		CourseParallel: p.CourseParallel,
		CourseShift:    shift,
	}
}

func (u *CourseUpdateDTO) ApplyUpdates(ent *model.CourseModel) {
	if u.CourseName != nil {
		ent.CourseName = strings.TrimSpace(*u.CourseName)
	}
	if u.CourseLevel != nil {
		ent.CourseLevel = strings.TrimSpace(*u.CourseLevel)
	}
	if u.CourseParallel != nil {
		ent.CourseParallel = u.CourseParallel
	}
	if u.CourseShift != nil {
		ent.CourseShift = *u.CourseShift
	}
}

func FromModel(ent model.CourseModel) CourseResponseDTO {
	return CourseResponseDTO{
		CourseID:        ent.CourseID,
		CourseName:      ent.CourseName,
		CourseLevel:     ent.CourseLevel,
		CourseParallel:  ent.CourseParallel,
		CourseShift:     ent.CourseShift,
		CourseCreatedAt: ent.CourseCreatedAt,
		CourseUpdatedAt: ent.CourseUpdatedAt,
	}
}

func FromModels(list []model.CourseModel) []CourseResponseDTO {
	out := make([]CourseResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

func FromCourseSubject(ent model.CourseSubjectModel) CourseSubjectResponseDTO {
	return CourseSubjectResponseDTO{
		CourseSubjectID:        ent.CourseSubjectID,
		CourseSubjectCourseID:  ent.CourseSubjectCourseID,
		CourseSubjectSubjectID: ent.CourseSubjectSubjectID,
		CourseSubjectCreatedAt: ent.CourseSubjectCreatedAt,
	}
}
