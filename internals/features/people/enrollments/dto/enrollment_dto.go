// file: internals/features/people/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"aula_backend/internals/features/people/enrollments/model"

	"github.com/google/uuid"
)

type EnrollmentCreateDTO struct {
	EnrollmentStudentID uuid.UUID  `json:"enrollment_student_id" validate:"required"`
	EnrollmentCycleID   uuid.UUID  `json:"enrollment_cycle_id" validate:"required"`
	EnrollmentCourseID  uuid.UUID  `json:"enrollment_course_id" validate:"required"`
	EnrollmentDate      *time.Time `json:"enrollment_date,omitempty"`
}

type EnrollmentUpdateDTO struct {
	EnrollmentCourseID *uuid.UUID `json:"enrollment_course_id,omitempty"`
	EnrollmentStatus   *string    `json:"enrollment_status,omitempty" validate:"omitempty,oneof=active withdrawn promoted"`
}

type EnrollmentResponseDTO struct {
	EnrollmentID        uuid.UUID `json:"enrollment_id"`
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id"`
	EnrollmentCycleID   uuid.UUID `json:"enrollment_cycle_id"`
	EnrollmentCourseID  uuid.UUID `json:"enrollment_course_id"`
	EnrollmentStatus    string    `json:"enrollment_status"`
	EnrollmentDate      time.Time `json:"enrollment_date"`
	EnrollmentCreatedAt time.Time `json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time `json:"enrollment_updated_at"`
}

func (p *EnrollmentCreateDTO) ToModel() model.EnrollmentModel {
	ent := model.EnrollmentModel{
		EnrollmentStudentID: p.EnrollmentStudentID,
		EnrollmentCycleID:   p.EnrollmentCycleID,
		EnrollmentCourseID:  p.EnrollmentCourseID,
		EnrollmentStatus:    "active",
	}
	if p.EnrollmentDate != nil {
		ent.EnrollmentDate = *p.EnrollmentDate
	}
	return ent
}

func (u *EnrollmentUpdateDTO) ApplyUpdates(ent *model.EnrollmentModel) {
	if u.EnrollmentCourseID != nil {
		ent.EnrollmentCourseID = *u.EnrollmentCourseID
	}
	if u.EnrollmentStatus != nil {
		ent.EnrollmentStatus = *u.EnrollmentStatus
	}
}

func FromModel(ent model.EnrollmentModel) EnrollmentResponseDTO {
	return EnrollmentResponseDTO{
		EnrollmentID:        ent.EnrollmentID,
		EnrollmentStudentID: ent.EnrollmentStudentID,
		EnrollmentCycleID:   ent.EnrollmentCycleID,
		EnrollmentCourseID:  ent.EnrollmentCourseID,
		EnrollmentStatus:    ent.EnrollmentStatus,
		EnrollmentDate:      ent.EnrollmentDate,
		EnrollmentCreatedAt: ent.EnrollmentCreatedAt,
		EnrollmentUpdatedAt: ent.EnrollmentUpdatedAt,
	}
}

func FromModels(list []model.EnrollmentModel) []EnrollmentResponseDTO {
	out := make([]EnrollmentResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
