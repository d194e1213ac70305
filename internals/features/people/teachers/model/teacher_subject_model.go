// file: internals/features/people/teachers/model/teacher_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherSubjectModel records which subjects a teacher is assigned to
// for a given course. Weight policies and evaluations reference this
// assignment indirectly through the (teacher, subject) pair.
type TeacherSubjectModel struct {
	TeacherSubjectID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_subject_id" json:"teacher_subject_id"`
	TeacherSubjectTeacherID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_subject;column:teacher_subject_teacher_id" json:"teacher_subject_teacher_id"`
	TeacherSubjectSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_subject;column:teacher_subject_subject_id" json:"teacher_subject_subject_id"`
	TeacherSubjectCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_subject;column:teacher_subject_course_id" json:"teacher_subject_course_id"`

	TeacherSubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:teacher_subject_created_at" json:"teacher_subject_created_at"`
	TeacherSubjectDeletedAt gorm.DeletedAt `gorm:"column:teacher_subject_deleted_at;index" json:"teacher_subject_deleted_at,omitempty"`
}

func (TeacherSubjectModel) TableName() string { return "teacher_subjects" }
