// file: internals/features/academics/courses/model/course_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseSubjectModel attaches a subject to a course's study plan.
type CourseSubjectModel struct {
	CourseSubjectID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_subject_id" json:"course_subject_id"`
	CourseSubjectCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_course_subject;column:course_subject_course_id" json:"course_subject_course_id"`
	CourseSubjectSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_course_subject;column:course_subject_subject_id" json:"course_subject_subject_id"`

	CourseSubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:course_subject_created_at" json:"course_subject_created_at"`
	CourseSubjectDeletedAt gorm.DeletedAt `gorm:"column:course_subject_deleted_at;index" json:"course_subject_deleted_at,omitempty"`
}

func (CourseSubjectModel) TableName() string { return "course_subjects" }
