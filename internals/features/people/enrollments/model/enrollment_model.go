// file: internals/features/people/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel places a student in a course for one cycle. A student
// holds at most one enrollment per cycle.
type EnrollmentModel struct {
	// ============ PK ============
	EnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`

	// ============ Natural key ============
	EnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_student_cycle;column:enrollment_student_id" json:"enrollment_student_id"`
	EnrollmentCycleID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_student_cycle;column:enrollment_cycle_id" json:"enrollment_cycle_id"`
	EnrollmentCourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_course_id" json:"enrollment_course_id"`

	// active | withdrawn | promoted
	EnrollmentStatus string    `gorm:"type:varchar(16);not null;default:'active';column:enrollment_status" json:"enrollment_status"`
	EnrollmentDate   time.Time `gorm:"type:timestamptz;not null;column:enrollment_date" json:"enrollment_date"`

	// ============ Audit / Soft delete ============
	EnrollmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:enrollment_created_at" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:enrollment_updated_at" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentDate.IsZero() {
		m.EnrollmentDate = time.Now().UTC()
	}
	return nil
}
