// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModel is a classroom group ("1ro A", morning shift). Students
// enroll into a course per cycle; subjects are attached via the
// course_subjects join table.
type CourseModel struct {
	// ============ PK ============
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	// ============ Identity ============
	CourseName string `gorm:"type:text;not null;column:course_name" json:"course_name"`
	// Example level: "Primaria" | "Secundaria"
	CourseLevel    string  `gorm:"type:varchar(40);not null;column:course_level" json:"course_level"`
	CourseParallel *string `gorm:"type:varchar(8);column:course_parallel" json:"course_parallel,omitempty"`
	// morning | afternoon | evening
	CourseShift string `gorm:"type:varchar(16);not null;default:'morning';column:course_shift" json:"course_shift"`

	// ============ Audit / Soft delete ============
	CourseCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:course_updated_at" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeSave(tx *gorm.DB) error {
	m.CourseName = strings.TrimSpace(m.CourseName)
	m.CourseLevel = strings.TrimSpace(m.CourseLevel)
	if m.CourseParallel != nil {
		p := strings.ToUpper(strings.TrimSpace(*m.CourseParallel))
		if p == "" {
			m.CourseParallel = nil
		} else {
			m.CourseParallel = &p
		}
	}
	return nil
}
