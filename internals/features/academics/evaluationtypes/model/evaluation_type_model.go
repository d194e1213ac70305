// file: internals/features/academics/evaluationtypes/model/evaluation_type_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EvaluationTypeModel is one entry of the evaluation-type catalog
// (Exams, Homework, Attendance, ...). The attendance flag switches the
// aggregation engine to presence-rate scoring for that type.
type EvaluationTypeModel struct {
	// ============ PK ============
	EvaluationTypeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:evaluation_type_id" json:"evaluation_type_id"`

	// ============ Identity ============
	EvaluationTypeName         string `gorm:"type:varchar(80);not null;uniqueIndex;column:evaluation_type_name" json:"evaluation_type_name"`
	EvaluationTypeIsAttendance bool   `gorm:"not null;default:false;column:evaluation_type_is_attendance" json:"evaluation_type_is_attendance"`

	// ============ Audit ============
	EvaluationTypeCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:evaluation_type_created_at" json:"evaluation_type_created_at"`
	EvaluationTypeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:evaluation_type_updated_at" json:"evaluation_type_updated_at"`
	EvaluationTypeDeletedAt gorm.DeletedAt `gorm:"column:evaluation_type_deleted_at;index" json:"evaluation_type_deleted_at,omitempty"`
}

func (EvaluationTypeModel) TableName() string { return "evaluation_types" }

func (m *EvaluationTypeModel) BeforeSave(tx *gorm.DB) error {
	m.EvaluationTypeName = strings.TrimSpace(m.EvaluationTypeName)
	return nil
}
