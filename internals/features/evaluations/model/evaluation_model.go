// file: internals/features/evaluations/model/evaluation_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EvaluationModel is one recorded score: a student's result for one
// evaluation type in one subject and period. Attendance rows use 1 for
// present and 0 for absent; every other type carries a 0..100 score.
type EvaluationModel struct {
	// ============ PK ============
	EvaluationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:evaluation_id" json:"evaluation_id"`

	// ============ FKs ============
	EvaluationStudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_evaluation_student_subject_period;column:evaluation_student_id" json:"evaluation_student_id"`
	EvaluationSubjectID uuid.UUID `gorm:"type:uuid;not null;index:idx_evaluation_student_subject_period;column:evaluation_subject_id" json:"evaluation_subject_id"`
	EvaluationPeriodID  uuid.UUID `gorm:"type:uuid;not null;index:idx_evaluation_student_subject_period;column:evaluation_period_id" json:"evaluation_period_id"`
	EvaluationTypeID    uuid.UUID `gorm:"type:uuid;not null;index;column:evaluation_type_id" json:"evaluation_type_id"`
	EvaluationTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:evaluation_teacher_id" json:"evaluation_teacher_id"`

	// ============ Value ============
	EvaluationValue       float64   `gorm:"type:numeric(5,2);not null;column:evaluation_value" json:"evaluation_value"`
	EvaluationDate        time.Time `gorm:"type:date;not null;column:evaluation_date" json:"evaluation_date"`
	EvaluationDescription *string   `gorm:"type:text;column:evaluation_description" json:"evaluation_description,omitempty"`

	// ============ Audit / Soft delete ============
	EvaluationCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:evaluation_created_at" json:"evaluation_created_at"`
	EvaluationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:evaluation_updated_at" json:"evaluation_updated_at"`
	EvaluationDeletedAt gorm.DeletedAt `gorm:"column:evaluation_deleted_at;index" json:"evaluation_deleted_at,omitempty"`
}

func (EvaluationModel) TableName() string { return "evaluations" }

func (m *EvaluationModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: score within grading scale
	if m.EvaluationValue < 0 || m.EvaluationValue > 100 {
		return errors.New("evaluation_value must be between 0 and 100")
	}
	if m.EvaluationDescription != nil {
		d := strings.TrimSpace(*m.EvaluationDescription)
		if d == "" {
			m.EvaluationDescription = nil
		} else {
			m.EvaluationDescription = &d
		}
	}
	if m.EvaluationDate.IsZero() {
		m.EvaluationDate = time.Now().UTC()
	}
	return nil
}
