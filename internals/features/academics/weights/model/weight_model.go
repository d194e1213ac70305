// file: internals/features/academics/weights/model/weight_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightModel is one weight-policy row: how much an evaluation type
// counts (in percent) for a given teacher, subject and cycle. A missing
// row means the type does not participate at all, which is not the same
// as a stored weight of zero.
type WeightModel struct {
	// ============ PK ============
	WeightID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:weight_id" json:"weight_id"`

	// ============ Natural key ============
	WeightTeacherID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_weight_policy;column:weight_teacher_id" json:"weight_teacher_id"`
	WeightSubjectID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_weight_policy;column:weight_subject_id" json:"weight_subject_id"`
	WeightCycleID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_weight_policy;column:weight_cycle_id" json:"weight_cycle_id"`
	WeightEvaluationTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_weight_policy;column:weight_evaluation_type_id" json:"weight_evaluation_type_id"`

	// ============ Value ============
	WeightPercentage float64 `gorm:"type:numeric(5,2);not null;column:weight_percentage" json:"weight_percentage"`

	// ============ Audit ============
	WeightCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:weight_created_at" json:"weight_created_at"`
	WeightUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:weight_updated_at" json:"weight_updated_at"`
	WeightDeletedAt gorm.DeletedAt `gorm:"column:weight_deleted_at;index" json:"weight_deleted_at,omitempty"`
}

func (WeightModel) TableName() string { return "evaluation_type_weights" }

func (m *WeightModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: weight_percentage between 0 and 100
	if m.WeightPercentage < 0 || m.WeightPercentage > 100 {
		return errors.New("weight_percentage must be between 0 and 100")
	}
	return nil
}
