// file: internals/features/performance/aggregate/model/final_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FinalResultModel is the persisted outcome of one aggregation run:
// the weighted final grade of a student in one subject for one period,
// with the per-type breakdown snapshotted as JSONB. The natural key is
// (student, subject, period); recomputation updates in place.
type FinalResultModel struct {
	// ============ PK ============
	FinalResultID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:final_result_id" json:"final_result_id"`

	// ============ Natural key ============
	FinalResultStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_final_result;column:final_result_student_id" json:"final_result_student_id"`
	FinalResultSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_final_result;column:final_result_subject_id" json:"final_result_subject_id"`
	FinalResultPeriodID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_final_result;column:final_result_period_id" json:"final_result_period_id"`

	// ============ Outcome ============
	FinalResultScore float64 `gorm:"type:numeric(5,2);not null;column:final_result_score" json:"final_result_score"`
	// Sum of the weights that actually contributed; reported as-is, the
	// score is never normalized by it.
	FinalResultWeightTotal float64        `gorm:"type:numeric(5,2);not null;default:0;column:final_result_weight_total" json:"final_result_weight_total"`
	FinalResultBreakdown   datatypes.JSON `gorm:"type:jsonb;column:final_result_breakdown" json:"final_result_breakdown,omitempty"`

	FinalResultComputedAt time.Time `gorm:"type:timestamptz;not null;column:final_result_computed_at" json:"final_result_computed_at"`

	// ============ Audit ============
	FinalResultCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:final_result_created_at" json:"final_result_created_at"`
	FinalResultUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:final_result_updated_at" json:"final_result_updated_at"`
	FinalResultDeletedAt gorm.DeletedAt `gorm:"column:final_result_deleted_at;index" json:"final_result_deleted_at,omitempty"`
}

func (FinalResultModel) TableName() string { return "final_results" }
