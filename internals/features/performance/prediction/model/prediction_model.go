// file: internals/features/performance/prediction/model/prediction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PredictionModel stores one persisted forecast per student, subject
// and period; recomputing overwrites the existing row.
type PredictionModel struct {
	PredictionID uuid.UUID `gorm:"column:prediction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"prediction_id"`

	PredictionStudentID uuid.UUID `gorm:"column:prediction_student_id;type:uuid;not null;uniqueIndex:uq_prediction_student_subject_period,priority:1" json:"prediction_student_id"`
	PredictionSubjectID uuid.UUID `gorm:"column:prediction_subject_id;type:uuid;not null;uniqueIndex:uq_prediction_student_subject_period,priority:2" json:"prediction_subject_id"`
	PredictionPeriodID  uuid.UUID `gorm:"column:prediction_period_id;type:uuid;not null;uniqueIndex:uq_prediction_student_subject_period,priority:3" json:"prediction_period_id"`

	PredictionForecast   float64 `gorm:"column:prediction_forecast;type:numeric(5,2);not null" json:"prediction_forecast"`
	PredictionCategory   string  `gorm:"column:prediction_category;type:varchar(20);not null" json:"prediction_category"`
	PredictionConfidence float64 `gorm:"column:prediction_confidence;type:numeric(6,4);not null" json:"prediction_confidence"`

	PredictionRiskLevel  string `gorm:"column:prediction_risk_level;type:varchar(10);not null;index:idx_prediction_risk_level" json:"prediction_risk_level"`
	PredictionRiskPoints int    `gorm:"column:prediction_risk_points;not null" json:"prediction_risk_points"`

	PredictionProbabilities   datatypes.JSON `gorm:"column:prediction_probabilities;type:jsonb" json:"prediction_probabilities"`
	PredictionRecommendations pq.StringArray `gorm:"column:prediction_recommendations;type:text[]" json:"prediction_recommendations"`

	// inputs the prediction was produced from, kept for auditability
	PredictionPriorAverage  float64 `gorm:"column:prediction_prior_average;type:numeric(5,2);not null" json:"prediction_prior_average"`
	PredictionAttendance    float64 `gorm:"column:prediction_attendance;type:numeric(5,2);not null" json:"prediction_attendance"`
	PredictionParticipation float64 `gorm:"column:prediction_participation;type:numeric(5,2);not null" json:"prediction_participation"`

	PredictionCreatedAt time.Time      `gorm:"column:prediction_created_at;autoCreateTime" json:"prediction_created_at"`
	PredictionUpdatedAt time.Time      `gorm:"column:prediction_updated_at;autoUpdateTime" json:"prediction_updated_at"`
	PredictionDeletedAt gorm.DeletedAt `gorm:"column:prediction_deleted_at;index" json:"-"`
}

func (PredictionModel) TableName() string {
	return "performance_predictions"
}
