// file: internals/features/performance/prediction/dto/prediction_dto.go
package dto

import (
	"time"

	"aula_backend/internals/features/performance/prediction/model"
	"aula_backend/internals/features/performance/prediction/service"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// =======================
// Request DTO
// =======================

// ManualPredictDTO runs the model on caller-supplied features without
// touching stored grades.
type ManualPredictDTO struct {
	PriorAverage  float64 `json:"prior_average" validate:"min=0,max=100"`
	Attendance    float64 `json:"attendance" validate:"min=0,max=100"`
	Participation float64 `json:"participation" validate:"min=0,max=100"`
}

func (p ManualPredictDTO) ToInput() service.Input {
	return service.Input{
		PriorAverage:  p.PriorAverage,
		Attendance:    p.Attendance,
		Participation: p.Participation,
	}
}

// StudentPredictDTO predicts from stored data and persists the result.
// Attendance and participation fall back to defaults when the student
// has no records of those types yet.
type StudentPredictDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	PeriodID  uuid.UUID `json:"period_id" validate:"required"`
}

// CoursePredictDTO runs a student prediction for every active
// enrollment of the course in the period's cycle.
type CoursePredictDTO struct {
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	PeriodID  uuid.UUID `json:"period_id" validate:"required"`
}

// =======================
// Response DTO
// =======================

type PredictionResponseDTO struct {
	PredictionID        uuid.UUID `json:"prediction_id"`
	PredictionStudentID uuid.UUID `json:"prediction_student_id"`
	PredictionSubjectID uuid.UUID `json:"prediction_subject_id"`
	PredictionPeriodID  uuid.UUID `json:"prediction_period_id"`

	PredictionForecast   float64 `json:"prediction_forecast"`
	PredictionCategory   string  `json:"prediction_category"`
	PredictionConfidence float64 `json:"prediction_confidence"`

	PredictionRiskLevel  string `json:"prediction_risk_level"`
	PredictionRiskPoints int    `json:"prediction_risk_points"`

	PredictionProbabilities   datatypes.JSON `json:"prediction_probabilities,omitempty"`
	PredictionRecommendations []string       `json:"prediction_recommendations"`

	PredictionPriorAverage  float64 `json:"prediction_prior_average"`
	PredictionAttendance    float64 `json:"prediction_attendance"`
	PredictionParticipation float64 `json:"prediction_participation"`

	PredictionCreatedAt time.Time `json:"prediction_created_at"`
	PredictionUpdatedAt time.Time `json:"prediction_updated_at"`
}

// CoursePredictEntryDTO is one student's outcome in a course batch.
type CoursePredictEntryDTO struct {
	StudentID  uuid.UUID              `json:"student_id"`
	Prediction *PredictionResponseDTO `json:"prediction,omitempty"`
	Error      *string                `json:"error,omitempty"`
}

func FromModel(ent model.PredictionModel) PredictionResponseDTO {
	return PredictionResponseDTO{
		PredictionID:              ent.PredictionID,
		PredictionStudentID:       ent.PredictionStudentID,
		PredictionSubjectID:       ent.PredictionSubjectID,
		PredictionPeriodID:        ent.PredictionPeriodID,
		PredictionForecast:        ent.PredictionForecast,
		PredictionCategory:        ent.PredictionCategory,
		PredictionConfidence:      ent.PredictionConfidence,
		PredictionRiskLevel:       ent.PredictionRiskLevel,
		PredictionRiskPoints:      ent.PredictionRiskPoints,
		PredictionProbabilities:   ent.PredictionProbabilities,
		PredictionRecommendations: ent.PredictionRecommendations,
		PredictionPriorAverage:    ent.PredictionPriorAverage,
		PredictionAttendance:      ent.PredictionAttendance,
		PredictionParticipation:   ent.PredictionParticipation,
		PredictionCreatedAt:       ent.PredictionCreatedAt,
		PredictionUpdatedAt:       ent.PredictionUpdatedAt,
	}
}

func FromModels(list []model.PredictionModel) []PredictionResponseDTO {
	out := make([]PredictionResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
