// file: internals/features/performance/prediction/service/predict_service.go
package service

import (
	"context"

	model "aula_backend/internals/features/performance/prediction/model"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PredictService couples the live model with stored grades: it builds
// the features, runs the predictor and upserts one row per student,
// subject and period.
type PredictService struct {
	DB        *gorm.DB
	Predictor *Predictor
	Inputs    *InputBuilder
}

func NewPredictService(db *gorm.DB, predictor *Predictor) *PredictService {
	return &PredictService{
		DB:        db,
		Predictor: predictor,
		Inputs:    NewInputBuilder(db),
	}
}

// PredictAndStore predicts for one student and persists the outcome.
// Rerunning overwrites the previous row for the same natural key.
func (s *PredictService) PredictAndStore(ctx context.Context, studentID, subjectID, periodID uuid.UUID) (Prediction, model.PredictionModel, error) {
	in, err := s.Inputs.BuildForStudent(ctx, studentID, subjectID, periodID)
	if err != nil {
		return Prediction{}, model.PredictionModel{}, err
	}

	pred, err := s.Predictor.Predict(in)
	if err != nil {
		return Prediction{}, model.PredictionModel{}, err
	}

	probsJSON, err := sonic.Marshal(pred.Probabilities)
	if err != nil {
		return Prediction{}, model.PredictionModel{}, err
	}

	row := model.PredictionModel{
		PredictionStudentID:       studentID,
		PredictionSubjectID:       subjectID,
		PredictionPeriodID:        periodID,
		PredictionForecast:        pred.Forecast,
		PredictionCategory:        pred.Category,
		PredictionConfidence:      pred.Confidence,
		PredictionRiskLevel:       pred.RiskLevel,
		PredictionRiskPoints:      pred.RiskPoints,
		PredictionProbabilities:   probsJSON,
		PredictionRecommendations: pred.Recommendations,
		PredictionPriorAverage:    in.PriorAverage,
		PredictionAttendance:      in.Attendance,
		PredictionParticipation:   in.Participation,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "prediction_student_id"},
				{Name: "prediction_subject_id"},
				{Name: "prediction_period_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"prediction_forecast",
				"prediction_category",
				"prediction_confidence",
				"prediction_risk_level",
				"prediction_risk_points",
				"prediction_probabilities",
				"prediction_recommendations",
				"prediction_prior_average",
				"prediction_attendance",
				"prediction_participation",
				"prediction_updated_at",
			}),
		}).Create(&row).Error; err != nil {
			return err
		}
		return tx.
			Where("prediction_student_id = ? AND prediction_subject_id = ? AND prediction_period_id = ?",
				studentID, subjectID, periodID).
			First(&row).Error
	})
	if err != nil {
		return Prediction{}, model.PredictionModel{}, err
	}

	return pred, row, nil
}
