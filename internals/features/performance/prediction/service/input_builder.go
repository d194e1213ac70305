// file: internals/features/performance/prediction/service/input_builder.go
package service

import (
	"context"

	evalModel "aula_backend/internals/features/evaluations/model"
	aggService "aula_backend/internals/features/performance/aggregate/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fallbacks used when a student has no attendance or participation
// records yet. Prior average always comes from the grade aggregation.
const (
	DefaultAttendance    = 85.0
	DefaultParticipation = 70.0
)

// InputBuilder assembles model features from stored grades. The prior
// average is recomputed through the aggregation pipeline, so a
// prediction never works from a stale final grade.
type InputBuilder struct {
	DB      *gorm.DB
	Compute *aggService.ComputeService
}

func NewInputBuilder(db *gorm.DB) *InputBuilder {
	return &InputBuilder{DB: db, Compute: aggService.NewComputeService(db)}
}

// BuildForStudent resolves the three core features for one student,
// subject and period.
func (b *InputBuilder) BuildForStudent(ctx context.Context, studentID, subjectID, periodID uuid.UUID) (Input, error) {
	res, _, err := b.Compute.ComputeAndStore(ctx, studentID, subjectID, periodID)
	if err != nil {
		return Input{}, err
	}

	attendance, err := b.attendanceRate(ctx, studentID, subjectID, periodID)
	if err != nil {
		return Input{}, err
	}
	participation, err := b.participationAverage(ctx, studentID, subjectID, periodID)
	if err != nil {
		return Input{}, err
	}

	return Input{
		PriorAverage:  res.Final,
		Attendance:    attendance,
		Participation: participation,
	}, nil
}

func (b *InputBuilder) attendanceRate(ctx context.Context, studentID, subjectID, periodID uuid.UUID) (float64, error) {
	var values []float64
	err := b.DB.WithContext(ctx).
		Model(&evalModel.EvaluationModel{}).
		Joins("JOIN evaluation_types ON evaluation_types.evaluation_type_id = evaluations.evaluation_type_id").
		Where("evaluations.evaluation_student_id = ? AND evaluations.evaluation_subject_id = ? AND evaluations.evaluation_period_id = ?",
			studentID, subjectID, periodID).
		Where("evaluation_types.evaluation_type_is_attendance = TRUE").
		Where("evaluation_types.evaluation_type_deleted_at IS NULL").
		Pluck("evaluations.evaluation_value", &values).Error
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return DefaultAttendance, nil
	}
	present := 0
	for _, v := range values {
		if v >= 1 {
			present++
		}
	}
	return 100 * float64(present) / float64(len(values)), nil
}

func (b *InputBuilder) participationAverage(ctx context.Context, studentID, subjectID, periodID uuid.UUID) (float64, error) {
	var values []float64
	err := b.DB.WithContext(ctx).
		Model(&evalModel.EvaluationModel{}).
		Joins("JOIN evaluation_types ON evaluation_types.evaluation_type_id = evaluations.evaluation_type_id").
		Where("evaluations.evaluation_student_id = ? AND evaluations.evaluation_subject_id = ? AND evaluations.evaluation_period_id = ?",
			studentID, subjectID, periodID).
		Where("evaluation_types.evaluation_type_is_attendance = FALSE").
		Where("LOWER(evaluation_types.evaluation_type_name) LIKE 'particip%'").
		Where("evaluation_types.evaluation_type_deleted_at IS NULL").
		Pluck("evaluations.evaluation_value", &values).Error
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return DefaultParticipation, nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}
