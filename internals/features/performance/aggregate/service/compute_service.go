// file: internals/features/performance/aggregate/service/compute_service.go
package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	weightService "aula_backend/internals/features/academics/weights/service"
	model "aula_backend/internals/features/performance/aggregate/model"
)

// ComputeService is the single entry point for grade aggregation: it
// resolves the cycle and teacher, runs the aggregator and persists the
// outcome as one final_results row per (student, subject, period).
type ComputeService struct {
	DB         *gorm.DB
	Aggregator *Aggregator
	Resolver   *Resolver
}

func NewComputeService(db *gorm.DB) *ComputeService {
	return &ComputeService{
		DB: db,
		Aggregator: NewAggregator(
			&GormTypeCatalog{DB: db},
			weightService.NewLookup(db),
			&GormScoreSource{DB: db},
		),
		Resolver: &Resolver{DB: db},
	}
}

// ComputeAndStore recomputes the final grade and upserts it. The write
// happens inside one transaction keyed on the natural key, so repeated
// runs with unchanged inputs leave exactly one identical row.
func (s *ComputeService) ComputeAndStore(ctx context.Context, studentID, subjectID, periodID uuid.UUID) (Result, model.FinalResultModel, error) {
	cycleID, err := s.Resolver.CycleForPeriod(ctx, periodID)
	if err != nil {
		return Result{}, model.FinalResultModel{}, err
	}
	teacherID, err := s.Resolver.TeacherForStudentSubject(ctx, studentID, subjectID, cycleID)
	if err != nil {
		return Result{}, model.FinalResultModel{}, err
	}

	res, err := s.Aggregator.Compute(ctx, studentID, subjectID, periodID, teacherID, cycleID)
	if err != nil {
		return Result{}, model.FinalResultModel{}, err
	}

	breakdown, err := sonic.Marshal(res.Breakdown)
	if err != nil {
		return Result{}, model.FinalResultModel{}, err
	}

	ent := model.FinalResultModel{
		FinalResultStudentID:   studentID,
		FinalResultSubjectID:   subjectID,
		FinalResultPeriodID:    periodID,
		FinalResultScore:       res.Final,
		FinalResultWeightTotal: res.WeightTotal,
		FinalResultBreakdown:   breakdown,
		FinalResultComputedAt:  time.Now().UTC(),
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "final_result_student_id"},
					{Name: "final_result_subject_id"},
					{Name: "final_result_period_id"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"final_result_score",
					"final_result_weight_total",
					"final_result_breakdown",
					"final_result_computed_at",
					"final_result_updated_at",
				}),
			}).
			Create(&ent).Error; err != nil {
			return err
		}
		// re-read so callers see the surviving row's id and timestamps
		return tx.
			Where("final_result_student_id = ? AND final_result_subject_id = ? AND final_result_period_id = ?",
				studentID, subjectID, periodID).
			First(&ent).Error
	})
	if txErr != nil {
		return Result{}, model.FinalResultModel{}, txErr
	}

	return res, ent, nil
}
