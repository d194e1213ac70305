// file: internals/features/academics/weights/service/weight_lookup.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aula_backend/internals/features/academics/weights/model"
)

// Lookup resolves weight-policy rows for the aggregation engine.
type Lookup struct {
	DB *gorm.DB
}

func NewLookup(db *gorm.DB) *Lookup {
	return &Lookup{DB: db}
}

// GetWeight returns the stored percentage for the (teacher, subject,
// cycle, type) key. The bool reports whether a row exists: an absent
// policy means "type excluded", distinct from a stored 0 which means
// "type counts for nothing but still appears in the breakdown".
func (l *Lookup) GetWeight(ctx context.Context, teacherID, subjectID, cycleID, typeID uuid.UUID) (float64, bool, error) {
	var ent model.WeightModel
	err := l.DB.WithContext(ctx).
		Where("weight_teacher_id = ? AND weight_subject_id = ? AND weight_cycle_id = ? AND weight_evaluation_type_id = ?",
			teacherID, subjectID, cycleID, typeID).
		First(&ent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return ent.WeightPercentage, true, nil
}

// GetPolicy loads every weight row for a (teacher, subject, cycle)
// triple keyed by evaluation type, so the aggregator resolves the whole
// catalog with one query.
func (l *Lookup) GetPolicy(ctx context.Context, teacherID, subjectID, cycleID uuid.UUID) (map[uuid.UUID]float64, error) {
	var rows []model.WeightModel
	if err := l.DB.WithContext(ctx).
		Where("weight_teacher_id = ? AND weight_subject_id = ? AND weight_cycle_id = ?",
			teacherID, subjectID, cycleID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]float64, len(rows))
	for _, r := range rows {
		out[r.WeightEvaluationTypeID] = r.WeightPercentage
	}
	return out, nil
}
