// file: internals/seeds/weight_seeder.go
package seeds

import (
	"errors"

	cycleModel "aula_backend/internals/features/academics/cycles/model"
	evalTypeModel "aula_backend/internals/features/academics/evaluationtypes/model"
	weightModel "aula_backend/internals/features/academics/weights/model"
	teacherModel "aula_backend/internals/features/people/teachers/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultWeights is the school's standard policy (sums to 100). It is
// applied per teacher assignment, so a teacher can still override any
// entry for their own subject.
var defaultWeights = map[string]float64{
	"Attendance":    5,
	"Participation": 10,
	"Homework":      10,
	"Practicals":    10,
	"Presentations": 10,
	"Essays":        5,
	"Quizzes":       5,
	"Group work":    5,
	"Exams":         30,
	"Final project": 10,
}

func seedDefaultWeights(db *gorm.DB) error {
	cycleID, err := activeCycleID(db)
	if err != nil {
		return err
	}

	var types []evalTypeModel.EvaluationTypeModel
	if err := db.Find(&types).Error; err != nil {
		return err
	}

	var assignments []teacherModel.TeacherSubjectModel
	if err := db.Find(&assignments).Error; err != nil {
		return err
	}

	for _, asg := range assignments {
		for _, t := range types {
			pct, ok := defaultWeights[t.EvaluationTypeName]
			if !ok {
				continue
			}
			row := weightModel.WeightModel{
				WeightTeacherID:        asg.TeacherSubjectTeacherID,
				WeightSubjectID:        asg.TeacherSubjectSubjectID,
				WeightCycleID:          cycleID,
				WeightEvaluationTypeID: t.EvaluationTypeID,
				WeightPercentage:       pct,
			}
			if err := db.
				Where("weight_teacher_id = ? AND weight_subject_id = ? AND weight_cycle_id = ? AND weight_evaluation_type_id = ?",
					asg.TeacherSubjectTeacherID, asg.TeacherSubjectSubjectID, cycleID, t.EvaluationTypeID).
				FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func activeCycleID(db *gorm.DB) (uuid.UUID, error) {
	var cycle cycleModel.CycleModel
	if err := db.Where("cycle_is_active = TRUE").First(&cycle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, errNoActiveCycle
		}
		return uuid.Nil, err
	}
	return cycle.CycleID, nil
}
