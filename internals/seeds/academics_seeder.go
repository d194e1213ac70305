// file: internals/seeds/academics_seeder.go
package seeds

import (
	"time"

	cycleModel "aula_backend/internals/features/academics/cycles/model"
	evalTypeModel "aula_backend/internals/features/academics/evaluationtypes/model"
	periodModel "aula_backend/internals/features/academics/periods/model"
	subjectModel "aula_backend/internals/features/academics/subjects/model"

	"gorm.io/gorm"
)

// evaluationTypeCatalog is the default catalog. Order matters: the
// aggregation breakdown follows creation order, so the catalog is
// inserted in the order listed here.
var evaluationTypeCatalog = []struct {
	name         string
	isAttendance bool
}{
	{"Attendance", true},
	{"Participation", false},
	{"Homework", false},
	{"Practicals", false},
	{"Presentations", false},
	{"Essays", false},
	{"Quizzes", false},
	{"Group work", false},
	{"Exams", false},
	{"Final project", false},
}

var subjectCatalog = []struct {
	name string
	code string
}{
	{"Mathematics", "MATH"},
	{"Language and Literature", "LANG"},
	{"Natural Sciences", "NATSCI"},
	{"Social Studies", "SOCSCI"},
	{"English", "ENG"},
	{"Physical Education", "PHYSED"},
}

func seedAcademics(db *gorm.DB) error {
	// cycles 2024 (closed) and 2025 (active), each with three trimesters
	cycles := []struct {
		year   string
		label  string
		active bool
	}{
		{"2024", "School year 2024", false},
		{"2025", "School year 2025", true},
	}
	for _, c := range cycles {
		cycle := cycleModel.CycleModel{
			CycleYear:     c.year,
			CycleLabel:    strPtr(c.label),
			CycleIsActive: c.active,
		}
		if err := db.
			Where("cycle_year = ?", c.year).
			FirstOrCreate(&cycle).Error; err != nil {
			return err
		}

		year, _ := time.Parse("2006", c.year)
		trimesters := []struct {
			name  string
			start time.Time
			end   time.Time
		}{
			{"First trimester", year.AddDate(0, 1, 0), year.AddDate(0, 4, 0)},
			{"Second trimester", year.AddDate(0, 4, 1), year.AddDate(0, 7, 0)},
			{"Third trimester", year.AddDate(0, 8, 0), year.AddDate(0, 11, 0)},
		}
		for _, tr := range trimesters {
			period := periodModel.PeriodModel{
				PeriodCycleID:   cycle.CycleID,
				PeriodName:      tr.name,
				PeriodStartDate: tr.start,
				PeriodEndDate:   tr.end,
			}
			if err := db.
				Where("period_cycle_id = ? AND period_name = ?", cycle.CycleID, tr.name).
				FirstOrCreate(&period).Error; err != nil {
				return err
			}
		}
	}

	for _, t := range evaluationTypeCatalog {
		row := evalTypeModel.EvaluationTypeModel{
			EvaluationTypeName:         t.name,
			EvaluationTypeIsAttendance: t.isAttendance,
		}
		if err := db.
			Where("evaluation_type_name = ?", t.name).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	for _, s := range subjectCatalog {
		row := subjectModel.SubjectModel{
			SubjectName: s.name,
			SubjectCode: strPtr(s.code),
		}
		if err := db.
			Where("subject_code = ?", s.code).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
