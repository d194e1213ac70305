// file: internals/databases/migrate.go
package databases

import (
	"log"

	courseModel "aula_backend/internals/features/academics/courses/model"
	cycleModel "aula_backend/internals/features/academics/cycles/model"
	evalTypeModel "aula_backend/internals/features/academics/evaluationtypes/model"
	periodModel "aula_backend/internals/features/academics/periods/model"
	subjectModel "aula_backend/internals/features/academics/subjects/model"
	weightModel "aula_backend/internals/features/academics/weights/model"
	evalModel "aula_backend/internals/features/evaluations/model"
	enrollmentModel "aula_backend/internals/features/people/enrollments/model"
	parentModel "aula_backend/internals/features/people/parents/model"
	studentModel "aula_backend/internals/features/people/students/model"
	teacherModel "aula_backend/internals/features/people/teachers/model"
	aggModel "aula_backend/internals/features/performance/aggregate/model"
	predModel "aula_backend/internals/features/performance/prediction/model"
)

// Migrate keeps the schema in sync with the models. Parent tables go
// first so FK lookups during seeding never race the DDL.
func Migrate() {
	err := DB.AutoMigrate(
		&cycleModel.CycleModel{},
		&periodModel.PeriodModel{},
		&subjectModel.SubjectModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseSubjectModel{},
		&evalTypeModel.EvaluationTypeModel{},
		&teacherModel.TeacherModel{},
		&teacherModel.TeacherSubjectModel{},
		&studentModel.StudentModel{},
		&parentModel.ParentModel{},
		&parentModel.ParentStudentModel{},
		&enrollmentModel.EnrollmentModel{},
		&weightModel.WeightModel{},
		&evalModel.EvaluationModel{},
		&aggModel.FinalResultModel{},
		&predModel.PredictionModel{},
	)
	if err != nil {
		log.Fatalf("❌ Failed to migrate database schema: %v", err)
	}
	log.Println("✅ Database schema migrated")
}
