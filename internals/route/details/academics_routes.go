// file: internals/route/details/academics_routes.go
package details

import (
	CourseRoute "aula_backend/internals/features/academics/courses/route"
	CycleRoute "aula_backend/internals/features/academics/cycles/route"
	EvaluationTypeRoute "aula_backend/internals/features/academics/evaluationtypes/route"
	PeriodRoute "aula_backend/internals/features/academics/periods/route"
	SubjectRoute "aula_backend/internals/features/academics/subjects/route"
	WeightRoute "aula_backend/internals/features/academics/weights/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Read-only catalog access for any signed-in user
func AcademicsUserRoutes(r fiber.Router, db *gorm.DB) {
	CycleRoute.CycleUserRoutes(r, db)
	PeriodRoute.PeriodUserRoutes(r, db)
	SubjectRoute.SubjectUserRoutes(r, db)
	CourseRoute.CourseUserRoutes(r, db)
	EvaluationTypeRoute.EvaluationTypeUserRoutes(r, db)
}

// Teachers manage their own weight table
func AcademicsTeacherRoutes(r fiber.Router, db *gorm.DB) {
	WeightRoute.WeightTeacherRoutes(r, db)
}

func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	CycleRoute.CycleAdminRoutes(r, db)
	PeriodRoute.PeriodAdminRoutes(r, db)
	SubjectRoute.SubjectAdminRoutes(r, db)
	CourseRoute.CourseAdminRoutes(r, db)
	EvaluationTypeRoute.EvaluationTypeAdminRoutes(r, db)
	WeightRoute.WeightAdminRoutes(r, db)
}
