// file: internals/features/performance/aggregate/route/final_result_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	finalResultCtl "aula_backend/internals/features/performance/aggregate/controller"
)

func FinalResultUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := finalResultCtl.NewFinalResultController(db, nil)

	api.Get("/final-results", ctl.List)
	api.Get("/final-results/:id", ctl.GetByID)
}

func FinalResultTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := finalResultCtl.NewFinalResultController(db, nil)

	api.Post("/final-results/compute", ctl.ComputeOne)
	api.Post("/final-results/compute/course", ctl.ComputeCourse)
	api.Post("/final-results/compute/student", ctl.ComputeStudent)
	api.Post("/final-results/compute/student/cycle", ctl.ComputeStudentCycle)

	api.Post("/final-results", ctl.Create)
	api.Patch("/final-results/:id", ctl.Patch)
	api.Delete("/final-results/:id", ctl.Delete)
}
