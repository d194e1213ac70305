// file: internals/features/people/students/route/student_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "aula_backend/internals/features/people/students/controller"
)

func StudentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db, nil)

	api.Get("/students", ctl.List)
	api.Get("/students/:id", ctl.GetByID)
}

func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db, nil)

	api.Post("/students", ctl.Create)
	api.Patch("/students/:id", ctl.Patch)
	api.Delete("/students/:id", ctl.Delete)
}
