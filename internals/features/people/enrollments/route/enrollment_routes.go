// file: internals/features/people/enrollments/route/enrollment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentCtl "aula_backend/internals/features/people/enrollments/controller"
)

func EnrollmentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := enrollmentCtl.NewEnrollmentController(db, nil)

	api.Get("/enrollments", ctl.List)
	api.Get("/enrollments/:id", ctl.GetByID)
}

func EnrollmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := enrollmentCtl.NewEnrollmentController(db, nil)

	api.Post("/enrollments", ctl.Create)
	api.Patch("/enrollments/:id", ctl.Patch)
	api.Delete("/enrollments/:id", ctl.Delete)
}
