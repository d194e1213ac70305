// file: internals/features/academics/subjects/route/subject_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectCtl "aula_backend/internals/features/academics/subjects/controller"
)

func SubjectUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := subjectCtl.NewSubjectController(db, nil)

	api.Get("/subjects", ctl.List)
	api.Get("/subjects/:id", ctl.GetByID)
}

func SubjectAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := subjectCtl.NewSubjectController(db, nil)

	api.Post("/subjects", ctl.Create)
	api.Patch("/subjects/:id", ctl.Patch)
	api.Delete("/subjects/:id", ctl.Delete)
}
