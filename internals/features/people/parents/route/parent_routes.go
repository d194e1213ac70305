// file: internals/features/people/parents/route/parent_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	parentCtl "aula_backend/internals/features/people/parents/controller"
)

func ParentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := parentCtl.NewParentController(db, nil)

	api.Post("/parents", ctl.Create)
	api.Get("/parents", ctl.List)
	api.Get("/parents/:id", ctl.GetByID)
	api.Patch("/parents/:id", ctl.Patch)
	api.Delete("/parents/:id", ctl.Delete)

	api.Post("/parents/:id/students", ctl.LinkStudent)
	api.Get("/parents/:id/students", ctl.ListStudents)
	api.Delete("/parents/:id/students/:student_id", ctl.UnlinkStudent)
}
