// file: internals/features/academics/cycles/route/cycle_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cycleCtl "aula_backend/internals/features/academics/cycles/controller"
)

func CycleUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := cycleCtl.NewCycleController(db, nil)

	api.Get("/cycles", ctl.List)
	api.Get("/cycles/active", ctl.GetActive)
	api.Get("/cycles/:id", ctl.GetByID)
}

func CycleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := cycleCtl.NewCycleController(db, nil)

	api.Post("/cycles", ctl.Create)
	api.Patch("/cycles/:id", ctl.Patch)
	api.Post("/cycles/:id/activate", ctl.Activate)
	api.Delete("/cycles/:id", ctl.Delete)
}
