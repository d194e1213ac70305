// file: internals/features/academics/periods/route/period_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodCtl "aula_backend/internals/features/academics/periods/controller"
)

func PeriodUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := periodCtl.NewPeriodController(db, nil)

	api.Get("/periods", ctl.List)
	api.Get("/periods/:id", ctl.GetByID)
}

func PeriodAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := periodCtl.NewPeriodController(db, nil)

	api.Post("/periods", ctl.Create)
	api.Patch("/periods/:id", ctl.Patch)
	api.Delete("/periods/:id", ctl.Delete)
}
