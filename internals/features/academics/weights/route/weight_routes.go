// file: internals/features/academics/weights/route/weight_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	weightCtl "aula_backend/internals/features/academics/weights/controller"
)

// Teachers manage weights for their own subjects; the controller scopes
// every call to the teacher_id claim.
func WeightTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := weightCtl.NewWeightController(db, nil)

	api.Put("/weights", ctl.Set)
	api.Get("/weights", ctl.List)
	api.Delete("/weights/:id", ctl.Delete)
}

// Admins reach the same handlers without the ownership restriction.
func WeightAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := weightCtl.NewWeightController(db, nil)

	api.Put("/weights", ctl.Set)
	api.Get("/weights", ctl.List)
	api.Delete("/weights/:id", ctl.Delete)
}
