// file: internals/features/academics/evaluationtypes/route/evaluation_type_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evalTypeCtl "aula_backend/internals/features/academics/evaluationtypes/controller"
)

func EvaluationTypeUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := evalTypeCtl.NewEvaluationTypeController(db, nil)

	api.Get("/evaluation-types", ctl.List)
	api.Get("/evaluation-types/:id", ctl.GetByID)
}

func EvaluationTypeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := evalTypeCtl.NewEvaluationTypeController(db, nil)

	api.Post("/evaluation-types", ctl.Create)
	api.Patch("/evaluation-types/:id", ctl.Patch)
	api.Delete("/evaluation-types/:id", ctl.Delete)
}
