// file: internals/features/evaluations/route/evaluation_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluationCtl "aula_backend/internals/features/evaluations/controller"
)

func EvaluationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := evaluationCtl.NewEvaluationController(db, nil)

	api.Get("/evaluations", ctl.List)
	api.Get("/evaluations/:id", ctl.GetByID)
}

func EvaluationTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := evaluationCtl.NewEvaluationController(db, nil)

	api.Post("/evaluations", ctl.Create)
	api.Post("/evaluations/bulk", ctl.CreateBulk)
	api.Patch("/evaluations/:id", ctl.Patch)
	api.Delete("/evaluations/:id", ctl.Delete)
}
