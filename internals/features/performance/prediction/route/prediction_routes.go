// file: internals/features/performance/prediction/route/prediction_routes.go
package route

import (
	controller "aula_backend/internals/features/performance/prediction/controller"
	service "aula_backend/internals/features/performance/prediction/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PredictionUserRoutes exposes stored predictions and the model status
// to every authenticated role.
func PredictionUserRoutes(r fiber.Router, db *gorm.DB, predictor *service.Predictor) {
	ctl := controller.NewPredictionController(db, nil, predictor)

	grp := r.Group("/predictions")
	grp.Get("/model/status", ctl.ModelStatus)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}

// PredictionTeacherRoutes lets teachers run the model, persist
// per-student forecasts and scan for at-risk students.
func PredictionTeacherRoutes(r fiber.Router, db *gorm.DB, predictor *service.Predictor) {
	ctl := controller.NewPredictionController(db, nil, predictor)

	grp := r.Group("/predictions")
	grp.Get("/at-risk", ctl.AtRisk)
	grp.Post("/manual", ctl.PredictManual)
	grp.Post("/course", ctl.PredictCourse)
	grp.Post("/", ctl.PredictStudent)
}

// PredictionAdminRoutes handles model lifecycle.
func PredictionAdminRoutes(r fiber.Router, db *gorm.DB, predictor *service.Predictor) {
	ctl := controller.NewPredictionController(db, nil, predictor)

	grp := r.Group("/predictions")
	grp.Post("/model/reload", ctl.ReloadModel)
}
