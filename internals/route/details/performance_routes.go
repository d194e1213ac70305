// file: internals/route/details/performance_routes.go
package details

import (
	EvaluationRoute "aula_backend/internals/features/evaluations/route"
	AggregateRoute "aula_backend/internals/features/performance/aggregate/route"
	PredictionRoute "aula_backend/internals/features/performance/prediction/route"
	predsvc "aula_backend/internals/features/performance/prediction/service"
	SummaryRoute "aula_backend/internals/features/performance/summary/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PerformanceUserRoutes(r fiber.Router, db *gorm.DB, predictor *predsvc.Predictor) {
	EvaluationRoute.EvaluationUserRoutes(r, db)
	AggregateRoute.FinalResultUserRoutes(r, db)
	PredictionRoute.PredictionUserRoutes(r, db, predictor)
	SummaryRoute.SummaryUserRoutes(r, db)
}

func PerformanceTeacherRoutes(r fiber.Router, db *gorm.DB, predictor *predsvc.Predictor) {
	EvaluationRoute.EvaluationTeacherRoutes(r, db)
	AggregateRoute.FinalResultTeacherRoutes(r, db)
	PredictionRoute.PredictionTeacherRoutes(r, db, predictor)
	SummaryRoute.SummaryTeacherRoutes(r, db)
}

func PerformanceAdminRoutes(r fiber.Router, db *gorm.DB, predictor *predsvc.Predictor) {
	PredictionRoute.PredictionAdminRoutes(r, db, predictor)
}
