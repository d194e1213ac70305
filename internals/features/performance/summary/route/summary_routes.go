// file: internals/features/performance/summary/route/summary_routes.go
package route

import (
	controller "aula_backend/internals/features/performance/summary/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SummaryUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSummaryController(db, nil)

	grp := r.Group("/summary")
	grp.Get("/students/:id", ctl.StudentSummary)
}

func SummaryTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSummaryController(db, nil)

	grp := r.Group("/summary")
	grp.Get("/courses/:id", ctl.CourseSummary)
}
