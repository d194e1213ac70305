// file: internals/features/academics/courses/route/course_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseCtl "aula_backend/internals/features/academics/courses/controller"
)

func CourseUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := courseCtl.NewCourseController(db, nil)

	api.Get("/courses", ctl.List)
	api.Get("/courses/:id", ctl.GetByID)
	api.Get("/courses/:id/subjects", ctl.ListSubjects)
}

func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := courseCtl.NewCourseController(db, nil)

	api.Post("/courses", ctl.Create)
	api.Patch("/courses/:id", ctl.Patch)
	api.Delete("/courses/:id", ctl.Delete)

	api.Post("/courses/:id/subjects", ctl.AttachSubject)
	api.Delete("/courses/:id/subjects/:subject_id", ctl.DetachSubject)
}
