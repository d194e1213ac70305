// file: internals/features/people/teachers/route/teacher_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherCtl "aula_backend/internals/features/people/teachers/controller"
)

func TeacherUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := teacherCtl.NewTeacherController(db, nil)

	api.Get("/teachers", ctl.List)
	api.Get("/teachers/:id", ctl.GetByID)
	api.Get("/teachers/:id/subjects", ctl.ListSubjects)
}

func TeacherAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := teacherCtl.NewTeacherController(db, nil)

	api.Post("/teachers", ctl.Create)
	api.Patch("/teachers/:id", ctl.Patch)
	api.Delete("/teachers/:id", ctl.Delete)

	api.Post("/teachers/:id/subjects", ctl.AssignSubject)
	api.Delete("/teachers/:id/subjects/:assignment_id", ctl.UnassignSubject)
}
