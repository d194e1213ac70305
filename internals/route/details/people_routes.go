// file: internals/route/details/people_routes.go
package details

import (
	EnrollmentRoute "aula_backend/internals/features/people/enrollments/route"
	ParentRoute "aula_backend/internals/features/people/parents/route"
	StudentRoute "aula_backend/internals/features/people/students/route"
	TeacherRoute "aula_backend/internals/features/people/teachers/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PeopleUserRoutes(r fiber.Router, db *gorm.DB) {
	StudentRoute.StudentUserRoutes(r, db)
	TeacherRoute.TeacherUserRoutes(r, db)
	EnrollmentRoute.EnrollmentUserRoutes(r, db)
}

func PeopleAdminRoutes(r fiber.Router, db *gorm.DB) {
	StudentRoute.StudentAdminRoutes(r, db)
	TeacherRoute.TeacherAdminRoutes(r, db)
	ParentRoute.ParentAdminRoutes(r, db)
	EnrollmentRoute.EnrollmentAdminRoutes(r, db)
}
