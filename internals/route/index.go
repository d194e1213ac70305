// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aula_backend/internals/constants"
	predsvc "aula_backend/internals/features/performance/prediction/service"
	authmw "aula_backend/internals/middlewares/auth"
	routeDetails "aula_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, predictor *predsvc.Predictor) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// USER → any authenticated role (students, parents see their own data)
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authmw.AuthMiddleware(),
	)

	// TEACHER → teachers and admins
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		authmw.AuthMiddleware(),
		authmw.OnlyRoles(constants.RoleErrorTeacher("teacher endpoints"), constants.TeacherAndAbove...),
	)

	// ADMIN → admins only
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authmw.AuthMiddleware(),
		authmw.OnlyRoles(constants.RoleErrorAdmin("admin endpoints"), constants.AdminOnly...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academics routes...")
	routeDetails.AcademicsUserRoutes(user, db)
	routeDetails.AcademicsTeacherRoutes(teacher, db)
	routeDetails.AcademicsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting People routes...")
	routeDetails.PeopleUserRoutes(user, db)
	routeDetails.PeopleAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Performance routes...")
	routeDetails.PerformanceUserRoutes(user, db, predictor)
	routeDetails.PerformanceTeacherRoutes(teacher, db, predictor)
	routeDetails.PerformanceAdminRoutes(admin, db, predictor)
}
