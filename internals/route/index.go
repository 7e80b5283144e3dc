// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/constants"
	authroutes "lesku_backend/internals/features/users/auth/routes"
	tutorroutes "lesku_backend/internals/features/users/tutors/routes"

	classroutes "lesku_backend/internals/features/classes/class_requests/routes"
	approutes "lesku_backend/internals/features/classes/tutor_applications/routes"
	contractroutes "lesku_backend/internals/features/contracts/routes"
	brokerageroutes "lesku_backend/internals/features/finance/brokerage/routes"
	salaryroutes "lesku_backend/internals/features/finance/salaries/routes"

	authMiddleware "lesku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authroutes.AuthRoutes(api, db)

	// ===================== USER (semua role login) =====================
	log.Println("[INFO] Setting up USER group...")
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))

	classroutes.ClassRequestUserRoutes(user, db)
	approutes.TutorApplicationUserRoutes(user, db)
	contractroutes.ContractUserRoutes(user, db)
	brokerageroutes.BrokerageUserRoutes(user, db)
	tutorroutes.TutorProfileUserRoutes(user, db)

	// ===================== STAFF =====================
	log.Println("[INFO] Setting up STAFF group...")
	staff := api.Group("/s",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("fitur staff"), constants.StaffAndAbove...),
	)

	classroutes.ClassRequestStaffRoutes(staff, db)
	approutes.TutorApplicationStaffRoutes(staff, db)
	contractroutes.ContractStaffRoutes(staff, db)
	tutorroutes.TutorProfileStaffRoutes(staff, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("fitur admin"), constants.AdminOnly...),
	)

	authroutes.AuthAdminRoutes(admin, db)
	brokerageroutes.BrokerageAdminRoutes(admin, db)
	salaryroutes.StaffSalaryAdminRoutes(admin, db)

	log.Println("[INFO] All routes registered")
}
