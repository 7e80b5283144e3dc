// file: internals/features/classes/tutor_applications/routes/tutor_application_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/constants"
	"lesku_backend/internals/features/classes/tutor_applications/controller"
	authMw "lesku_backend/internals/middlewares/auth"
)

// TutorApplicationUserRoutes: tutor mengajukan & melihat lamarannya.
func TutorApplicationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTutorApplicationController(db)

	r := api.Group("/tutor-applications")
	r.Post("/",
		authMw.OnlyRoles(constants.RoleErrorTutor("ajukan lamaran"), constants.TutorOnly...),
		ctl.Submit)
	r.Get("/", ctl.ListMine)
}

// TutorApplicationStaffRoutes: review oleh staff/admin.
func TutorApplicationStaffRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTutorApplicationController(db)

	api.Get("/classes/:classId/applications", ctl.ListByClass)

	r := api.Group("/tutor-applications")
	r.Patch("/:id/approve", ctl.Approve)
	r.Patch("/:id/reject", ctl.Reject)
	r.Patch("/:id/select", ctl.Select)
}
