// file: internals/features/users/tutors/routes/tutor_profile_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/constants"
	"lesku_backend/internals/features/users/tutors/controller"
	authMw "lesku_backend/internals/middlewares/auth"
)

// TutorProfileUserRoutes: tutor mengelola profilnya sendiri.
func TutorProfileUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTutorProfileController(db)

	onlyTutor := authMw.OnlyRoles(constants.RoleErrorTutor("profil tutor"), constants.TutorOnly...)

	r := api.Group("/tutor-profile")
	r.Put("/", onlyTutor, ctl.Upsert)
	r.Get("/", onlyTutor, ctl.GetMine)
	r.Post("/certificate", onlyTutor, ctl.UploadCertificate)
}

// TutorProfileStaffRoutes: katalog tutor untuk staff/admin.
func TutorProfileStaffRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTutorProfileController(db)

	r := api.Group("/tutor-profiles")
	r.Get("/", ctl.List)
	r.Get("/:userId", ctl.GetByUserID)
}
