// file: internals/features/classes/class_requests/routes/class_request_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/constants"
	"lesku_backend/internals/features/classes/class_requests/controller"
	authMw "lesku_backend/internals/middlewares/auth"
)

// ClassRequestUserRoutes: rute untuk user login (customer & tutor ikut grup ini).
// Pembuatan hanya untuk customer; baca tetap dibatasi pemilik/staff di controller.
func ClassRequestUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassRequestController(db)

	r := api.Group("/class-requests")
	r.Post("/",
		authMw.OnlyRoles(constants.RoleErrorCustomer("buat permintaan kelas"), constants.CustomerOnly...),
		ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Put("/:id", ctl.Update)
}

// ClassRequestStaffRoutes: transisi status & penghapusan oleh staff/admin.
func ClassRequestStaffRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassRequestController(db)

	r := api.Group("/class-requests")
	r.Patch("/:id/approve", ctl.Approve)
	r.Patch("/:id/reject", ctl.Reject)
	r.Patch("/:id/complete", ctl.Complete)
	r.Delete("/:id", ctl.Delete)
}
