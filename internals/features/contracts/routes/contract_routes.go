// file: internals/features/contracts/routes/contract_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/features/contracts/controller"
)

// ContractUserRoutes: customer & tutor melihat kontraknya.
func ContractUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewContractController(db)

	r := api.Group("/contracts")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
}

// ContractStaffRoutes: penerbitan & perubahan status oleh staff/admin.
func ContractStaffRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewContractController(db)

	r := api.Group("/contracts")
	r.Post("/", ctl.Create)
	r.Patch("/:id/status", ctl.UpdateStatus)
}
