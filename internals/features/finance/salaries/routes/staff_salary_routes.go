// file: internals/features/finance/salaries/routes/staff_salary_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/features/finance/salaries/controller"
)

// StaffSalaryAdminRoutes: seluruh pengelolaan gaji khusus admin.
func StaffSalaryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStaffSalaryController(db)

	r := api.Group("/staff-salaries")
	r.Put("/", ctl.Upsert)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id/pay", ctl.MarkPaid)
	r.Patch("/:id/unpay", ctl.MarkPending)
}
