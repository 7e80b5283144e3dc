// file: internals/features/finance/brokerage/routes/brokerage_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/features/finance/brokerage/controller"
)

// BrokerageUserRoutes: tutor melihat tagihan fee miliknya.
func BrokerageUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewBrokerageController(db)

	r := api.Group("/brokerage")
	r.Get("/payments", ctl.ListPayments)
}

// BrokerageAdminRoutes: kebijakan fee & pengelolaan tagihan khusus admin.
func BrokerageAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewBrokerageController(db)

	r := api.Group("/brokerage")
	r.Get("/settings", ctl.GetActiveSetting)
	r.Put("/settings", ctl.UpdateSettings)
	r.Get("/settings/history", ctl.SettingsHistory)
	r.Post("/calculate", ctl.CalculateFee)
	r.Post("/payments", ctl.CreatePayment)
	r.Patch("/payments/:id", ctl.UpdatePayment)
}
