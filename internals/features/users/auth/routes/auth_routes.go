// file: internals/features/users/auth/routes/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "lesku_backend/internals/features/users/auth/controller"
	authMw "lesku_backend/internals/middlewares/auth"
	"lesku_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}

	grp := api.Group("/auth")
	grp.Post("/register", middlewares.LoginRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)

	// Butuh token valid untuk logout (masuk blacklist)
	grp.Post("/logout", authMw.AuthMiddleware(db), ctl.Logout)
}

// AuthAdminRoutes: admin membuat akun dengan role pilihan (staff/tutor/dst).
// Handler sama dengan register publik; role dihormati karena grup ini sudah
// melewati AuthMiddleware sehingga klaim admin terbaca.
func AuthAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}

	api.Post("/users", ctl.Register)
}
