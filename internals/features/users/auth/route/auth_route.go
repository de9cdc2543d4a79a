package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/users/auth/controller"
	rateLimiter "magangku_backend/internals/middlewares"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

// AuthRoutes: login/register publik, logout butuh token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	api.Post("/register", rateLimiter.RegisterRateLimiter(), ctl.Register)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), ctl.Logout)
}
