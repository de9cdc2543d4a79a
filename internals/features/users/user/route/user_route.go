package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/users/user/controller"
)

// UserUserRoutes: endpoint profil untuk user login (prefix /api/u)
func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := r.Group("/users")
	users.Get("/me", ctl.Me)
	users.Patch("/me", ctl.UpdateMe)
}

// UserAdminRoutes: manajemen user untuk admin (prefix /api/a)
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", ctl.List)
}

// UserSupervisorRoutes: daftar intern bimbingan (prefix /api/s)
func UserSupervisorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	r.Get("/interns", ctl.MyInterns)
}
