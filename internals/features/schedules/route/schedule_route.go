package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/schedules/controller"
)

// ScheduleUserRoutes: jadwal milik user login (prefix /api/u)
func ScheduleUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewScheduleController(db)

	r.Get("/schedules", ctl.Mine)
}

// ScheduleAdminRoutes: manajemen jadwal (prefix /api/a)
func ScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewScheduleController(db)

	schedules := r.Group("/schedules")
	schedules.Post("/", ctl.Create)
	schedules.Patch("/:id", ctl.Update)
	schedules.Delete("/:id", ctl.Delete)
}
