package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/leaves/controller"
)

// LeaveUserRoutes: pengajuan izin user login (prefix /api/u)
func LeaveUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaveController(db)

	leaves := r.Group("/leaves")
	leaves.Post("/", ctl.Create)
	leaves.Get("/", ctl.Mine)
}

// LeaveApproverRoutes: antrian + keputusan (prefix /api/s, juga dipakai admin)
func LeaveApproverRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaveController(db)

	leaves := r.Group("/leaves")
	leaves.Get("/pending", ctl.Pending)
	leaves.Patch("/:id/decision", ctl.Decide)
}
