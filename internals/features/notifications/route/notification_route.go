package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/notifications/controller"
)

// NotificationUserRoutes: notifikasi milik user login (prefix /api/u)
func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	n := r.Group("/notifications")
	n.Get("/", ctl.Mine)
	n.Patch("/read-all", ctl.MarkAllRead)
	n.Patch("/:id/read", ctl.MarkRead)
}
