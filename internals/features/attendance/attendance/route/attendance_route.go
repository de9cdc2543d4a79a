package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/attendance/attendance/controller"
)

// AttendanceUserRoutes: endpoint absensi harian untuk user login (prefix /api/u)
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Post("/check-in", ctl.CheckIn)
	att.Post("/check-out", ctl.CheckOut)
	att.Get("/today", ctl.Today)
	att.Get("/history", ctl.History)
	att.Get("/qrcode", ctl.QRCode)
	att.Get("/summary", ctl.Summary)
}

// AttendanceAdminRoutes: listing absensi semua user (prefix /api/a)
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Get("/", ctl.List)
}

// AttendanceSupervisorRoutes: riwayat intern bimbingan (prefix /api/s)
func AttendanceSupervisorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Get("/:intern_id", ctl.InternHistory)
}
