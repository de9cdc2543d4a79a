// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	attendanceRoute "magangku_backend/internals/features/attendance/attendance/route"
	leaveRoute "magangku_backend/internals/features/leaves/route"
	notificationRoute "magangku_backend/internals/features/notifications/route"
	scheduleRoute "magangku_backend/internals/features/schedules/route"
	authRoute "magangku_backend/internals/features/users/auth/route"
	userRoute "magangku_backend/internals/features/users/user/route"
	middlewares "magangku_backend/internals/middlewares"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	userGroup := api.Group("/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserUserRoutes(userGroup, db)
	attendanceRoute.AttendanceUserRoutes(userGroup, db)
	scheduleRoute.ScheduleUserRoutes(userGroup, db)
	leaveRoute.LeaveUserRoutes(userGroup, db)
	notificationRoute.NotificationUserRoutes(userGroup, db)

	// ===================== SUPERVISOR =====================
	log.Println("[INFO] Setting up SUPERVISOR group...")
	supervisorGroup := api.Group("/s",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Khusus supervisor/admin", constants.RoleSupervisor, constants.RoleAdmin),
	)
	userRoute.UserSupervisorRoutes(supervisorGroup, db)
	attendanceRoute.AttendanceSupervisorRoutes(supervisorGroup, db)
	leaveRoute.LeaveApproverRoutes(supervisorGroup, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	adminGroup := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Khusus admin", constants.RoleAdmin),
	)
	userRoute.UserAdminRoutes(adminGroup, db)
	attendanceRoute.AttendanceAdminRoutes(adminGroup, db)
	scheduleRoute.ScheduleAdminRoutes(adminGroup, db)
}
