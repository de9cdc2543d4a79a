// internals/features/notifications/controller/notification_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/notifications/model"
	helper "magangku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/u/notifications: milik user login, belum dibaca duluan
func (ctl *NotificationController) Mine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var notifications []model.NotificationModel
	if err := tx.Order("read ASC, created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.JsonList(c, "ok", notifications,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/u/notifications/:id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Notifikasi dibaca", nil)
}

// PATCH /api/u/notifications/read-all
func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update notifikasi")
	}
	return helper.JsonUpdated(c, "Semua notifikasi dibaca", nil)
}

// Notify menyisipkan notifikasi baru (dipakai fitur lain, mis. keputusan cuti).
func Notify(db *gorm.DB, userID uuid.UUID, title, message string, typ model.NotificationType) error {
	return db.Create(&model.NotificationModel{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
	}).Error
}
