// internals/features/leaves/controller/leave_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/leaves/dto"
	"magangku_backend/internals/features/leaves/model"
	notificationController "magangku_backend/internals/features/notifications/controller"
	notificationModel "magangku_backend/internals/features/notifications/model"
	userModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

type LeaveController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/u/leaves: pengajuan izin/cuti
func (ctl *LeaveController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.EndDate < req.StartDate {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date harus >= start_date")
	}

	leave := model.LeaveRequestModel{
		UserID:         userID,
		LeaveType:      model.LeaveType(req.LeaveType),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Reason:         strings.TrimSpace(req.Reason),
		ApprovalStatus: model.ApprovalPending,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&leave).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengajuan")
	}
	return helper.JsonCreated(c, "Pengajuan dikirim", leave)
}

// GET /api/u/leaves: pengajuan milik user login
func (ctl *LeaveController) Mine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var leaves []model.LeaveRequestModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan")
	}
	return helper.JsonOK(c, "ok", leaves)
}

// GET /api/s/leaves/pending: antrian approval untuk supervisor/admin.
// Supervisor hanya melihat pengajuan intern bimbingannya.
func (ctl *LeaveController) Pending(c *fiber.Ctx) error {
	approverID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&model.LeaveRequestModel{}).
		Where("approval_status = ?", model.ApprovalPending)

	if helper.GetRoleFromLocals(c) == constants.RoleSupervisor {
		tx = tx.Where("user_id IN (?)", ctl.DB.
			Model(&userModel.UserModel{}).
			Select("id").
			Where("supervisor_id = ?", approverID))
	}

	var leaves []model.LeaveRequestModel
	if err := tx.Order("created_at ASC").Find(&leaves).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil antrian approval")
	}
	return helper.JsonOK(c, "ok", leaves)
}

// PATCH /api/s/leaves/:id/decision: approve/reject
func (ctl *LeaveController) Decide(c *fiber.Ctx) error {
	approverID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	var req dto.DecideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var leave model.LeaveRequestModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&leave, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan")
	}
	if leave.ApprovalStatus != model.ApprovalPending {
		return helper.JsonError(c, fiber.StatusConflict, "Pengajuan sudah diputuskan")
	}

	// supervisor hanya boleh memutuskan pengajuan intern bimbingannya
	if helper.GetRoleFromLocals(c) == constants.RoleSupervisor {
		var count int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&userModel.UserModel{}).
			Where("id = ? AND supervisor_id = ?", leave.UserID, approverID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa intern")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusForbidden, "Pengajuan bukan dari intern bimbingan Anda")
		}
	}

	now := time.Now()
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.LeaveRequestModel{}).
		Where("id = ? AND approval_status = ?", id, model.ApprovalPending).
		Updates(map[string]any{
			"approval_status": req.Decision,
			"approved_by":     approverID,
			"approved_at":     now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan keputusan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Pengajuan sudah diputuskan")
	}

	// beri tahu pemohon; gagal notifikasi tidak menggagalkan keputusan
	notifType := notificationModel.NotificationSuccess
	if req.Decision == string(model.ApprovalRejected) {
		notifType = notificationModel.NotificationWarning
	}
	if err := notificationController.Notify(
		ctl.DB,
		leave.UserID,
		"Pengajuan "+string(leave.LeaveType),
		fmt.Sprintf("Pengajuan %s %s s/d %s: %s", leave.LeaveType, leave.StartDate, leave.EndDate, req.Decision),
		notifType,
	); err != nil {
		log.Println("[WARN] gagal kirim notifikasi keputusan cuti:", err)
	}

	leave.ApprovalStatus = model.ApprovalStatus(req.Decision)
	leave.ApprovedBy = &approverID
	leave.ApprovedAt = &now
	return helper.JsonUpdated(c, "Keputusan disimpan", leave)
}
