// internals/features/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/schedules/dto"
	"magangku_backend/internals/features/schedules/model"
	helper "magangku_backend/internals/helpers"
)

type ScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/u/schedules: jadwal milik user login
func (ctl *ScheduleController) Mine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var q dto.ListSchedulesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query invalid")
	}
	if err := ctl.Validator.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	tx := ctl.DB.WithContext(c.UserContext()).Where("user_id = ?", userID)
	if q.DateFrom != nil {
		tx = tx.Where("date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("date <= ?", *q.DateTo)
	}

	var schedules []model.ScheduleModel
	if err := tx.Order("date ASC, start_time ASC").Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.JsonOK(c, "ok", schedules)
}

// POST /api/a/schedules
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.EndTime <= req.StartTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time harus setelah start_time")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id invalid")
	}

	schedule := model.ScheduleModel{
		UserID:      userID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jadwal")
	}
	return helper.JsonCreated(c, "Jadwal dibuat", schedule)
}

// PATCH /api/a/schedules/:id
func (ctl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	var schedule model.ScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&schedule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&schedule).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update jadwal")
	}
	return helper.JsonUpdated(c, "Jadwal diperbarui", schedule)
}

// DELETE /api/a/schedules/:id
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ScheduleModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return helper.JsonOK(c, "Jadwal dihapus", nil)
}
