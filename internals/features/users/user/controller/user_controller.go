// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/users/user/dto"
	"magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/u/users/me
func (ctl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&user))
}

// PATCH /api/u/users/me
func (ctl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonUpdated(c, "Profil diperbarui", dto.FromModel(&user))
}

// GET /api/a/users: listing untuk admin (paginated + filter role/search)
func (ctl *UserController) List(c *fiber.Ctx) error {
	var q dto.ListUsersQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query invalid")
	}
	if err := ctl.Validator.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if q.Role != nil && *q.Role != "" {
		tx = tx.Where("role = ?", *q.Role)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		s := "%" + strings.TrimSpace(*q.Search) + "%"
		tx = tx.Where("full_name ILIKE ? OR email ILIKE ?", s, s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := tx.Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonList(c, "ok", dto.FromModels(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/s/interns: daftar intern yang dibimbing supervisor login
func (ctl *UserController) MyInterns(c *fiber.Ctx) error {
	supervisorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var interns []model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("supervisor_id = ? AND role = ?", supervisorID, constants.RoleIntern).
		Order("full_name ASC").
		Find(&interns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar intern")
	}
	return helper.JsonOK(c, "ok", dto.FromModels(interns))
}
