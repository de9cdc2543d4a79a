// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	authDTO "magangku_backend/internals/features/users/auth/dto"
	authModel "magangku_backend/internals/features/users/auth/model"
	userDTO "magangku_backend/internals/features/users/user/dto"
	userModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.WithContext(c.UserContext()).
		First(&user, "email = ?", input.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Println("[ERROR] login lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := CreateAccessToken(user.ID, user.Role)
	if err != nil {
		log.Println("[ERROR] issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: token,
		User:        userDTO.FromModel(&user),
	})
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidRole(input.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		log.Println("[ERROR] hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		Email:               input.Email,
		Password:            hash,
		FullName:            input.FullName,
		Role:                input.Role,
		InternshipStartDate: input.InternshipStartDate,
		InternshipEndDate:   input.InternshipEndDate,
		IsActive:            true,
	}
	if input.SupervisorID != nil {
		sid, err := uuid.Parse(*input.SupervisorID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "supervisor_id invalid")
		}
		user.SupervisorID = &sid
	}

	if err := db.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registrasi gagal")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.FromModel(&user))
}

/* ==========================
   LOGOUT (blacklist token)
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ada")
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: TokenExpiry(tokenString),
	}
	if err := db.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		if isDuplicateKey(err) {
			// sudah di-blacklist, anggap sukses
			return helper.JsonOK(c, "Logout berhasil", nil)
		}
		log.Println("[ERROR] blacklist token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout gagal")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
