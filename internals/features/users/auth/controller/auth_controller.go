// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ctl.DB, c)
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ctl.DB, c)
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ctl.DB, c)
}
