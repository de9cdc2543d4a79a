package users

import (
	"log"

	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	authService "magangku_backend/internals/features/users/auth/service"
	userModel "magangku_backend/internals/features/users/user/model"
)

// SeedDemoUsers membuat akun demo admin/supervisor/intern.
// Idempotent: akun yang sudah ada dilewati.
func SeedDemoUsers(db *gorm.DB) {
	demoUsers := []struct {
		Email    string
		FullName string
		Role     string
	}{
		{"admin@lemigas.com", "Admin User", constants.RoleAdmin},
		{"supervisor@lemigas.com", "Supervisor User", constants.RoleSupervisor},
		{"intern@lemigas.com", "Intern User", constants.RoleIntern},
	}

	log.Println("🌱 Seeding demo users...")

	for _, u := range demoUsers {
		var count int64
		if err := db.Model(&userModel.UserModel{}).
			Where("email = ?", u.Email).
			Count(&count).Error; err != nil {
			log.Printf("[SEED ERROR] cek %s: %v", u.Email, err)
			continue
		}
		if count > 0 {
			log.Printf("[SEED] %s sudah ada, skip", u.Email)
			continue
		}

		hash, err := authService.HashPassword("password123")
		if err != nil {
			log.Printf("[SEED ERROR] hash password %s: %v", u.Email, err)
			continue
		}

		user := userModel.UserModel{
			Email:    u.Email,
			Password: hash,
			FullName: u.FullName,
			Role:     u.Role,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("[SEED ERROR] create %s: %v", u.Email, err)
			continue
		}
		log.Printf("[SEED] %s (%s) dibuat", u.Email, u.Role)
	}
}
