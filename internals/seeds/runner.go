package seeds

import (
	"gorm.io/gorm"

	users "magangku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	users.SeedDemoUsers(db)
}
