package seeders

import (
	"fmt"

	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/logger"
	"github.com/pest-report/api-go/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the administrator account from ADMIN_EMAIL and
// ADMIN_PASSWORD if it does not exist yet. Safe to run repeatedly.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set to seed an admin")
	}

	var existing models.Admin
	if err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err == nil {
		logger.L().Info("admin already exists, skipping seed", zap.String("email", cfg.AdminEmail))
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:    cfg.AdminEmail,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.L().Info("admin seeded", zap.String("email", cfg.AdminEmail))
	return nil
}
