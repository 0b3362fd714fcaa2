package seeders_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/models"
	"github.com/pest-report/api-go/seeders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newSeederDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	return db
}

func TestSeedAdmin(t *testing.T) {
	db := newSeederDB(t)

	cfg := &config.Config{AdminEmail: "admin@example.com", AdminPassword: "ChangeMe123!"}

	require.NoError(t, seeders.SeedAdmin(db, cfg))

	var admin models.Admin
	require.NoError(t, db.Where("email = ?", cfg.AdminEmail).First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(cfg.AdminPassword)))

	// Running it again is a no-op, not a duplicate.
	require.NoError(t, seeders.SeedAdmin(db, cfg))
	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedAdminRequiresCredentials(t *testing.T) {
	db := newSeederDB(t)
	assert.Error(t, seeders.SeedAdmin(db, &config.Config{}))
}
