package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tduyile04/document-management-api/internal/models"
)

type Manager struct {
	DB *gorm.DB
}

func NewDatabaseManager() *Manager {
	return &Manager{}
}

func (dbm *Manager) Connect(dsn string) error {
	if dsn == "" {
		return fmt.Errorf("database dsn is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	dbm.DB = db
	return nil
}

func (dbm *Manager) Close() error {
	db, err := dbm.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// Migrate runs the schema migration and seeds the three roles. Shared with
// the test databases.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.Document{}); err != nil {
		return err
	}
	return seedRoles(db)
}

func seedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{ID: uint(models.Regular), RoleType: "regular"},
		{ID: uint(models.Admin), RoleType: "admin"},
		{ID: uint(models.SuperAdmin), RoleType: "superadmin"},
	}
	for _, role := range roles {
		var existing models.Role
		if err := db.Where("id = ?", role.ID).Attrs(role).FirstOrCreate(&existing).Error; err != nil {
			return err
		}
	}
	return nil
}
