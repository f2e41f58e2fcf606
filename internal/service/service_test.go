package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tduyile04/document-management-api/internal/auth"
	"github.com/tduyile04/document-management-api/internal/database"
	"github.com/tduyile04/document-management-api/internal/models"
	"github.com/tduyile04/document-management-api/internal/store"
)

var testHasher = auth.NewBcryptHasher(bcrypt.MinCost)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testServices(t *testing.T) (*UserService, *DocumentService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	tokens := auth.NewTokens([]byte("test-secret"), time.Hour)
	users := store.NewUserStore(db)
	docs := store.NewDocumentStore(db)
	return NewUserService(users, tokens, testHasher),
		NewDocumentService(docs, users),
		db
}

func seedAccount(t *testing.T, db *gorm.DB, name, email, password string, role models.RoleID) models.User {
	t.Helper()
	hash, err := testHasher.Hash(password)
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, Password: hash, RoleID: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedDocument(t *testing.T, db *gorm.DB, title, access string, owner models.User) models.Document {
	t.Helper()
	doc := models.Document{
		Title:      title,
		Content:    "content of " + title,
		Access:     access,
		UserID:     owner.ID,
		UserRoleID: owner.RoleID,
	}
	require.NoError(t, db.Create(&doc).Error)
	return doc
}

// messageOf unwraps the message field of an error/notice result body.
func messageOf(t *testing.T, res Result) any {
	t.Helper()
	body, ok := res.Body.(map[string]any)
	require.True(t, ok, "body is not a message envelope: %#v", res.Body)
	return body["message"]
}

func userCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	return count
}

func documentCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Document{}).Count(&count).Error)
	return count
}
