// Package store is the gorm-backed storage collaborator. Lookups report a
// missing row as a nil record rather than an error, and mutations report
// the affected row count so the service layer can tell "already gone" from
// success.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tduyile04/document-management-api/internal/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindWithDocuments loads a user together with their documents.
func (s *UserStore) FindWithDocuments(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Documents").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateIfAbsent creates the user unless the email is already taken. The
// second return value reports whether a row was created.
func (s *UserStore) CreateIfAbsent(ctx context.Context, user models.User) (*models.User, bool, error) {
	var out models.User
	res := s.db.WithContext(ctx).
		Where("email = ?", user.Email).
		Attrs(user).
		FirstOrCreate(&out)
	if res.Error != nil {
		return nil, false, res.Error
	}
	return &out, res.RowsAffected == 1, nil
}

// List returns one page of users along with the unpaginated total.
func (s *UserStore) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := query.Order("id").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserStore) UpdateByID(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (s *UserStore) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Document{}, "user_id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}
	res = s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// Search matches the query as a substring of the name or email.
func (s *UserStore) Search(ctx context.Context, query string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := s.db.WithContext(ctx).
		Where("name LIKE ? OR email LIKE ?", pattern, pattern).
		Order("id").
		Find(&users).Error
	return users, err
}
