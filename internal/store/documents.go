package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tduyile04/document-management-api/internal/models"
	"github.com/tduyile04/document-management-api/internal/policy"
)

type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) FindByID(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateIfAbsent creates the document unless the title is already taken.
// The second return value reports whether a row was created.
func (s *DocumentStore) CreateIfAbsent(ctx context.Context, doc models.Document) (*models.Document, bool, error) {
	var out models.Document
	res := s.db.WithContext(ctx).
		Where("title = ?", doc.Title).
		Attrs(doc).
		FirstOrCreate(&out)
	if res.Error != nil {
		return nil, false, res.Error
	}
	return &out, res.RowsAffected == 1, nil
}

// List returns one page of documents visible under the filter along with
// the unpaginated total.
func (s *DocumentStore) List(ctx context.Context, filter policy.DocumentFilter, limit, offset int) ([]models.Document, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Document{})
	query = applyFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []models.Document
	if err := query.Order("id").Limit(limit).Offset(offset).Find(&docs).Error; err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func applyFilter(query *gorm.DB, filter policy.DocumentFilter) *gorm.DB {
	if filter.Unrestricted {
		return query
	}
	return query.Where(
		"access = ? OR (access = ? AND user_role_id = ?) OR (access = ? AND user_id = ?)",
		models.AccessPublic,
		models.AccessRole, filter.Role,
		models.AccessPrivate, filter.UserID,
	)
}

func (s *DocumentStore) UpdateByID(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Document{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (s *DocumentStore) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Document{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// Search matches the query as a substring of the title.
func (s *DocumentStore) Search(ctx context.Context, query string) ([]models.Document, error) {
	var docs []models.Document
	err := s.db.WithContext(ctx).
		Where("title LIKE ?", "%"+query+"%").
		Order("id").
		Find(&docs).Error
	return docs, err
}

// ListByOwner returns every document created by the given user.
func (s *DocumentStore) ListByOwner(ctx context.Context, userID uint) ([]models.Document, error) {
	var docs []models.Document
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&docs).Error
	return docs, err
}
