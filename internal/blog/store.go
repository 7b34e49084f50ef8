package blog

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists blogs via GORM. It returns raw storage errors; the
// service layer translates them into AppErrors.
type Store struct {
	db *gorm.DB
}

// NewStore creates a blog store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByID loads a blog with its author and comment thread.
func (s *Store) FindByID(ctx context.Context, id int64) (*Blog, error) {
	var b Blog
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByTitle looks a blog up by its exact title.
func (s *Store) FindByTitle(ctx context.Context, title string) (*Blog, error) {
	var b Blog
	err := s.db.WithContext(ctx).Where("title = ?", title).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns one page of blogs, newest first, with the total count.
func (s *Store) List(ctx context.Context, offset, limit int) ([]Blog, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&Blog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var blogs []Blog
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

// ListByUser returns all blogs authored by the given user, newest first.
func (s *Store) ListByUser(ctx context.Context, userID int64) ([]Blog, error) {
	var blogs []Blog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// Search returns one page of blogs whose title or tags contain term,
// case-insensitively, newest first.
func (s *Store) Search(ctx context.Context, term string, offset, limit int) ([]Blog, error) {
	like := "%" + strings.ToLower(term) + "%"

	var blogs []Blog
	err := s.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(tags) LIKE ?", like, like).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// Create inserts a new blog. The unique index on title surfaces
// duplicates as gorm.ErrDuplicatedKey.
func (s *Store) Create(ctx context.Context, b *Blog) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

// Save persists all fields of an existing blog. Associations are left
// untouched; authors and comments have their own write paths.
func (s *Store) Save(ctx context.Context, b *Blog) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

// Delete removes a blog and, through the cascade, its comments.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Select("Comments").Delete(&Blog{ID: id}).Error
}
