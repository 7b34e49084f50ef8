package comment

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists comments via GORM. It returns raw storage errors; the
// service layer translates them into AppErrors.
type Store struct {
	db *gorm.DB
}

// NewStore creates a comment store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByID loads a comment with its author.
func (s *Store) FindByID(ctx context.Context, id int64) (*Comment, error) {
	var cm Comment
	err := s.db.WithContext(ctx).Preload("User").First(&cm, id).Error
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// ListByBlog returns all comments on the given post, oldest first.
func (s *Store) ListByBlog(ctx context.Context, blogID int64) ([]Comment, error) {
	var comments []Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a new comment.
func (s *Store) Create(ctx context.Context, cm *Comment) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(cm).Error
}

// Delete removes a comment by primary key.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&Comment{}, id).Error
}
