package comment

import (
	"context"

	"github.com/trendtrails/server/internal/database"
	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/logger"
	"github.com/trendtrails/server/internal/user"
)

// Blogs is the slice of the blog service the comment flows need.
// *blog.Service satisfies it.
type Blogs interface {
	Exists(ctx context.Context, id int64) error
}

// Directory is the slice of the user directory the comment flows need.
// *user.Service satisfies it.
type Directory interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
}

// Service implements comment operations.
type Service struct {
	store     *Store
	blogs     Blogs
	directory Directory
	log       *logger.Logger
}

// NewService creates a comment service.
func NewService(store *Store, blogs Blogs, directory Directory, log *logger.Logger) *Service {
	return &Service{store: store, blogs: blogs, directory: directory, log: log.WithComponent("comment")}
}

// Create posts a comment by authorID on the given blog. Both the post
// and the author must exist.
func (s *Service) Create(ctx context.Context, authorID, blogID int64, message string) (*Comment, error) {
	if err := s.blogs.Exists(ctx, blogID); err != nil {
		return nil, err
	}
	author, err := s.directory.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	cm := &Comment{
		Message: message,
		UserID:  author.ID,
		BlogID:  blogID,
	}
	if err := s.store.Create(ctx, cm); err != nil {
		return nil, database.Translate(err, "comment")
	}
	cm.User = *author

	s.log.Info("Comment created", map[string]interface{}{
		"comment_id": cm.ID,
		"blog_id":    blogID,
		"user_id":    author.ID,
	})
	return cm, nil
}

// ListByBlog returns the comment thread of a post, oldest first.
func (s *Service) ListByBlog(ctx context.Context, blogID int64) ([]Comment, error) {
	if err := s.blogs.Exists(ctx, blogID); err != nil {
		return nil, err
	}
	comments, err := s.store.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, database.Translate(err, "comment")
	}
	if comments == nil {
		comments = []Comment{}
	}
	return comments, nil
}

// Delete removes a comment. Only its author or an admin may delete.
func (s *Service) Delete(ctx context.Context, id, actorID int64) error {
	cm, err := s.store.FindByID(ctx, id)
	if err != nil {
		return database.Translate(err, "comment")
	}

	if cm.UserID != actorID {
		actor, err := s.directory.FindByID(ctx, actorID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() {
			return errors.Forbidden("")
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return database.Translate(err, "comment")
	}
	s.log.Info("Comment deleted", map[string]interface{}{"comment_id": id, "user_id": actorID})
	return nil
}
