package blog

import (
	"context"

	"github.com/trendtrails/server/internal/database"
	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/logger"
	"github.com/trendtrails/server/internal/pagination"
	"github.com/trendtrails/server/internal/user"
)

// Directory is the slice of the user directory the blog flows need.
// *user.Service satisfies it.
type Directory interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
}

// CreateInput carries the fields for a new post.
type CreateInput struct {
	Title     string
	Body      string
	Thumbnail []byte
	Tags      []string
}

// UpdateInput carries a partial post update. Nil fields are left
// untouched.
type UpdateInput struct {
	Title     *string
	Body      *string
	Thumbnail []byte
	Tags      []string
}

// Service implements blog operations. Write operations are restricted
// to the post's author or an admin; liking is open to any
// authenticated reader.
type Service struct {
	store     *Store
	directory Directory
	log       *logger.Logger
}

// NewService creates a blog service.
func NewService(store *Store, directory Directory, log *logger.Logger) *Service {
	return &Service{store: store, directory: directory, log: log.WithComponent("blog")}
}

// Create publishes a new post owned by authorID. A duplicate title
// yields AlreadyExists.
func (s *Service) Create(ctx context.Context, authorID int64, in CreateInput) (*Blog, error) {
	if _, err := s.store.FindByTitle(ctx, in.Title); err == nil {
		return nil, errors.AlreadyExists("blog")
	} else if !database.IsNotFound(err) {
		return nil, database.Translate(err, "blog")
	}

	author, err := s.directory.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	b := &Blog{
		Title:     in.Title,
		Body:      in.Body,
		Thumbnail: in.Thumbnail,
		Tags:      in.Tags,
		UserID:    author.ID,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return nil, database.Translate(err, "blog")
	}
	b.User = *author

	s.log.Info("Blog created", map[string]interface{}{"blog_id": b.ID, "user_id": author.ID})
	return b, nil
}

// Get returns a post with its author and comment thread, or NotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Blog, error) {
	b, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, database.Translate(err, "blog")
	}
	return b, nil
}

// Exists reports via error whether the post exists.
func (s *Service) Exists(ctx context.Context, id int64) error {
	_, err := s.store.FindByID(ctx, id)
	if err != nil {
		return database.Translate(err, "blog")
	}
	return nil
}

// List returns one page of posts, newest first.
func (s *Service) List(ctx context.Context, q pagination.Query) (pagination.Page[Blog], error) {
	blogs, total, err := s.store.List(ctx, q.Offset(), q.Limit)
	if err != nil {
		return pagination.Page[Blog]{}, database.Translate(err, "blog")
	}
	return pagination.NewPage(blogs, total, q, "/blogs"), nil
}

// ListByUser returns all posts authored by the given user.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Blog, error) {
	if _, err := s.directory.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	blogs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, database.Translate(err, "blog")
	}
	return blogs, nil
}

// Search returns one page of posts whose title or tags match term.
func (s *Service) Search(ctx context.Context, term string, q pagination.Query) ([]Blog, error) {
	blogs, err := s.store.Search(ctx, term, q.Offset(), q.Limit)
	if err != nil {
		return nil, database.Translate(err, "blog")
	}
	if blogs == nil {
		blogs = []Blog{}
	}
	return blogs, nil
}

// Update applies a partial update and optionally counts a like. Field
// changes require the actor to be the author or an admin; a like alone
// is open to any authenticated reader.
func (s *Service) Update(ctx context.Context, id, actorID int64, in UpdateInput, addLike bool) (*Blog, error) {
	b, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, database.Translate(err, "blog")
	}

	changesFields := in.Title != nil || in.Body != nil || in.Thumbnail != nil || in.Tags != nil
	if changesFields {
		if err := s.authorize(ctx, b.UserID, actorID); err != nil {
			return nil, err
		}
	}

	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Body != nil {
		b.Body = *in.Body
	}
	if in.Thumbnail != nil {
		b.Thumbnail = in.Thumbnail
	}
	if in.Tags != nil {
		b.Tags = in.Tags
	}
	if addLike {
		b.Likes++
	}

	if err := s.store.Save(ctx, b); err != nil {
		return nil, database.Translate(err, "blog")
	}
	return b, nil
}

// Delete removes a post and its comments. Only the author or an admin
// may delete.
func (s *Service) Delete(ctx context.Context, id, actorID int64) error {
	b, err := s.store.FindByID(ctx, id)
	if err != nil {
		return database.Translate(err, "blog")
	}

	if err := s.authorize(ctx, b.UserID, actorID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return database.Translate(err, "blog")
	}
	s.log.Info("Blog deleted", map[string]interface{}{"blog_id": id, "user_id": actorID})
	return nil
}

// authorize allows the owner and admins, and rejects everyone else.
func (s *Service) authorize(ctx context.Context, ownerID, actorID int64) error {
	if actorID == ownerID {
		return nil
	}
	actor, err := s.directory.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor.IsAdmin() {
		return nil
	}
	return errors.Forbidden("")
}
