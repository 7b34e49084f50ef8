// Package app wires configuration, infrastructure, providers, and
// services into a runnable server. Construction is two-phase: New
// builds and connects everything or fails, Run serves until the context
// is cancelled.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/trendtrails/server/internal/auth"
	"github.com/trendtrails/server/internal/auth/google"
	"github.com/trendtrails/server/internal/auth/guard"
	"github.com/trendtrails/server/internal/auth/password"
	"github.com/trendtrails/server/internal/auth/token"
	"github.com/trendtrails/server/internal/blog"
	"github.com/trendtrails/server/internal/comment"
	"github.com/trendtrails/server/internal/config"
	"github.com/trendtrails/server/internal/database"
	"github.com/trendtrails/server/internal/logger"
	"github.com/trendtrails/server/internal/mail"
	"github.com/trendtrails/server/internal/server"
	"github.com/trendtrails/server/internal/user"
)

const shutdownTimeout = 10 * time.Second

// App holds the assembled server and its infrastructure handles.
type App struct {
	cfg *config.Config
	log *logger.Logger
	db  *database.DB
	srv *server.Server
}

// New builds the full dependency graph. Any failure here is fatal to
// startup; the process must not serve with a partial stack.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&user.User{}, &blog.Blog{}, &comment.Comment{}); err != nil {
		return nil, err
	}

	tokens, err := token.NewService(token.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL(),
	})
	if err != nil {
		return nil, err
	}

	googleClient, err := google.NewClient(ctx, google.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("app: google federation: %w", err)
	}

	notifier, err := mail.NewSMTPNotifier(cfg.SMTP, log)
	if err != nil {
		return nil, err
	}

	hasher := password.NewBcryptHasher()

	users := user.NewService(user.NewStore(db.Gorm), hasher, log)
	authSvc := auth.NewService(users, hasher, tokens, googleClient, notifier,
		cfg.SMTP.ResetPasswordURL, log)
	blogs := blog.NewService(blog.NewStore(db.Gorm), users, log)
	comments := comment.NewService(comment.NewStore(db.Gorm), blogs, users, log)

	dispatch := guard.NewDispatcher(tokens)
	router := buildRouter(log, db, dispatch, authSvc, users, blogs, comments)

	srv := server.New(server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, router, log)

	return &App{cfg: cfg, log: log.WithComponent("app"), db: db, srv: srv}, nil
}

// Run serves until ctx is cancelled, then drains and closes.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.srv.Start()
	}()

	select {
	case err := <-errCh:
		a.db.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		a.log.WithError(err).Error("Shutdown did not drain cleanly")
	}
	if err := a.db.Close(); err != nil {
		return err
	}
	a.log.Info("Server stopped")
	return nil
}
