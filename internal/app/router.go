package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendtrails/server/internal/auth"
	"github.com/trendtrails/server/internal/auth/guard"
	"github.com/trendtrails/server/internal/blog"
	"github.com/trendtrails/server/internal/comment"
	"github.com/trendtrails/server/internal/database"
	"github.com/trendtrails/server/internal/logger"
	"github.com/trendtrails/server/internal/server"
	"github.com/trendtrails/server/internal/user"
	"github.com/trendtrails/server/internal/version"
)

func buildRouter(
	log *logger.Logger,
	db *database.DB,
	dispatch *guard.Dispatcher,
	authSvc *auth.Service,
	users *user.Service,
	blogs *blog.Service,
	comments *comment.Service,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(server.RequestID(), server.Logging(log), server.Recovery(log), server.CORS())

	r.GET("/health", healthHandler(db))

	// Token issuance routes must stay reachable without a token.
	authGroup := r.Group("/auth", dispatch.Middleware(guard.ModeNone))
	auth.NewHandler(authSvc).Register(authGroup)

	usersGroup := r.Group("/users", dispatch.Middleware(guard.ModeBearer))
	user.NewHandler(users).Register(usersGroup)

	// Blog routes declare modes per route: the reading surface is public.
	blogGroup := r.Group("/blogs")
	blog.NewHandler(blogs).Register(blogGroup, dispatch)

	// No mode declared: the dispatcher falls back to bearer.
	commentsGroup := r.Group("/comments", dispatch.Middleware())
	comment.NewHandler(comments).Register(commentsGroup)

	return r
}

func healthHandler(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "build": version.Get()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "build": version.Get()})
	}
}
