package blog

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trendtrails/server/internal/auth/authctx"
	"github.com/trendtrails/server/internal/auth/guard"
	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/pagination"
	"github.com/trendtrails/server/internal/server/respond"
	"github.com/trendtrails/server/internal/validation"
)

// CreateBlogRequest is the body of POST /blogs. Thumbnail arrives as a
// base64 string in JSON and lands in the byte slice.
type CreateBlogRequest struct {
	Title     string   `json:"title" validate:"required,max=50"`
	Body      string   `json:"body" validate:"required,min=50"`
	Thumbnail []byte   `json:"thumbnail"`
	Tags      []string `json:"tags" validate:"required,min=1,dive,min=1"`
}

// UpdateBlogRequest is the body of PATCH /blogs/:id.
type UpdateBlogRequest struct {
	Title     *string  `json:"title" validate:"omitempty,max=50"`
	Body      *string  `json:"body" validate:"omitempty,min=50"`
	Thumbnail []byte   `json:"thumbnail"`
	Tags      []string `json:"tags" validate:"omitempty,min=1,dive,min=1"`
}

// Handler serves the blog endpoints. The reading surface (list, get,
// search) is public; everything else requires a bearer principal.
type Handler struct {
	blogs *Service
}

// NewHandler creates a blog handler.
func NewHandler(blogs *Service) *Handler {
	return &Handler{blogs: blogs}
}

// Register mounts the blog routes on the given group. dispatch supplies
// the per-route authorization middleware.
func (h *Handler) Register(g *gin.RouterGroup, dispatch *guard.Dispatcher) {
	g.GET("", dispatch.Middleware(guard.ModeNone), h.list)
	g.GET("/search", dispatch.Middleware(guard.ModeNone), h.search)
	g.GET("/:id", dispatch.Middleware(guard.ModeNone), h.get)
	g.GET("/user/:userId", dispatch.Middleware(guard.ModeBearer), h.listByUser)
	g.POST("", dispatch.Middleware(guard.ModeBearer), h.create)
	g.PATCH("/:id", dispatch.Middleware(guard.ModeBearer), h.update)
	g.DELETE("/:id", dispatch.Middleware(guard.ModeBearer), h.delete)
}

func (h *Handler) create(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	var req CreateBlogRequest
	if !bind(c, &req) {
		return
	}

	b, err := h.blogs.Create(c.Request.Context(), actorID, CreateInput{
		Title:     req.Title,
		Body:      req.Body,
		Thumbnail: req.Thumbnail,
		Tags:      req.Tags,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, b)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.blogs.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, b)
}

func (h *Handler) list(c *gin.Context) {
	page, err := h.blogs.List(c.Request.Context(), pagination.FromContext(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, page)
}

// listByUser only serves the caller's own posts.
func (h *Handler) listByUser(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if userID != actorID {
		respond.Error(c, errors.Forbidden("You can only list your own blogs."))
		return
	}

	blogs, err := h.blogs.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, blogs)
}

func (h *Handler) search(c *gin.Context) {
	term := c.Query("searchTerm")
	if term == "" {
		respond.Error(c, errors.MissingField("searchTerm"))
		return
	}

	blogs, err := h.blogs.Search(c.Request.Context(), term, pagination.FromContext(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, blogs)
}

func (h *Handler) update(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateBlogRequest
	if !bind(c, &req) {
		return
	}
	addLike := c.Query("addLike") == "true"

	b, err := h.blogs.Update(c.Request.Context(), id, actorID, UpdateInput{
		Title:     req.Title,
		Body:      req.Body,
		Thumbnail: req.Thumbnail,
		Tags:      req.Tags,
	}, addLike)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, b)
}

func (h *Handler) delete(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.blogs.Delete(c.Request.Context(), id, actorID); err != nil {
		respond.Error(c, err)
		return
	}
	respond.NoContent(c)
}

// actor extracts the authenticated subject id, responding itself when
// the token subject is unusable.
func actor(c *gin.Context) (int64, bool) {
	claims := authctx.MustGet(c.Request.Context())
	id, err := claims.UserID()
	if err != nil {
		respond.Error(c, errors.InvalidToken().WithCause(err))
		return 0, false
	}
	return id, true
}

// pathID parses a numeric path parameter, responding itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		respond.Error(c, errors.Validation("Path parameter "+name+" must be a positive integer."))
		return 0, false
	}
	return id, true
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respond.Error(c, errors.Validation("Request body must be valid JSON.").WithCause(err))
		return false
	}
	if err := validation.Validate(req); err != nil {
		respond.Error(c, err)
		return false
	}
	return true
}
