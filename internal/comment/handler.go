package comment

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trendtrails/server/internal/auth/authctx"
	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/server/respond"
	"github.com/trendtrails/server/internal/validation"
)

// CreateCommentRequest is the body of POST /comments. The author comes
// from the bearer principal, never from the body.
type CreateCommentRequest struct {
	BlogID  int64  `json:"blogId" validate:"required,gt=0"`
	Message string `json:"message" validate:"required,min=1,max=500"`
}

// Handler serves the comment endpoints. All routes require a bearer
// principal.
type Handler struct {
	comments *Service
}

// NewHandler creates a comment handler.
func NewHandler(comments *Service) *Handler {
	return &Handler{comments: comments}
}

// Register mounts the comment routes on the given group.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.POST("", h.create)
	g.GET("/blog/:blogId", h.listByBlog)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, errors.Validation("Request body must be valid JSON.").WithCause(err))
		return
	}
	if err := validation.Validate(&req); err != nil {
		respond.Error(c, err)
		return
	}

	cm, err := h.comments.Create(c.Request.Context(), actorID, req.BlogID, req.Message)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, cm)
}

func (h *Handler) listByBlog(c *gin.Context) {
	blogID, ok := pathID(c, "blogId")
	if !ok {
		return
	}

	comments, err := h.comments.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, comments)
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

	if err := h.comments.Delete(c.Request.Context(), id, actorID); err != nil {
		respond.Error(c, err)
		return
	}
	respond.NoContent(c)
}

func actor(c *gin.Context) (int64, bool) {
	claims := authctx.MustGet(c.Request.Context())
	id, err := claims.UserID()
	if err != nil {
		respond.Error(c, errors.InvalidToken().WithCause(err))
		return 0, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		respond.Error(c, errors.Validation("Path parameter "+name+" must be a positive integer."))
		return 0, false
	}
	return id, true
}
