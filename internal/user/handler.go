package user

import (
	"github.com/gin-gonic/gin"

	"github.com/trendtrails/server/internal/auth/authctx"
	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/server/respond"
	"github.com/trendtrails/server/internal/validation"
)

// UpdateProfileRequest is the body of PATCH /users/me. All fields are
// optional; absent fields are left unchanged.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// Handler serves the profile endpoints under /users/me. All routes
// require a bearer principal; the subject id comes from the verified
// claims, never from the request.
type Handler struct {
	users *Service
}

// NewHandler creates a user handler.
func NewHandler(users *Service) *Handler {
	return &Handler{users: users}
}

// Register mounts the profile routes on the given group.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.GET("/me", h.me)
	g.PATCH("/me", h.update)
	g.DELETE("/me", h.delete)
}

func (h *Handler) me(c *gin.Context) {
	claims := authctx.MustGet(c.Request.Context())
	id, err := claims.UserID()
	if err != nil {
		respond.Error(c, errors.InvalidToken().WithCause(err))
		return
	}

	u, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, u)
}

func (h *Handler) update(c *gin.Context) {
	claims := authctx.MustGet(c.Request.Context())
	id, err := claims.UserID()
	if err != nil {
		respond.Error(c, errors.InvalidToken().WithCause(err))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, errors.Validation("Request body must be valid JSON.").WithCause(err))
		return
	}
	if err := validation.Validate(&req); err != nil {
		respond.Error(c, err)
		return
	}

	u, err := h.users.Update(c.Request.Context(), id, UpdateInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, u)
}

func (h *Handler) delete(c *gin.Context) {
	claims := authctx.MustGet(c.Request.Context())
	id, err := claims.UserID()
	if err != nil {
		respond.Error(c, errors.InvalidToken().WithCause(err))
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	respond.NoContent(c)
}
