package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/server/respond"
	"github.com/trendtrails/server/internal/validation"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// GoogleTokenRequest is the body of POST /auth/google.
type GoogleTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ForgetPasswordRequest is the body of POST /auth/forget-password.
type ForgetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Handler serves the authentication endpoints. All of them are mounted
// without bearer protection; they are how tokens come to exist.
type Handler struct {
	auth *Service
}

// NewHandler creates an auth handler.
func NewHandler(auth *Service) *Handler {
	return &Handler{auth: auth}
}

// Register mounts the auth routes on the given group.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.POST("/login", h.login)
	g.POST("/register", h.register)
	g.POST("/google", h.google)
	g.POST("/forget-password", h.forgetPassword)
	g.POST("/reset-password", h.resetPassword)
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, result)
}

// register responds with the bare token string, not a wrapped object.
// Clients depend on this shape.
func (h *Handler) register(c *gin.Context) {
	var req RegisterRequest
	if !bind(c, &req) {
		return
	}

	raw, err := h.auth.Register(c.Request.Context(), RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, raw)
}

func (h *Handler) google(c *gin.Context) {
	var req GoogleTokenRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.auth.GoogleLogin(c.Request.Context(), req.Token)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) forgetPassword(c *gin.Context) {
	var req ForgetPasswordRequest
	if !bind(c, &req) {
		return
	}

	msg, err := h.auth.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, gin.H{"message": msg})
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bind(c, &req) {
		return
	}

	u, err := h.auth.ResetPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, u)
}

// bind decodes and validates the JSON body, writing the error response
// itself on failure.
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
