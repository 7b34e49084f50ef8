// Package guard gates incoming requests on a declared authentication
// mode. Each route declares which modes satisfy it; the dispatcher runs
// the matching verification strategies and attaches the verified
// principal to the request context. Routes that declare nothing get
// bearer verification; the default fails closed.
package guard

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trendtrails/server/internal/auth/authctx"
	"github.com/trendtrails/server/internal/auth/token"
	"github.com/trendtrails/server/internal/errors"
)

// Mode is the closed set of authentication requirements a route can
// declare. The zero value is ModeBearer so an undeclared or unknown
// mode always requires a verified token.
type Mode uint8

const (
	// ModeBearer requires a valid signed token in the Authorization header.
	ModeBearer Mode = iota

	// ModeNone performs no verification and always authorizes.
	ModeNone
)

// Strategy verifies one authentication mode for an in-flight request.
type Strategy interface {
	// Authenticate inspects the request and returns nil when it is
	// authorized under this strategy.
	Authenticate(c *gin.Context) error
}

// Dispatcher resolves declared modes to strategies. The strategy table
// is built once at startup and read-only afterwards.
type Dispatcher struct {
	strategies map[Mode]Strategy
}

// NewDispatcher builds the dispatcher with its full strategy table.
func NewDispatcher(tokens *token.Service) *Dispatcher {
	return &Dispatcher{
		strategies: map[Mode]Strategy{
			ModeBearer: &bearerStrategy{tokens: tokens},
			ModeNone:   noneStrategy{},
		},
	}
}

// Middleware returns a Gin middleware enforcing the declared modes.
// Modes are attempted in declaration order; the first success
// authorizes the request. A strategy that errors counts as a failed
// attempt, not a fatal dispatch error. When every declared mode fails
// the request is rejected with 401. Declaring no mode means ModeBearer.
func (d *Dispatcher) Middleware(modes ...Mode) gin.HandlerFunc {
	if len(modes) == 0 {
		modes = []Mode{ModeBearer}
	}

	// Resolve strategies at route-registration time, not per request.
	strategies := make([]Strategy, 0, len(modes))
	for _, m := range modes {
		s, ok := d.strategies[m]
		if !ok {
			s = d.strategies[ModeBearer]
		}
		strategies = append(strategies, s)
	}

	return func(c *gin.Context) {
		for _, s := range strategies {
			if err := s.Authenticate(c); err == nil {
				c.Next()
				return
			}
		}
		appErr := errors.Unauthorized("")
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
	}
}

// noneStrategy authorizes unconditionally.
type noneStrategy struct{}

func (noneStrategy) Authenticate(*gin.Context) error { return nil }

// bearerStrategy requires and verifies a bearer token, then attaches
// the claims to the request context for downstream handlers.
type bearerStrategy struct {
	tokens *token.Service
}

func (s *bearerStrategy) Authenticate(c *gin.Context) error {
	raw, err := extractBearer(c.GetHeader("Authorization"))
	if err != nil {
		return err
	}

	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return err
	}

	c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), claims))
	return nil
}

// extractBearer pulls the credential out of an Authorization header.
// The header must be exactly two space-separated parts with the Bearer
// scheme.
func extractBearer(header string) (string, error) {
	if header == "" {
		return "", errors.Unauthorized("Authorization header required.")
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.Unauthorized("Invalid authorization header format.")
	}
	return parts[1], nil
}
