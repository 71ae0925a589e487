package auth

import (
	"strings"

	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const (
	localsUserID = "user_id"
	localsEmail  = "user_email"
)

// Middleware authenticates account holders from bearer tokens
type Middleware struct {
	verifier TokenVerifier
}

func NewMiddleware(verifier TokenVerifier) *Middleware {
	return &Middleware{verifier: verifier}
}

// Authenticate rejects requests without a valid token
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return ErrMissingToken()
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			return err
		}

		setClaims(c, claims)
		return c.Next()
	}
}

// Optional authenticates when a token is present and ignores bad ones
func (m *Middleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearerToken(c); ok {
			if claims, err := m.verifier.Verify(token); err == nil {
				setClaims(c, claims)
			}
		}
		return c.Next()
	}
}

// GetUserID extracts the authenticated user id
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	id, ok := c.Locals(localsUserID).(kernel.UserID)
	return id, ok && !id.IsEmpty()
}

// GetEmail extracts the authenticated user's email
func GetEmail(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(localsEmail).(string)
	return email, ok
}

func setClaims(c *fiber.Ctx, claims *Claims) {
	c.Locals(localsUserID, claims.UserID())
	c.Locals(localsEmail, claims.Email)
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
