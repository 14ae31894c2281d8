package auth

import (
	"crypto/subtle"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/server"

	"github.com/gofiber/fiber/v2"
)

// Config holds configuration for the auth middleware.
type Config struct {
	// Secret is the expected shared secret. An empty secret disables the check.
	Secret string
	// Header overrides the header name carrying the secret. Defaults to
	// server.SecretHeader.
	Header string
}

// New creates a middleware that rejects requests whose shared secret header
// does not match the configured value. With an empty secret the middleware is
// a pass-through, leaving the endpoints unauthenticated.
func New(cfg Config) fiber.Handler {
	header := cfg.Header
	if header == "" {
		header = server.SecretHeader
	}

	return func(c *fiber.Ctx) error {
		if cfg.Secret == "" {
			return c.Next()
		}

		got := c.Get(header)
		if subtle.ConstantTimeCompare([]byte(got), []byte(cfg.Secret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		return c.Next()
	}
}
