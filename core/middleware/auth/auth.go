package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header carries the API key.
const Header = "X-API-Key"

// Config configures the API key check.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
	// Skip bypasses the check for matching requests.
	Skip func(c *fiber.Ctx) bool
}

// New returns a middleware rejecting requests without the configured key.
func New(cfg Config) fiber.Handler {
	want := []byte(cfg.ApiKey)

	return func(c *fiber.Ctx) error {
		if len(want) == 0 || (cfg.Skip != nil && cfg.Skip(c)) {
			return c.Next()
		}

		got := []byte(c.Get(Header))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
				"code":  "unauthorized",
			})
		}
		return c.Next()
	}
}
