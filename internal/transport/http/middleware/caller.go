package middleware

import (
	"strings"

	"release-config-exchange/internal/entities"

	"github.com/gofiber/fiber/v2"
)

const callerKey = "caller"

// Caller stores the identity forwarded by the session proxy in header.
// Requests without it continue anonymously and are rejected by authorization.
func Caller(header string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		login := strings.TrimSpace(c.Get(header))
		c.Locals(callerKey, entities.Caller{Login: login})
		return c.Next()
	}
}

// CallerFrom returns the caller stored by Caller.
func CallerFrom(c *fiber.Ctx) entities.Caller {
	caller, _ := c.Locals(callerKey).(entities.Caller)
	return caller
}
