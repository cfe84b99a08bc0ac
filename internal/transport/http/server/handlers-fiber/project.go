package handlers_fiber

import (
	"net/http"

	"release-config-exchange/internal/mapper"
	"release-config-exchange/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetProject returns the full project representation.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	id, ok := projectID(c)
	if !ok {
		return badRequest(c, "invalid project id")
	}

	project, err := h.uc.Project(c.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*project))
}
