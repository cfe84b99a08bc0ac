package handlers_fiber

import (
	"net/http"

	"release-config-exchange/internal/api"
	"release-config-exchange/internal/mapper"
	"release-config-exchange/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostSlackResponder starts a new Slack linking handshake.
func (h *Handler) PostSlackResponder(c *fiber.Ctx) error {
	id, ok := projectID(c)
	if !ok {
		return badRequest(c, "invalid project id")
	}

	res, err := h.uc.CreateLink(c.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		h.log.Errorw("failed to create slack linker", "project_id", id, "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPILink(*res))
}

// PatchSlackResponder changes the Slack user mentioned on release requests.
func (h *Handler) PatchSlackResponder(c *fiber.Ctx) error {
	id, ok := projectID(c)
	if !ok {
		return badRequest(c, "invalid project id")
	}

	var body api.UpdateResponderRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	project, err := h.uc.UpdateMention(c.Context(), middleware.CallerFrom(c), id, body.UsernameToMention)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*project))
}
