package handlers_fiber

import (
	"net/http"

	"release-config-exchange/internal/api"
	"release-config-exchange/internal/entities"
	"release-config-exchange/internal/mapper"
	"release-config-exchange/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostRequester swaps the requester with the provider named in the body.
func (h *Handler) PostRequester(c *fiber.Ctx) error {
	var body api.SwapRequesterRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	return h.swapRequester(c, body.Provider, body.Credentials)
}

// PostProviderRequester swaps the requester with the provider named in the path.
func (h *Handler) PostProviderRequester(c *fiber.Ctx) error {
	var body api.CredentialsBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	return h.swapRequester(c, c.Params("provider"), body)
}

func (h *Handler) swapRequester(c *fiber.Ctx, rawProvider string, body api.CredentialsBody) error {
	id, ok := projectID(c)
	if !ok {
		return badRequest(c, "invalid project id")
	}

	provider, err := entities.ParseProvider(rawProvider)
	if err != nil {
		return writeError(c, err)
	}

	project, err := h.uc.SwapRequester(c.Context(), middleware.CallerFrom(c), id, provider, mapper.FromAPICredentials(body))
	if err != nil {
		h.log.Infow("requester swap failed", "project_id", id, "provider", provider, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*project))
}
