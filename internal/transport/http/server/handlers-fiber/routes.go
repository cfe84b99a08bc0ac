package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterHandlers mounts the project configuration routes on router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	project := router.Group("/api/project/:id")
	project.Get("/", h.GetProject)
	project.Post("/config/requester", h.PostRequester)
	project.Post("/config/requesters/:provider", h.PostProviderRequester)
	project.Post("/config/responders/slack", h.PostSlackResponder)
	project.Patch("/config/responders/slack", h.PatchSlackResponder)
}
