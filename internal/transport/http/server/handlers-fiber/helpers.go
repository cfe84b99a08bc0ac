package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"release-config-exchange/internal/api"
	"release-config-exchange/internal/entities"

	"github.com/gofiber/fiber/v2"
)

const (
	msgUnreachable = "Could not verify the token with the CI provider, please try again later"
	msgInternal    = "internal error"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := msgInternal

	var credErr *entities.CredentialsError
	switch {
	case errors.As(err, &credErr):
		status = http.StatusUnauthorized
		msg = credErr.Message
	case errors.Is(err, entities.ErrProviderUnreachable):
		status = http.StatusBadGateway
		msg = msgUnreachable
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrUnknownProvider):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrNotConfigured):
		status = http.StatusBadRequest
		msg = "Project is not configured to use Slack as a responder"
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
		msg = "authentication required"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		msg = "you do not have admin access to this repository"
	case errors.Is(err, entities.ErrProjectNotFound):
		status = http.StatusNotFound
		msg = "project not found"
	}

	return c.Status(status).JSON(api.ErrorResponse{Error: msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: msg})
}

func projectID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
