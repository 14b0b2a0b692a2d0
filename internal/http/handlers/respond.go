package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "ecycle/internal/log"
	"ecycle/internal/services"
)

var errStatus = map[error]int{
	services.ErrEmailTaken:    fiber.StatusBadRequest,
	services.ErrUsernameTaken: fiber.StatusBadRequest,
	services.ErrAdminExists:   fiber.StatusBadRequest,
	services.ErrNotWorking:    fiber.StatusBadRequest,
	services.ErrSelfPurchase:  fiber.StatusBadRequest,

	services.ErrBadCreds:     fiber.StatusUnauthorized,
	services.ErrTokenInvalid: fiber.StatusUnauthorized,

	services.ErrUserNotFound:           fiber.StatusNotFound,
	services.ErrClassificationNotFound: fiber.StatusNotFound,
	services.ErrItemNotFound:           fiber.StatusNotFound,
	services.ErrItemUnavailable:        fiber.StatusNotFound,
	services.ErrPurchaseNotFound:       fiber.StatusNotFound,
}

// fail maps a workflow error to its status. Anything outside the domain
// taxonomy is logged and surfaced as a generic 500 with no internal detail.
func fail(c *fiber.Ctx, action string, err error) error {
	for sentinel, status := range errStatus {
		if errors.Is(err, sentinel) {
			return c.Status(status).JSON(fiber.Map{"error": sentinel.Error()})
		}
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
