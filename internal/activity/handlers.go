package activity

import (
	"errors"
	"strconv"

	"github.com/vezisop/velocity-v1-backend/internal/account"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/upload", authMiddleware, func(c *fiber.Ctx) error {
		var req UploadRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		resp, err := svc.Upload(c.Context(), req)
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	})

	r.Get("/feed", func(c *fiber.Ctx) error {
		feed, err := svc.Feed(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if feed == nil {
			feed = []Response{}
		}
		return c.JSON(feed)
	})

	r.Get("/me/:owner_id", func(c *fiber.Ctx) error {
		ownerID, err := strconv.ParseInt(c.Params("owner_id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "owner_id must be an integer")
		}
		activities, err := svc.ForOwner(c.Context(), ownerID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if activities == nil {
			activities = []Response{}
		}
		return c.JSON(activities)
	})
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrEmptyTrack):
		return fiber.NewError(fiber.StatusBadRequest, "No GPS points provided")
	case errors.Is(err, ErrInsufficientPoints):
		return fiber.NewError(fiber.StatusBadRequest, "Need at least 2 points to create an activity")
	case errors.Is(err, ErrInvalidCoordinate), errors.Is(err, ErrNonMonotonicTimestamps):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, account.ErrResolutionConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
