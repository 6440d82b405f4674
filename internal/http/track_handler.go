package http

import (
	"errors"
	"time"

	"log/slog"

	"github.com/gofiber/fiber/v2"

	"linkpulse/internal/events"
	"linkpulse/internal/links"
)

// TrackAction ingests a raw tracking event: the request is enriched
// (user-agent classification, geo lookup, bot flag) and persisted against
// its link. IP and user agent fall back to the request's own metadata when
// the payload omits them.
func (h *Handlers) TrackAction(c *fiber.Ctx) error {
	var req events.TrackRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.LinkID == 0 {
		return badRequest(c, "link_id is required")
	}
	if req.IPAddress == "" {
		req.IPAddress = c.IP()
	}
	if req.UserAgent == "" {
		req.UserAgent = c.Get(fiber.HeaderUserAgent)
	}

	event, err := events.RecordEvent(h.DB, req, time.Now().UTC())
	if err != nil {
		var notFound *links.LinkNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "link not found"})
		}
		h.Logger.Error("Failed to record event", slog.Any("error", err))
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": event.ID})
}
