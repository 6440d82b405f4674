package http

import (
	"strconv"

	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// RealtimeAction serves the live-traffic view: active visitors over the last
// five minutes plus last-hour counters. Recomputed from a fresh pull on
// every call; callers poll at their own interval.
func (h *Handlers) RealtimeAction(c *fiber.Ctx) error {
	ownerID, err := strconv.ParseUint(c.Query("owner_id"), 10, 32)
	if err != nil || ownerID == 0 {
		return badRequest(c, "owner_id is required")
	}

	var linkID uint64
	if raw := c.Query("link_id"); raw != "" {
		linkID, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return badRequest(c, "invalid link_id")
		}
	}

	result, err := h.Analytics.Realtime(uint(ownerID), uint(linkID))
	if err != nil {
		h.Logger.Error("Failed to compute realtime view", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute realtime view"})
	}

	return c.JSON(result)
}
