package http

import (
	"strconv"
	"time"

	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/pariz/gountries"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"linkpulse/internal/analytics"
	"linkpulse/internal/events"
)

// AnalyticsAction serves the full analytics snapshot for an owner, optionally
// narrowed to one link, a time range, and an event type.
func (h *Handlers) AnalyticsAction(c *fiber.Ctx) error {
	filters, err := parseEventFilters(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.Analytics.Snapshot(c.UserContext(), filters)
	if err != nil {
		h.Logger.Error("Failed to compute analytics snapshot", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute analytics"})
	}

	result.Geography = convertCountryBuckets(result.Geography)
	result.Devices = convertDeviceBuckets(result.Devices)

	return c.JSON(result)
}

func parseEventFilters(c *fiber.Ctx) (events.EventFilters, error) {
	ownerID, err := strconv.ParseUint(c.Query("owner_id"), 10, 32)
	if err != nil || ownerID == 0 {
		return events.EventFilters{}, fiber.NewError(fiber.StatusBadRequest, "owner_id is required")
	}

	filters := events.EventFilters{OwnerID: uint(ownerID)}

	if raw := c.Query("link_id"); raw != "" {
		linkID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return events.EventFilters{}, fiber.NewError(fiber.StatusBadRequest, "invalid link_id")
		}
		filters.LinkID = uint(linkID)
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return events.EventFilters{}, fiber.NewError(fiber.StatusBadRequest, "invalid from timestamp")
		}
		filters.From = from.UTC()
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return events.EventFilters{}, fiber.NewError(fiber.StatusBadRequest, "invalid to timestamp")
		}
		filters.To = to.UTC()
	}
	if raw := c.Query("event_type"); raw != "" {
		eventType := events.EventType(raw)
		if !eventType.IsValid() {
			return events.EventFilters{}, fiber.NewError(fiber.StatusBadRequest, "invalid event_type")
		}
		filters.EventType = eventType
	}

	return filters, nil
}

// convertCountryBuckets canonicalizes country display names for the frontend.
// The aggregation core reports countries exactly as stored on the events;
// this decoration is presentation-only.
func convertCountryBuckets(buckets []analytics.GeoBucket) []analytics.GeoBucket {
	caser := cases.Title(language.AmericanEnglish)
	countries := gountries.New()

	result := make([]analytics.GeoBucket, len(buckets))
	for i, bucket := range buckets {
		country, err := countries.FindCountryByName(bucket.Country)
		if err != nil {
			bucket.Country = caser.String(bucket.Country)
		} else {
			bucket.Country = country.Name.Common
		}
		result[i] = bucket
	}
	return result
}

// convertDeviceBuckets title-cases device names and maps the internal
// "unknown" sentinel to a user-facing label.
func convertDeviceBuckets(buckets []analytics.DeviceBucket) []analytics.DeviceBucket {
	caser := cases.Title(language.AmericanEnglish)

	result := make([]analytics.DeviceBucket, len(buckets))
	for i, bucket := range buckets {
		name := bucket.DeviceType
		if name == events.SentinelUnknown {
			name = "Unknown"
		}
		bucket.DeviceType = caser.String(name)
		result[i] = bucket
	}
	return result
}
