// Package http exposes the dashboard API over fiber: analytics snapshots,
// realtime counters, link management, and event tracking.
package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"linkpulse/internal/analytics"
)

// Handlers bundles the dependencies shared by the API endpoints.
type Handlers struct {
	DB        *gorm.DB
	Analytics *analytics.Service
	Logger    *slog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(db *gorm.DB, svc *analytics.Service, logger *slog.Logger) *Handlers {
	return &Handlers{DB: db, Analytics: svc, Logger: logger}
}

// MountRoutes registers every API route on the fiber app.
func MountRoutes(app *fiber.App, h *Handlers) {
	app.Get("/health", h.HealthAction)
	app.Post("/track", h.TrackAction)

	api := app.Group("/api")
	api.Get("/analytics", h.AnalyticsAction)
	api.Get("/realtime", h.RealtimeAction)

	api.Get("/links", h.ListLinksAction)
	api.Post("/links", h.CreateLinkAction)
	api.Get("/links/:id", h.GetLinkAction)
	api.Put("/links/:id", h.UpdateLinkAction)
	api.Delete("/links/:id", h.DeleteLinkAction)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
