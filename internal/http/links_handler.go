package http

import (
	"errors"
	"strconv"

	"log/slog"

	"github.com/gofiber/fiber/v2"

	"linkpulse/internal/links"
)

type linkRequest struct {
	OwnerID uint   `json:"owner_id"`
	Domain  string `json:"domain"`
	Path    string `json:"path"`
	Shared  bool   `json:"shared"`
}

// ListLinksAction returns all links for an owner.
func (h *Handlers) ListLinksAction(c *fiber.Ctx) error {
	ownerID, err := strconv.ParseUint(c.Query("owner_id"), 10, 32)
	if err != nil || ownerID == 0 {
		return badRequest(c, "owner_id is required")
	}

	result, err := links.GetLinksByOwner(h.DB, uint(ownerID))
	if err != nil {
		h.Logger.Error("Failed to list links", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list links"})
	}
	return c.JSON(result)
}

// CreateLinkAction creates a new trackable link.
func (h *Handlers) CreateLinkAction(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.OwnerID == 0 || req.Domain == "" {
		return badRequest(c, "owner_id and domain are required")
	}

	link := links.Link{OwnerID: req.OwnerID, Domain: req.Domain, Path: req.Path}
	if err := links.CreateLink(h.DB, &link); err != nil {
		h.Logger.Error("Failed to create link", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create link"})
	}
	if req.Shared {
		if err := links.EnableSharing(h.DB, &link); err != nil {
			h.Logger.Warn("Failed to enable sharing on new link", slog.Any("error", err))
		}
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// GetLinkAction returns a single link by ID.
func (h *Handlers) GetLinkAction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	link, err := links.GetLinkByID(h.DB, uint(id))
	if err != nil {
		var notFound *links.LinkNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "link not found"})
		}
		h.Logger.Error("Failed to get link", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get link"})
	}
	return c.JSON(link)
}

// UpdateLinkAction updates a link's domain and path.
func (h *Handlers) UpdateLinkAction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	link, err := links.GetLinkByID(h.DB, uint(id))
	if err != nil {
		var notFound *links.LinkNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "link not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get link"})
	}

	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Domain != "" {
		link.Domain = req.Domain
	}
	if req.Path != "" {
		link.Path = req.Path
	}

	if err := links.UpdateLink(h.DB, link); err != nil {
		h.Logger.Error("Failed to update link", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update link"})
	}
	return c.JSON(link)
}

// DeleteLinkAction deletes a link by ID.
func (h *Handlers) DeleteLinkAction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	if err := links.DeleteLink(h.DB, uint(id)); err != nil {
		var notFound *links.LinkNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "link not found"})
		}
		h.Logger.Error("Failed to delete link", slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete link"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
