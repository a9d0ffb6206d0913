package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psaswat/testyourmodels/internal/service"
	"github.com/psaswat/testyourmodels/internal/transfer"
)

type ContactHandler struct {
	s service.ContactService
}

func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{s: service}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var cs transfer.ContactSubmission
	if err := c.BodyParser(&cs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(transfer.Fail("unable to parse json"))
	}

	result := h.s.Submit(c.Context(), &cs)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ContactHandler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.s.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to list messages",
		})
	}
	return c.Status(fiber.StatusOK).JSON(messages)
}

func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	result := h.s.MarkRead(c.Context(), c.Query("id"))
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ContactHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.s.UnreadCount(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to count messages",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}
