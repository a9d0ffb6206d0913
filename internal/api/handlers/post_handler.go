package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psaswat/testyourmodels/internal/service"
	"github.com/psaswat/testyourmodels/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) ListFeatured(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Featured(c.Context()))
}

func (h *PostHandler) ListHistorical(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Historical(c.Context()))
}

// DisplayPost serves the resolution policy for the home page: first featured
// active post, else first active historical post, else an empty welcome state.
func (h *PostHandler) DisplayPost(c *fiber.Ctx) error {
	post, ok := h.s.DisplayPost(c.Context())
	if !ok {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"empty": true,
		})
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.s.PostInfo(c.Context(), c.Params("id"))
	if err != nil {
		// The detail page redirects home on a missing id instead of
		// rendering a broken view.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "post not found",
		})
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) SearchPosts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Search(c.Context(), c.Query("q")))
}

// ListAll returns every post including inactive ones; admin management is the
// only caller that should see hidden posts.
func (h *PostHandler) ListAll(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.List(c.Context()))
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(transfer.Fail("unable to parse json"))
	}

	result := h.s.Create(c.Context(), &pc)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	var pu transfer.PostUpdate
	if err := c.BodyParser(&pu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(transfer.Fail("unable to parse json"))
	}

	result := h.s.Update(c.Context(), c.Query("id"), &pu)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PostHandler) TogglePost(c *fiber.Ctx) error {
	id := c.Query("id")
	active := c.QueryBool("active", false)

	result := h.s.SetActive(c.Context(), id, active)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	result := h.s.Remove(c.Context(), c.Query("id"))
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
