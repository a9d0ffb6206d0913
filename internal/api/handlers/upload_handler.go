package handlers

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/psaswat/testyourmodels/internal/service"
	"github.com/psaswat/testyourmodels/internal/transfer"
)

type UploadHandler struct {
	storage *service.StorageService
}

func NewUploadHandler(storage *service.StorageService) *UploadHandler {
	return &UploadHandler{storage: storage}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(transfer.Fail("no file provided"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(transfer.Fail("unable to open file"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(transfer.Fail("unable to read file"))
	}

	path := c.FormValue("path", "media")
	declaredType := fileHeader.Header.Get("Content-Type")

	result := h.storage.Upload(c.Context(), path, fileHeader.Filename, declaredType, data)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
