package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/psaswat/testyourmodels/internal/transfer"
)

func GetProfile(c *fiber.Ctx) (models.Profile, bool) {
	claims, ok := c.Locals("claims").(*transfer.CustomClaims)
	if !ok {
		return models.Profile{}, false
	}
	return models.Profile{
		ID:      claims.UserID,
		Name:    claims.Name,
		Email:   claims.Email,
		Picture: claims.Picture,
	}, true
}
