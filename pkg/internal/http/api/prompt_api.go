package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lan-twttr/lantwttr/pkg/internal/http/exts"
	"github.com/lan-twttr/lantwttr/pkg/internal/services"
)

func getSystemPrompt(c *fiber.Ctx) error {
	item, err := services.GetPromptTemplate()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"system_prompt": item.Content})
}

func updateSystemPrompt(c *fiber.Ctx) error {
	var data struct {
		SystemPrompt string `json:"system_prompt" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.UpdatePromptTemplate(data.SystemPrompt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"system_prompt": item.Content})
}
