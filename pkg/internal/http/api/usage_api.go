package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lan-twttr/lantwttr/pkg/internal/http/exts"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"github.com/lan-twttr/lantwttr/pkg/internal/services"
	"gorm.io/datatypes"
)

func listTokenUsage(c *fiber.Ctx) error {
	records, err := services.ListTokenUsage()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if records == nil {
		records = []models.TokenUsageRecord{}
	}

	return c.JSON(records)
}

func recordTokenUsage(c *fiber.Ctx) error {
	var data struct {
		Persona          string         `json:"persona" validate:"required"`
		Model            string         `json:"model"`
		PromptTokens     int64          `json:"prompt_tokens"`
		CompletionTokens int64          `json:"completion_tokens"`
		TotalTokens      int64          `json:"total_tokens"`
		Raw              map[string]any `json:"raw"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	record, err := services.RecordTokenUsage(models.TokenUsageRecord{
		Persona:          data.Persona,
		Model:            data.Model,
		PromptTokens:     data.PromptTokens,
		CompletionTokens: data.CompletionTokens,
		TotalTokens:      data.TotalTokens,
		Raw:              datatypes.JSONMap(data.Raw),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}
