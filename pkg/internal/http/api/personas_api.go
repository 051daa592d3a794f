package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lan-twttr/lantwttr/pkg/internal/http/exts"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"github.com/lan-twttr/lantwttr/pkg/internal/services"
	"gorm.io/gorm"
)

func listPersonas(c *fiber.Ctx) error {
	items, err := services.ListPersona()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []models.Persona{}
	}

	return c.JSON(items)
}

func createPersona(c *fiber.Ctx) error {
	var data struct {
		Name   string `json:"name" validate:"required"`
		Prompt string `json:"prompt" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPersona(data.Name, data.Prompt)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func updatePersona(c *fiber.Ctx) error {
	var data struct {
		Name   string `json:"name" validate:"required"`
		Prompt string `json:"prompt" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.UpdatePersona(c.Params("name"), data.Name, data.Prompt)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("persona %s not found", c.Params("name")))
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deletePersona(c *fiber.Ctx) error {
	removed, err := services.DeletePersona(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !removed {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("persona %s not found", c.Params("name")))
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}
