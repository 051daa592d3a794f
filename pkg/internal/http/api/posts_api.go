package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lan-twttr/lantwttr/pkg/internal/http/exts"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"github.com/lan-twttr/lantwttr/pkg/internal/services"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func listPosts(c *fiber.Ctx) error {
	var filter services.FeedFilter

	// replying_to and quoting are the names the original web client used.
	if id := c.QueryInt("replyTo", c.QueryInt("replying_to", 0)); id > 0 {
		filter.ReplyTo = lo.ToPtr(uint(id))
	}
	if id := c.QueryInt("quoteOf", c.QueryInt("quoting", 0)); id > 0 {
		filter.QuoteOf = lo.ToPtr(uint(id))
	}

	items, err := services.ListFeed(filter)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []models.Post{}
	}

	return c.JSON(items)
}

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a number")
	}

	item, err := services.GetFeedPost(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post %d not found", id))
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	var data struct {
		Author  string `json:"author" validate:"required"`
		Text    string `json:"text" validate:"required"`
		ReplyTo *uint  `json:"replyTo"`
		QuoteOf *uint  `json:"quoteOf"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(data.Author, data.Text, data.ReplyTo, data.QuoteOf)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a number")
	}

	removed, err := services.DeletePost(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !removed {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post %d not found", id))
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

func likePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a number")
	}

	item, err := services.LikeFeedPost(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post %d not found", id))
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(item)
}
