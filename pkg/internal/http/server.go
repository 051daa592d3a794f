package http

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/lan-twttr/lantwttr/pkg/internal/http/api"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	*fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		AppName:               "LAN Twttr",
		ServerHeader:          "lantwttr",
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	// The bare paths are the documented surface, the /api prefix keeps the
	// bundled web pages working.
	api.MapAPIs(app, "/api")
	api.MapAPIs(app, "")

	mapStatic(app)

	return &App{app}
}

func mapStatic(app *fiber.App) {
	dir := viper.GetString("content_dir")
	if len(dir) == 0 {
		return
	}

	app.Get("/prompts", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(dir, "prompts.html"))
	})
	app.Get("/tokens", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(dir, "tokens.html"))
	})
	app.Static("/", dir)
}

func (v *App) Listen() {
	addr := viper.GetString("bind")
	if len(addr) == 0 {
		addr = ":5001"
	}

	if err := v.App.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting http server.")
	}
}
