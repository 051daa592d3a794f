package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/lan-twttr/lantwttr/pkg/internal/bot"
	"github.com/rs/zerolog/log"
)

// runBot fires one perceive-decide-act cycle without waiting for it; the
// model call can take a while and the UI only needs an acknowledgement.
func runBot(c *fiber.Ctx) error {
	agent := bot.NewAgent()
	go func() {
		if err := agent.Run(context.Background()); err != nil {
			log.Error().Err(err).Msg("An error occurred when running bot cycle.")
		}
	}()

	return c.SendStatus(fiber.StatusAccepted)
}
