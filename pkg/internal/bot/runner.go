package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Agent runs one perceive-decide-act cycle per invocation. It reads the
// feed, asks the model to pick an action, posts the result, and appends a
// token usage record, all through the public API.
type Agent struct {
	Client   *Client
	Provider *Provider
}

func NewAgent() *Agent {
	apiBase := viper.GetString("bot.api_base")
	if len(apiBase) == 0 {
		apiBase = "http://localhost:5001"
	}

	return &Agent{
		Client: NewClient(apiBase),
		Provider: NewProvider(
			viper.GetString("bot.openrouter.endpoint"),
			viper.GetString("bot.openrouter.key"),
			viper.GetString("bot.openrouter.model"),
		),
	}
}

func (v *Agent) Run(ctx context.Context) error {
	personas, err := v.Client.ListPersonas(ctx)
	if err != nil {
		return fmt.Errorf("failed to load personas: %v", err)
	}
	if len(personas) == 0 {
		return fmt.Errorf("no personas available")
	}
	persona := lo.Sample(personas)

	template, err := v.Client.GetSystemPrompt(ctx)
	if err != nil {
		return fmt.Errorf("failed to load system prompt: %v", err)
	}

	// A feed read failure is not fatal: the bot can still tweet into an
	// empty timeline.
	posts, err := v.Client.ListPosts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Could not fetch the timeline, proceeding without context...")
		posts = nil
	}

	prompt := persona.Prompt + "\n\n" + strings.ReplaceAll(template, "{context}", FormatContext(posts))

	log.Info().Str("persona", persona.Name).Msg("Bot is thinking...")
	decisionText, usage, err := v.Provider.Decide(ctx, prompt)
	if err != nil {
		return fmt.Errorf("failed to get a decision: %v", err)
	}

	decision, err := ParseDecision(decisionText)
	if err != nil {
		return fmt.Errorf("failed to parse decision %q: %v", decisionText, err)
	}

	var replyTo, quoteOf *uint
	if decision.ID > 0 {
		switch decision.Action {
		case ActionReply:
			replyTo = lo.ToPtr(uint(decision.ID))
		case ActionQuote:
			quoteOf = lo.ToPtr(uint(decision.ID))
		}
	}

	if err := v.Client.CreatePost(ctx, persona.Name, decision.Content, replyTo, quoteOf); err != nil {
		return fmt.Errorf("failed to post decision: %v", err)
	}

	if usage != nil {
		if err := v.Client.RecordUsage(ctx, models.TokenUsageRecord{
			Persona:          persona.Name,
			Model:            v.Provider.Model,
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			TotalTokens:      usage.TotalTokens,
		}); err != nil {
			log.Warn().Err(err).Msg("Could not record token usage...")
		}
	}

	log.Info().
		Str("persona", persona.Name).
		Str("action", decision.Action).
		Int("target", decision.ID).
		Msg("Bot cycle finished.")

	return nil
}
