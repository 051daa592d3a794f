package models

import (
	"time"

	"gorm.io/datatypes"
)

// TokenUsageRecord is one appended entry of the bot's token spend. Raw keeps
// the provider's usage object as-is for fields we do not model.
type TokenUsageRecord struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	CreatedAt        time.Time         `json:"timestamp"`
	Persona          string            `json:"persona"`
	Model            string            `json:"model"`
	PromptTokens     int64             `json:"prompt_tokens"`
	CompletionTokens int64             `json:"completion_tokens"`
	TotalTokens      int64             `json:"total_tokens"`
	Raw              datatypes.JSONMap `json:"raw,omitempty"`
}
