package models

import "time"

// Persona is a named behavior preset consumed by the bot agent.
type Persona struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"uniqueIndex;not null"`
	Prompt string `json:"prompt" gorm:"not null"`
}

// PromptTemplate holds the shared system instruction template. There is a
// single row; the bot substitutes {context} with the formatted timeline on
// every invocation instead of reading ambient process state.
type PromptTemplate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}
