package services

import (
	"errors"

	"github.com/lan-twttr/lantwttr/pkg/internal/database"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"gorm.io/gorm"
)

// DefaultPromptTemplate is the instruction block appended to every persona
// prompt. {context} is replaced with the formatted recent timeline.
const DefaultPromptTemplate = `Here is the recent conversation:
{context}

You must decide on one of three actions: TWEET, REPLY, or QUOTE.
Your response MUST be in the following format, with each part on a new line:
ACTION: [Your chosen action: TWEET, REPLY, or QUOTE]
ID: [The ID of the tweet to REPLY or QUOTE. Use 0 for a new TWEET.]
CONTENT: [The text of your tweet, reply, or quote. Must be under 280 characters.]

Example for a reply:
ACTION: REPLY
ID: 3
CONTENT: That's a fascinating point about ancient Rome!

Example for a new tweet:
ACTION: TWEET
ID: 0
CONTENT: Just learned that Vikings used sunstones for navigation. How cool is that?
`

// SeedPromptTemplate makes sure the single template row exists.
func SeedPromptTemplate() error {
	var item models.PromptTemplate
	err := database.C.First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.C.Create(&models.PromptTemplate{Content: DefaultPromptTemplate}).Error
	}

	return err
}

func GetPromptTemplate() (models.PromptTemplate, error) {
	var item models.PromptTemplate
	if err := database.C.First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func UpdatePromptTemplate(content string) (models.PromptTemplate, error) {
	item, err := GetPromptTemplate()
	if err != nil {
		return item, err
	}

	item.Content = content
	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}
