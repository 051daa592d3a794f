package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/lan-twttr/lantwttr/pkg/internal/cache"
	"github.com/lan-twttr/lantwttr/pkg/internal/database"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
)

const personaListCacheKey = "persona-list"

var DefaultPersonas = []models.Persona{
	{
		Name:   "TechOptimist",
		Prompt: "You are a cheerful tech optimist. Based on the recent conversation, either post a new hopeful thought, reply to someone with encouragement, or quote a tweet to add a positive spin.",
	},
	{
		Name:   "GrumpyCatBot",
		Prompt: "You are a grumpy cat. Looking at these recent human tweets, either complain about something new, sarcastically reply to one of them, or quote one to mock it.",
	},
	{
		Name:   "HistoryBuff",
		Prompt: "You are a history enthusiast. Looking at the recent conversation, either share a new historical fact, reply to a tweet with a relevant fact, or quote one to provide historical context.",
	},
}

// SeedPersonas inserts the default personas when the table is empty, the
// same first-run behavior the persona store has always had.
func SeedPersonas() error {
	var count int64
	if err := database.C.Model(&models.Persona{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	personas := DefaultPersonas
	return database.C.Create(&personas).Error
}

func ListPersona() ([]models.Persona, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if cached, err := marshal.Get(ctx, personaListCacheKey, new([]models.Persona)); err == nil {
		return *cached.(*[]models.Persona), nil
	}

	var personas []models.Persona
	if err := database.C.Order("id").Find(&personas).Error; err != nil {
		return personas, err
	}

	_ = marshal.Set(ctx, personaListCacheKey, personas, store.WithExpiration(10*time.Minute))

	return personas, nil
}

func NewPersona(name, prompt string) (models.Persona, error) {
	item := models.Persona{Name: name, Prompt: prompt}
	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	flushPersonaCache()
	return item, nil
}

func UpdatePersona(name, newName, newPrompt string) (models.Persona, error) {
	var item models.Persona
	if err := database.C.Where("name = ?", name).First(&item).Error; err != nil {
		return item, err
	}

	item.Name = newName
	item.Prompt = newPrompt
	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	flushPersonaCache()
	return item, nil
}

func DeletePersona(name string) (bool, error) {
	result := database.C.Where("name = ?", name).Delete(&models.Persona{})
	if result.Error != nil {
		return false, result.Error
	}

	flushPersonaCache()
	return result.RowsAffected > 0, nil
}

func flushPersonaCache() {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	_ = marshal.Delete(context.Background(), personaListCacheKey)
}

func GetPersonaByName(name string) (models.Persona, error) {
	personas, err := ListPersona()
	if err != nil {
		return models.Persona{}, err
	}
	for _, item := range personas {
		if item.Name == name {
			return item, nil
		}
	}

	return models.Persona{}, fmt.Errorf("persona %s not found", name)
}
