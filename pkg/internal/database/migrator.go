package database

import (
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Post{},
	&models.Persona{},
	&models.PromptTemplate{},
	&models.TokenUsageRecord{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		AutoMaintainRange...,
	); err != nil {
		return err
	}

	return nil
}
