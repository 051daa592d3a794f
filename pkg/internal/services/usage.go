package services

import (
	"time"

	"github.com/lan-twttr/lantwttr/pkg/internal/database"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
)

// RecordTokenUsage appends one usage entry. The log is append-only;
// nothing ever updates or deletes these rows.
func RecordTokenUsage(record models.TokenUsageRecord) (models.TokenUsageRecord, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if err := database.C.Create(&record).Error; err != nil {
		return record, err
	}

	return record, nil
}

func ListTokenUsage() ([]models.TokenUsageRecord, error) {
	var records []models.TokenUsageRecord
	if err := database.C.Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return records, err
	}

	return records, nil
}
