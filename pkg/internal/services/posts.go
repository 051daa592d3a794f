package services

import (
	"fmt"
	"time"

	"github.com/lan-twttr/lantwttr/pkg/internal/database"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"gorm.io/gorm"
)

// NewPost persists a post with a fresh id and the current UTC timestamp.
// ReplyTo and QuoteOf are stored as given, even when both are set or when
// the target id no longer exists.
func NewPost(author, text string, replyTo, quoteOf *uint) (models.Post, error) {
	var item models.Post
	if len(author) == 0 {
		return item, fmt.Errorf("author cannot be empty")
	}
	if len(text) == 0 {
		return item, fmt.Errorf("text cannot be empty")
	}

	item = models.Post{
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
		ReplyTo:   replyTo,
		QuoteOf:   quoteOf,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := tx.Where("id = ?", id).First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// DeletePost removes the post and reports whether it existed. Replies and
// quotes pointing at it are left untouched.
func DeletePost(id uint) (bool, error) {
	result := database.C.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// LikePost bumps the like counter by exactly one in a single UPDATE, so
// concurrent likes serialized by the store never lose an increment.
func LikePost(id uint) (models.Post, error) {
	result := database.C.Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
	if result.Error != nil {
		return models.Post{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Post{}, gorm.ErrRecordNotFound
	}

	return GetPost(database.C, id)
}

// ListPost returns every post. No ordering is promised here, sorting is the
// feed's job.
func ListPost(tx *gorm.DB) ([]models.Post, error) {
	var items []models.Post
	if err := tx.Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}
