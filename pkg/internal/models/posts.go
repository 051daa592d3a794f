package models

import "time"

// Post is a single feed entry. ReplyTo and QuoteOf hold ids of other posts
// and are not enforced as foreign keys: deleting a post leaves its replies
// and quotes behind with dangling references.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Author    string    `json:"author" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	ReplyTo   *uint     `json:"replyTo"`
	QuoteOf   *uint     `json:"quoteOf"`
	LikeCount int64     `json:"likeCount" gorm:"not null;default:0"`

	// Derived on every read from the complete post set, never persisted.
	ReplyCount int64 `json:"replyCount" gorm:"-"`
	QuoteCount int64 `json:"quoteCount" gorm:"-"`
}
