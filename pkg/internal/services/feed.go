package services

import (
	"sort"

	"github.com/lan-twttr/lantwttr/pkg/internal/database"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// FeedFilter narrows the feed to replies of or quotes of one post. When both
// are supplied ReplyTo wins.
type FeedFilter struct {
	ReplyTo *uint
	QuoteOf *uint
}

// ListFeed loads the complete post set, annotates interaction counts over it,
// then filters and sorts newest first. Counts are always computed before
// filtering so that a filtered view carries the same numbers as the full one.
func ListFeed(filter FeedFilter) ([]models.Post, error) {
	posts, err := ListPost(database.C)
	if err != nil {
		return nil, err
	}
	posts = AnnotateInteractions(posts)

	if filter.ReplyTo != nil {
		posts = lo.Filter(posts, func(item models.Post, _ int) bool {
			return item.ReplyTo != nil && *item.ReplyTo == *filter.ReplyTo
		})
	} else if filter.QuoteOf != nil {
		posts = lo.Filter(posts, func(item models.Post, _ int) bool {
			return item.QuoteOf != nil && *item.QuoteOf == *filter.QuoteOf
		})
	}

	// Newest first; equal timestamps keep insertion order (ids are
	// monotonic, so id order is insertion order).
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID < posts[j].ID
	})

	return posts, nil
}

// GetFeedPost returns one post annotated from the complete current set.
func GetFeedPost(id uint) (models.Post, error) {
	posts, err := ListPost(database.C)
	if err != nil {
		return models.Post{}, err
	}
	posts = AnnotateInteractions(posts)

	item, ok := lo.Find(posts, func(item models.Post) bool { return item.ID == id })
	if !ok {
		return models.Post{}, gorm.ErrRecordNotFound
	}

	return item, nil
}

// LikeFeedPost increments the like counter then re-annotates the updated
// post with fresh counts.
func LikeFeedPost(id uint) (models.Post, error) {
	if _, err := LikePost(id); err != nil {
		return models.Post{}, err
	}

	return GetFeedPost(id)
}
