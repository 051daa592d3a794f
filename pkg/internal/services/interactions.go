package services

import (
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"github.com/samber/lo"
)

type InteractionCount struct {
	Replies int64 `json:"replies"`
	Quotes  int64 `json:"quotes"`
}

// CountInteractions derives per-post reply and quote counts from the given
// posts. It must be fed the complete current post set: counts are keyed off
// the ReplyTo/QuoteOf links found in the input, so a partial set silently
// undercounts. Dangling links still contribute to the counts of their
// (now missing) target id.
func CountInteractions(posts []models.Post) map[uint]InteractionCount {
	replies := lo.CountValuesBy(
		lo.Filter(posts, func(item models.Post, _ int) bool { return item.ReplyTo != nil }),
		func(item models.Post) uint { return *item.ReplyTo },
	)
	quotes := lo.CountValuesBy(
		lo.Filter(posts, func(item models.Post, _ int) bool { return item.QuoteOf != nil }),
		func(item models.Post) uint { return *item.QuoteOf },
	)

	out := make(map[uint]InteractionCount, len(posts))
	for _, item := range posts {
		out[item.ID] = InteractionCount{
			Replies: int64(replies[item.ID]),
			Quotes:  int64(quotes[item.ID]),
		}
	}

	return out
}

// AnnotateInteractions fills the derived count fields of each post in place,
// under the same complete-set contract as CountInteractions.
func AnnotateInteractions(posts []models.Post) []models.Post {
	counts := CountInteractions(posts)
	for idx := range posts {
		metric := counts[posts[idx].ID]
		posts[idx].ReplyCount = metric.Replies
		posts[idx].QuoteCount = metric.Quotes
	}

	return posts
}
