package services

import (
	"testing"
	"time"

	"github.com/lan-twttr/lantwttr/pkg/internal/database"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListFeedNewestFirst(t *testing.T) {
	setupTest(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, database.C.Create(&models.Post{Author: "alice", Text: "old", CreatedAt: base}).Error)
	require.NoError(t, database.C.Create(&models.Post{Author: "bob", Text: "new", CreatedAt: base.Add(time.Minute)}).Error)

	feed, err := ListFeed(FeedFilter{})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "new", feed[0].Text)
	assert.Equal(t, "old", feed[1].Text)
}

func TestListFeedEqualTimestampsKeepInsertionOrder(t *testing.T) {
	setupTest(t)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, database.C.Create(&models.Post{Author: "alice", Text: "first", CreatedAt: at}).Error)
	require.NoError(t, database.C.Create(&models.Post{Author: "bob", Text: "second", CreatedAt: at}).Error)

	feed, err := ListFeed(FeedFilter{})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "first", feed[0].Text)
	assert.Equal(t, "second", feed[1].Text)
}

func TestListFeedFilters(t *testing.T) {
	setupTest(t)

	root, err := NewPost("alice", "root", nil, nil)
	require.NoError(t, err)
	reply, err := NewPost("bob", "reply", lo.ToPtr(root.ID), nil)
	require.NoError(t, err)
	quote, err := NewPost("carol", "quote", nil, lo.ToPtr(root.ID))
	require.NoError(t, err)

	replies, err := ListFeed(FeedFilter{ReplyTo: lo.ToPtr(root.ID)})
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)

	quotes, err := ListFeed(FeedFilter{QuoteOf: lo.ToPtr(root.ID)})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, quote.ID, quotes[0].ID)
}

func TestListFeedFilterPrecedence(t *testing.T) {
	setupTest(t)

	a, err := NewPost("alice", "a", nil, nil)
	require.NoError(t, err)
	b, err := NewPost("bob", "b", nil, nil)
	require.NoError(t, err)
	reply, err := NewPost("carol", "re a", lo.ToPtr(a.ID), nil)
	require.NoError(t, err)
	_, err = NewPost("dave", "qt b", nil, lo.ToPtr(b.ID))
	require.NoError(t, err)

	// Both filters supplied: replyTo wins.
	feed, err := ListFeed(FeedFilter{ReplyTo: lo.ToPtr(a.ID), QuoteOf: lo.ToPtr(b.ID)})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, reply.ID, feed[0].ID)
}

func TestFeedCountsTrackMutations(t *testing.T) {
	setupTest(t)

	root, err := NewPost("alice", "root", nil, nil)
	require.NoError(t, err)
	reply, err := NewPost("bob", "re", lo.ToPtr(root.ID), nil)
	require.NoError(t, err)
	_, err = NewPost("carol", "qt", nil, lo.ToPtr(root.ID))
	require.NoError(t, err)

	item, err := GetFeedPost(root.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, item.ReplyCount)
	assert.EqualValues(t, 1, item.QuoteCount)

	removed, err := DeletePost(reply.ID)
	require.NoError(t, err)
	require.True(t, removed)

	item, err = GetFeedPost(root.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, item.ReplyCount)
	assert.EqualValues(t, 1, item.QuoteCount)
}

func TestFeedFilterStillListsRepliesToDeletedPost(t *testing.T) {
	setupTest(t)

	root, err := NewPost("alice", "root", nil, nil)
	require.NoError(t, err)
	reply, err := NewPost("bob", "re", lo.ToPtr(root.ID), nil)
	require.NoError(t, err)

	removed, err := DeletePost(root.ID)
	require.NoError(t, err)
	require.True(t, removed)

	_, err = GetFeedPost(root.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	feed, err := ListFeed(FeedFilter{ReplyTo: lo.ToPtr(root.ID)})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, reply.ID, feed[0].ID)
}

func TestLikeFeedPostAnnotates(t *testing.T) {
	setupTest(t)

	root, err := NewPost("alice", "root", nil, nil)
	require.NoError(t, err)
	_, err = NewPost("bob", "re", lo.ToPtr(root.ID), nil)
	require.NoError(t, err)

	item, err := LikeFeedPost(root.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, item.LikeCount)
	assert.EqualValues(t, 1, item.ReplyCount)

	_, err = LikeFeedPost(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
