package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/common"
	"inkwell/internal/repositories/articles"
	"inkwell/internal/storage"
)

func newArticleService(t *testing.T) *ArticleService {
	t.Helper()
	return NewArticleService(articles.NewJSONRepository(storage.NewMemBackend()))
}

func TestCreateDraft_DerivesExcerptAndReadTime(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	content := "<h2>Intro</h2><p>" + strings.Repeat("word ", 450) + "</p>"
	article, err := s.CreateDraft(ctx, "u1", DraftInput{Title: "T", Content: content, Tags: []string{"go"}})
	require.NoError(t, err)

	assert.False(t, article.Published)
	assert.Nil(t, article.PublishedAt)
	assert.Equal(t, 3, article.ReadTime, "450 words at 200 wpm round up to 3 minutes")
	assert.True(t, strings.HasSuffix(article.Excerpt, "..."))
	assert.NotContains(t, article.Excerpt, "<h2>", "excerpt must be tag-free")
	assert.LessOrEqual(t, len(article.Excerpt), 203)
}

func TestCreateAndPublish_StampsPublishedAt(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	article, err := s.CreateAndPublish(ctx, "u1", DraftInput{Title: "T", Content: "<p>hello</p>"})
	require.NoError(t, err)
	assert.True(t, article.Published)
	require.NotNil(t, article.PublishedAt)
}

func TestCreate_RejectsBlankTitleOrContent(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	_, err := s.CreateDraft(ctx, "u1", DraftInput{Title: "  ", Content: "<p>x</p>"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.CreateAndPublish(ctx, "u1", DraftInput{Title: "T", Content: "  "})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestPublishUnpublish_PreservesFirstPublishedAt(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	draft, err := s.CreateDraft(ctx, "u1", DraftInput{Title: "T", Content: "<p>x</p>"})
	require.NoError(t, err)

	published, err := s.Publish(ctx, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	stamp := *published.PublishedAt

	unpublished, err := s.Unpublish(ctx, draft.ID)
	require.NoError(t, err)
	assert.False(t, unpublished.Published)
	require.NotNil(t, unpublished.PublishedAt)
	assert.True(t, stamp.Equal(*unpublished.PublishedAt), "unpublish must not clear or move publishedAt")
}

func TestUpdateDraft_RederivesMetadata(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	draft, err := s.CreateDraft(ctx, "u1", DraftInput{Title: "T", Content: "<p>short</p>"})
	require.NoError(t, err)

	longer := "<p>" + strings.Repeat("word ", 250) + "</p>"
	updated, err := s.UpdateDraft(ctx, draft.ID, DraftInput{Title: "T2", Content: longer})
	require.NoError(t, err)

	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, 2, updated.ReadTime)
	assert.Equal(t, "u1", updated.AuthorID, "author never changes on edit")
}

func TestClap_OncePerUser(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	article, err := s.CreateAndPublish(ctx, "author", DraftInput{Title: "T", Content: "<p>x</p>"})
	require.NoError(t, err)

	first, err := s.Clap(ctx, article.ID, "reader")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Claps)
	assert.Equal(t, []string{"reader"}, first.Clappers)

	second, err := s.Clap(ctx, article.ID, "reader")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Claps, "second clap by the same user is a no-op")

	other, err := s.Clap(ctx, article.ID, "other")
	require.NoError(t, err)
	assert.Equal(t, 2, other.Claps)
	assert.Equal(t, []string{"reader", "other"}, other.Clappers)
}

func TestClap_UnknownArticle(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)
	_, err := s.Clap(ctx, "missing", "reader")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAddComment_AppendsInOrder(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	article, err := s.CreateAndPublish(ctx, "author", DraftInput{Title: "T", Content: "<p>x</p>"})
	require.NoError(t, err)

	first, err := s.AddComment(ctx, article.ID, "reader", "nice one")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, article.ID, first.ArticleID)

	second, err := s.AddComment(ctx, article.ID, "other", "agreed")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	current, err := s.ByID(ctx, article.ID)
	require.NoError(t, err)
	require.Len(t, current.Comments, 2)
	assert.Equal(t, "nice one", current.Comments[0].Content)
	assert.Equal(t, "agreed", current.Comments[1].Content)
}

func TestAddComment_RejectsBlank(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	article, err := s.CreateAndPublish(ctx, "author", DraftInput{Title: "T", Content: "<p>x</p>"})
	require.NoError(t, err)

	_, err = s.AddComment(ctx, article.ID, "reader", "   ")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestDelete_ReportsWhetherRemoved(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	article, err := s.CreateDraft(ctx, "u1", DraftInput{Title: "T", Content: "<p>x</p>"})
	require.NoError(t, err)

	removed, err := s.Delete(ctx, article.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Delete(ctx, article.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFeed_OnlyPublished(t *testing.T) {
	ctx := context.Background()
	s := newArticleService(t)

	_, err := s.CreateDraft(ctx, "u1", DraftInput{Title: "Draft", Content: "<p>x</p>"})
	require.NoError(t, err)
	live, err := s.CreateAndPublish(ctx, "u1", DraftInput{Title: "Live", Content: "<p>x</p>"})
	require.NoError(t, err)

	feed, err := s.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, live.ID, feed[0].ID)

	mine, err := s.ByAuthor(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
