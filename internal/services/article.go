// Package services contains the read-modify-write flows the presentation
// layer drives against the record store: drafting and publishing articles,
// claps, comments, and the follow graph.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/common"
	"inkwell/internal/models"
	"inkwell/internal/repositories/articles"
	"inkwell/internal/textx"
)

// excerptLength is how much of the tag-stripped content the derived excerpt
// keeps.
const excerptLength = 200

// DraftInput carries the caller-editable article fields. Excerpt and read
// time are derived from Content, never supplied.
type DraftInput struct {
	Title      string
	Content    string
	CoverImage string
	Tags       []string
}

// ArticleService implements the writing and engagement flows on top of the
// article repository.
type ArticleService struct {
	articles articles.Repository
}

func NewArticleService(repo articles.Repository) *ArticleService {
	return &ArticleService{articles: repo}
}

func (s *ArticleService) validate(in DraftInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return common.ErrorValidation
	}
	return nil
}

// CreateDraft stores a new unpublished article for the author.
func (s *ArticleService) CreateDraft(ctx context.Context, authorID string, in DraftInput) (*models.Article, error) {
	return s.create(ctx, authorID, in, false)
}

// CreateAndPublish stores a new article already published; the store stamps
// publishedAt at creation.
func (s *ArticleService) CreateAndPublish(ctx context.Context, authorID string, in DraftInput) (*models.Article, error) {
	return s.create(ctx, authorID, in, true)
}

func (s *ArticleService) create(ctx context.Context, authorID string, in DraftInput, published bool) (*models.Article, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.articles.Create(ctx, &models.Article{
		Title:      in.Title,
		Content:    in.Content,
		Excerpt:    textx.Excerpt(in.Content, excerptLength),
		CoverImage: in.CoverImage,
		AuthorID:   authorID,
		Tags:       in.Tags,
		Published:  published,
		ReadTime:   textx.ReadTime(in.Content),
	})
}

// UpdateDraft overwrites the editable fields of an existing article and
// re-derives excerpt and read time. The publish flag is not touched.
func (s *ArticleService) UpdateDraft(ctx context.Context, id string, in DraftInput) (*models.Article, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	excerpt := textx.Excerpt(in.Content, excerptLength)
	readTime := textx.ReadTime(in.Content)
	tags := in.Tags
	return s.articles.Update(ctx, id, models.ArticlePatch{
		Title:      &in.Title,
		Content:    &in.Content,
		Excerpt:    &excerpt,
		CoverImage: &in.CoverImage,
		Tags:       &tags,
		ReadTime:   &readTime,
	})
}

// Publish flips the article to published. The store stamps publishedAt on
// the first transition.
func (s *ArticleService) Publish(ctx context.Context, id string) (*models.Article, error) {
	published := true
	return s.articles.Update(ctx, id, models.ArticlePatch{Published: &published})
}

// Unpublish flips the article back to a draft. publishedAt keeps its old
// value; consumers gate on the published flag.
func (s *ArticleService) Unpublish(ctx context.Context, id string) (*models.Article, error) {
	published := false
	return s.articles.Update(ctx, id, models.ArticlePatch{Published: &published})
}

// Clap records one clap by the user. A user already in clappers claps again
// as a no-op: the article is returned unchanged.
func (s *ArticleService) Clap(ctx context.Context, articleID, userID string) (*models.Article, error) {
	article, err := s.articles.ByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	for _, id := range article.Clappers {
		if id == userID {
			return article, nil
		}
	}
	claps := article.Claps + 1
	clappers := append(append([]string(nil), article.Clappers...), userID)
	return s.articles.Update(ctx, articleID, models.ArticlePatch{
		Claps:    &claps,
		Clappers: &clappers,
	})
}

// AddComment appends a comment to the article's comment sequence. Comments
// are append-only; there is no edit or delete.
func (s *ArticleService) AddComment(ctx context.Context, articleID, authorID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrorValidation
	}
	article, err := s.articles.ByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	comment := models.Comment{
		ID:        uuid.New().String(),
		Content:   content,
		AuthorID:  authorID,
		ArticleID: articleID,
		CreatedAt: time.Now(),
	}
	comments := append(append([]models.Comment(nil), article.Comments...), comment)
	if _, err := s.articles.Update(ctx, articleID, models.ArticlePatch{Comments: &comments}); err != nil {
		return nil, fmt.Errorf("append comment: %w", err)
	}
	return &comment, nil
}

// Delete removes the article and reports whether it existed.
func (s *ArticleService) Delete(ctx context.Context, id string) (bool, error) {
	return s.articles.Delete(ctx, id)
}

// Feed returns all published articles in insertion order.
func (s *ArticleService) Feed(ctx context.Context) ([]models.Article, error) {
	return s.articles.Published(ctx)
}

// ByAuthor returns the author's articles, drafts included.
func (s *ArticleService) ByAuthor(ctx context.Context, authorID string) ([]models.Article, error) {
	return s.articles.ByAuthor(ctx, authorID)
}

// ByID returns a single article.
func (s *ArticleService) ByID(ctx context.Context, id string) (*models.Article, error) {
	return s.articles.ByID(ctx, id)
}
