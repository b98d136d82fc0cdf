package articles

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/common"
	"inkwell/internal/models"
	"inkwell/internal/storage"
)

// Collection is the backend name the article documents live under.
const Collection = "articles"

// JSONRepository implements Repository over a storage.Backend, keeping the
// whole collection as one JSON array snapshot. State is re-read from the
// backend on every call, never cached across calls.
type JSONRepository struct {
	mu      sync.Mutex
	backend storage.Backend
	now     func() time.Time
}

// NewJSONRepository returns a repository bound to the given backend.
func NewJSONRepository(backend storage.Backend) *JSONRepository {
	return &JSONRepository{backend: backend, now: time.Now}
}

func (r *JSONRepository) load(ctx context.Context) ([]models.Article, error) {
	data, ok, err := r.backend.Get(ctx, Collection)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("decode %s collection: %w", Collection, err)
	}
	return articles, nil
}

func (r *JSONRepository) save(ctx context.Context, articles []models.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", Collection, err)
	}
	return r.backend.Set(ctx, Collection, data)
}

func (r *JSONRepository) filter(ctx context.Context, keep func(*models.Article) bool) ([]models.Article, error) {
	articles, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	result := []models.Article{}
	for i := range articles {
		if keep(&articles[i]) {
			result = append(result, articles[i])
		}
	}
	return result, nil
}

func (r *JSONRepository) ByAuthor(ctx context.Context, authorID string) ([]models.Article, error) {
	return r.filter(ctx, func(a *models.Article) bool { return a.AuthorID == authorID })
}

func (r *JSONRepository) Published(ctx context.Context) ([]models.Article, error) {
	return r.filter(ctx, func(a *models.Article) bool { return a.Published })
}

func (r *JSONRepository) ByID(ctx context.Context, id string) (*models.Article, error) {
	articles, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].ID == id {
			a := articles[i]
			return &a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *JSONRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	created := *article
	created.ID = uuid.New().String()
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Published && created.PublishedAt == nil {
		t := now
		created.PublishedAt = &t
	}
	if created.Tags == nil {
		created.Tags = []string{}
	}
	if created.Clappers == nil {
		created.Clappers = []string{}
	}
	if created.Comments == nil {
		created.Comments = []models.Comment{}
	}

	articles = append(articles, created)
	if err := r.save(ctx, articles); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *JSONRepository) Update(ctx context.Context, id string, patch models.ArticlePatch) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range articles {
		if articles[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, common.ErrorNotFound
	}

	a := &articles[idx]
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		a.Excerpt = *patch.Excerpt
	}
	if patch.CoverImage != nil {
		a.CoverImage = *patch.CoverImage
	}
	if patch.Tags != nil {
		a.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Claps != nil {
		a.Claps = *patch.Claps
	}
	if patch.Clappers != nil {
		a.Clappers = append([]string(nil), (*patch.Clappers)...)
	}
	if patch.Comments != nil {
		a.Comments = append([]models.Comment(nil), (*patch.Comments)...)
	}
	if patch.Published != nil {
		a.Published = *patch.Published
	}
	if patch.PublishedAt != nil {
		t := *patch.PublishedAt
		a.PublishedAt = &t
	}
	if patch.ReadTime != nil {
		a.ReadTime = *patch.ReadTime
	}

	now := r.now()
	a.UpdatedAt = now
	// First publish transition: stamp publishedAt unless the caller
	// supplied one. Unpublishing leaves the old timestamp in place.
	if a.Published && a.PublishedAt == nil {
		t := now
		a.PublishedAt = &t
	}

	if err := r.save(ctx, articles); err != nil {
		return nil, err
	}
	merged := articles[idx]
	return &merged, nil
}

func (r *JSONRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	remaining := articles[:0:0]
	for i := range articles {
		if articles[i].ID != id {
			remaining = append(remaining, articles[i])
		}
	}
	if len(remaining) == len(articles) {
		return false, nil
	}
	if err := r.save(ctx, remaining); err != nil {
		return false, err
	}
	return true, nil
}

// SeedIfEmpty persists the given documents only when the collection holds
// no articles yet. Seed documents are stored as provided, ids included.
func (r *JSONRepository) SeedIfEmpty(ctx context.Context, seed []models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return r.save(ctx, seed)
}
