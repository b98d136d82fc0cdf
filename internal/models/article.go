package models

import "time"

// Article is a stored article document, draft or published.
//
// PublishedAt is set when the article first transitions to published and is
// intentionally never cleared on unpublish; consumers must gate on Published,
// not on PublishedAt presence.
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  string     `json:"coverImage,omitempty"`
	AuthorID    string     `json:"authorId"`
	Tags        []string   `json:"tags"`
	Claps       int        `json:"claps"`
	Clappers    []string   `json:"clappers"`
	Comments    []Comment  `json:"comments"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ReadTime    int        `json:"readTime"`
}

// Comment is appended to an article's comment sequence. Comments have no
// edit or delete operation.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	ArticleID string    `json:"articleId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArticlePatch is a partial update for an Article. A nil field is left
// unchanged; a non-nil field replaces the stored value wholesale. UpdatedAt
// is not patchable; the store bumps it on every successful update.
// PublishedAt cannot be cleared through a patch, which preserves the
// first-publish timestamp across unpublish.
type ArticlePatch struct {
	Title       *string
	Content     *string
	Excerpt     *string
	CoverImage  *string
	Tags        *[]string
	Claps       *int
	Clappers    *[]string
	Comments    *[]Comment
	Published   *bool
	PublishedAt *time.Time
	ReadTime    *int
}
