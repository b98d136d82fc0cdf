package cli

import (
	"context"
	"fmt"

	"inkwell/internal/common"
	"inkwell/internal/models"
)

// Feed lists all published articles.
func (a *App) Feed(ctx context.Context) error {
	articles, err := a.articles.Feed(ctx)
	if err != nil {
		a.log.Error(ctx, "loading feed failed", "err", err)
		printlnFn("Error loading feed.")
		return err
	}
	if len(articles) == 0 {
		printlnFn("No published articles yet.")
		return nil
	}
	for _, article := range articles {
		printArticleLine(&article)
	}
	return nil
}

// List shows the logged-in user's own articles, drafts included.
func (a *App) List(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return common.ErrorNotLoggedIn
	}
	articles, err := a.articles.ByAuthor(ctx, u.ID)
	if err != nil {
		a.log.Error(ctx, "loading articles failed", "err", err)
		printlnFn("Error loading articles.")
		return err
	}
	if len(articles) == 0 {
		printlnFn("You have no articles yet. Try 'write'.")
		return nil
	}
	for _, article := range articles {
		printArticleLine(&article)
	}
	return nil
}

// Read shows a single article in full: read <article-id>.
func (a *App) Read(ctx context.Context, args []string) error {
	id, err := a.requireArticleID(args)
	if err != nil {
		return err
	}
	article, err := a.articles.ByID(ctx, id)
	if err != nil {
		printlnFn("No such article.")
		return err
	}

	printlnFn(article.Title)
	printlnFn(fmt.Sprintf("%d min read, %d claps, %d comments", article.ReadTime, article.Claps, len(article.Comments)))
	printlnFn(article.Content)
	for _, c := range article.Comments {
		printlnFn(fmt.Sprintf("[%s] %s", c.CreatedAt.Format("2006-01-02"), c.Content))
	}
	return nil
}

func printArticleLine(article *models.Article) {
	state := "draft"
	if article.Published {
		state = "published"
	}
	printlnFn(fmt.Sprintf("%s  [%s]  %s (%d min, %d claps)",
		article.ID, state, article.Title, article.ReadTime, article.Claps))
}
