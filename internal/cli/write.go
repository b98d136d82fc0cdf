package cli

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/common"
	"inkwell/internal/services"
)

// Write collects a new article and stores it as a draft or publishes it
// right away, mirroring the save-draft / publish split of the editor.
func (a *App) Write(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return common.ErrorNotLoggedIn
	}

	title, err := GetSimpleText(a.reader, "Title:", a.out)
	if err != nil {
		return err
	}
	content, err := GetSimpleText(a.reader, "Content (markup allowed, single line):", a.out)
	if err != nil {
		return err
	}
	tagsLine, err := GetSimpleText(a.reader, "Tags (comma separated, optional):", a.out)
	if err != nil {
		return err
	}
	cover, err := GetSimpleText(a.reader, "Cover image URL (optional):", a.out)
	if err != nil {
		return err
	}
	action, err := GetSimpleText(a.reader, "Action: (d)raft or (p)ublish", a.out)
	if err != nil {
		return err
	}

	input := services.DraftInput{
		Title:      title,
		Content:    content,
		CoverImage: cover,
		Tags:       splitTags(tagsLine),
	}

	publish := action == "p" || action == "publish"
	var articleID string
	if publish {
		article, err := a.articles.CreateAndPublish(ctx, u.ID, input)
		if err != nil {
			return a.reportWriteError(ctx, err)
		}
		articleID = article.ID
		printlnFn("Article published successfully!")
	} else {
		article, err := a.articles.CreateDraft(ctx, u.ID, input)
		if err != nil {
			return a.reportWriteError(ctx, err)
		}
		articleID = article.ID
		printlnFn("Draft saved successfully!")
	}
	printlnFn("Article id:", articleID)
	return nil
}

func (a *App) reportWriteError(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrorValidation) {
		printlnFn("Please enter both title and content.")
		return err
	}
	a.log.Error(ctx, "saving article failed", "err", err)
	printlnFn("Error saving article.")
	return err
}

// Publish flips an existing article to published: publish <article-id>.
func (a *App) Publish(ctx context.Context, args []string) error {
	return a.togglePublished(ctx, args, true)
}

// Unpublish turns an article back into a draft: unpublish <article-id>.
func (a *App) Unpublish(ctx context.Context, args []string) error {
	return a.togglePublished(ctx, args, false)
}

func (a *App) togglePublished(ctx context.Context, args []string, publish bool) error {
	id, err := a.requireArticleID(args)
	if err != nil {
		return err
	}
	if err := a.requireOwnership(ctx, id); err != nil {
		return err
	}

	var opErr error
	if publish {
		_, opErr = a.articles.Publish(ctx, id)
	} else {
		_, opErr = a.articles.Unpublish(ctx, id)
	}
	if opErr != nil {
		printlnFn("Error updating article.")
		return opErr
	}
	if publish {
		printlnFn("Article published successfully.")
	} else {
		printlnFn("Article unpublished successfully.")
	}
	return nil
}

// Delete removes one of the caller's articles: delete <article-id>.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.requireArticleID(args)
	if err != nil {
		return err
	}
	if err := a.requireOwnership(ctx, id); err != nil {
		return err
	}

	removed, err := a.articles.Delete(ctx, id)
	if err != nil {
		printlnFn("Error deleting article.")
		return err
	}
	if !removed {
		printlnFn("No such article.")
		return common.ErrorNotFound
	}
	printlnFn("Article deleted successfully.")
	return nil
}

func (a *App) requireArticleID(args []string) (string, error) {
	if len(args) != 1 {
		printlnFn("Usage: <command> <article-id>")
		return "", common.ErrorValidation
	}
	return args[0], nil
}

// requireOwnership confirms the logged-in user authored the article. This is
// a courtesy check in the view layer, not an authorization boundary.
func (a *App) requireOwnership(ctx context.Context, articleID string) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return common.ErrorNotLoggedIn
	}
	article, err := a.articles.ByID(ctx, articleID)
	if err != nil {
		printlnFn("No such article.")
		return err
	}
	if article.AuthorID != u.ID {
		printlnFn("You can only manage your own articles.")
		return common.ErrorValidation
	}
	return nil
}

func splitTags(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
