package cli

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/common"
	"inkwell/internal/models"
)

// Clap adds the user's clap to an article: clap <article-id>. Clapping twice
// is a quiet no-op.
func (a *App) Clap(ctx context.Context, args []string) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return common.ErrorNotLoggedIn
	}
	id, err := a.requireArticleID(args)
	if err != nil {
		return err
	}
	if _, err := a.articles.Clap(ctx, id, u.ID); err != nil {
		printlnFn("No such article.")
		return err
	}
	printlnFn("Thanks for the clap!")
	return nil
}

// Comment appends a comment: comment <article-id> <text...>.
func (a *App) Comment(ctx context.Context, args []string) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return common.ErrorNotLoggedIn
	}
	if len(args) < 2 {
		printlnFn("Usage: comment <article-id> <text>")
		return common.ErrorValidation
	}
	id, content := args[0], strings.Join(args[1:], " ")

	if _, err := a.articles.AddComment(ctx, id, u.ID, content); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No such article.")
		} else {
			printlnFn("Error posting comment.")
		}
		return err
	}
	printlnFn("Comment posted.")
	return nil
}

// Follow follows another author: follow <username>.
func (a *App) Follow(ctx context.Context, args []string) error {
	return a.link(ctx, args, true)
}

// Unfollow stops following an author: unfollow <username>.
func (a *App) Unfollow(ctx context.Context, args []string) error {
	return a.link(ctx, args, false)
}

func (a *App) link(ctx context.Context, args []string, follow bool) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return common.ErrorNotLoggedIn
	}
	if len(args) != 1 {
		printlnFn("Usage: follow|unfollow <username>")
		return common.ErrorValidation
	}
	other := args[0]

	var err error
	if follow {
		err = a.follows.Follow(ctx, u.Username, other)
	} else {
		err = a.follows.Unfollow(ctx, u.Username, other)
	}
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			printlnFn("You cannot follow yourself.")
		case errors.Is(err, common.ErrorNotFound):
			printlnFn("No such user.")
		default:
			a.log.Error(ctx, "follow update failed", "err", err)
			printlnFn("Error updating follow state.")
		}
		return err
	}

	// Re-merge the cached identity so follower counts stay fresh.
	if err := a.session.UpdateProfile(ctx, models.UserPatch{}); err != nil {
		a.log.Warn(ctx, "session refresh failed", "err", err)
	}

	if follow {
		printlnFn("Now following", other)
	} else {
		printlnFn("Unfollowed", other)
	}
	return nil
}
