// Package cli implements the interactive Inkwell shell: a small REPL over
// the session manager and the article/follow services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"inkwell/internal/config"
	"inkwell/internal/logging"
	"inkwell/internal/services"
	"inkwell/internal/session"
	"inkwell/internal/store"
	"inkwell/internal/storage"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Manager
	articles *services.ArticleService
	follows  *services.FollowService
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp wires the storage backend, record store (seeded on first use),
// session manager, and services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	backend, err := storage.NewFileBackend(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open data dir: %w", err)
	}

	st := store.New(backend)
	if err := st.Init(ctx); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	sess, err := session.NewManager(ctx, st.Users(), backend)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		log:      log,
		session:  sess,
		articles: services.NewArticleService(st.Articles()),
		follows:  services.NewFollowService(st.Users()),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// status renders the REPL prompt segment: the current username, or
// "anonymous".
func (a *App) status() string {
	if u := a.session.Current(); u != nil {
		return u.Username
	}
	return "anonymous"
}

// Run starts the REPL on stdin and blocks until the user exits or the
// context is done.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "inkwell ready", "data_dir", a.config.DataDir)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
