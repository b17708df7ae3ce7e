// Package cli implements the interactive shell: the numbered menu loop,
// prompt helpers and the per-action screens.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/habitkeep/internal/config"
	"github.com/dmitrijs2005/habitkeep/internal/logging"
	"github.com/dmitrijs2005/habitkeep/internal/services"
	"github.com/dmitrijs2005/habitkeep/internal/store"
)

type App struct {
	config *config.Config
	habits *services.HabitService
	fs     *store.FileStore
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, log logging.Logger) *App {
	fs := store.NewFileStore(c.DataDir, c.DataFile, log)
	hs := services.NewHabitService(fs, log)

	return &App{
		config: c,
		habits: hs,
		fs:     fs,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	if a.habits.Load(ctx) {
		fmt.Fprintf(a.out, "Warning: data file was corrupted. Backed up to %s\n", a.fs.BackupPath())
	}
	runMenu(ctx, a, a.reader, a.out)
}

// Save persists the current state. The raw error goes to the log; callers
// show the user a readable message instead.
func (a *App) Save(ctx context.Context) error {
	err := a.habits.Save(ctx)
	if err != nil {
		a.log.Error(ctx, "save failed", "error", err)
	}
	return err
}
