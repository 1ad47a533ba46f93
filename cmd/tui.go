package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"filmoteca/internal/shared"
	"filmoteca/internal/ui"
)

// TUI launches the interactive form-and-table movie manager.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.provider == nil {
		return fmt.Errorf("%w: set auth.domain and auth.client_id in config.toml", shared.ErrMissingCredentials)
	}
	if r.movies == nil {
		return fmt.Errorf("%w: movie API not configured", shared.ErrInvalidConfig)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/filmoteca-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	sess := r.provider.Current(ctx)

	model := ui.NewModel(ctx, r.movies, sess)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
