package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/tcalc/internal/config"
)

// RunOptions configures the interactive program
type RunOptions struct {
	Mouse   bool
	Watcher *config.Watcher
}

// Run runs the keypad until the user quits or ctx is cancelled. When a
// watcher is given, configuration changes are forwarded to the model.
func Run(ctx context.Context, model *Model, opts RunOptions) error {
	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, progOpts...)

	if opts.Watcher != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		go func() {
			err := opts.Watcher.Run(watchCtx,
				func(cfg *config.Config) { p.Send(ConfigReloadedMsg{Config: cfg}) },
				func(err error) { p.Send(ConfigErrorMsg{Err: err}) },
			)
			if err != nil {
				model.logger.Warn("config watcher stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
