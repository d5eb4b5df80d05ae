package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/hangman/internal/display"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/session"
	"github.com/lox/hangman/internal/tui"
)

type TUICmd struct{}

func (c *TUICmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	ctx, stop := setupSignalHandler(a.logger)
	defer stop()

	word, err := a.words.Next()
	if err != nil {
		return err
	}

	if !a.cfg.ColorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	sess := session.New(game.New(word), a.store, session.Options{
		ExitAfterSave: a.cfg.Game.ExitAfterSave,
		Logger:        a.logger,
	})
	model := tui.NewModel(sess, a.logger, tui.Options{MaxRetries: a.cfg.RetryLimit()})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	// The alternate screen is gone; repeat the result on the normal one
	if st := sess.State(); st.Status().Done() {
		display.NewConsole(os.Stdout, a.cfg.ColorEnabled()).Finished(st)
	}

	a.logger.Info("TUI closed", "phase", sess.Phase())
	return model.Err()
}
