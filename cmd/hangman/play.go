package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/hangman/internal/display"
	"github.com/lox/hangman/internal/session"
	"github.com/lox/hangman/internal/terminal"
)

type PlayCmd struct{}

func (c *PlayCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	ctx, stop := setupSignalHandler(a.logger)
	defer stop()

	input, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() { _ = input.Close() }()
	// Restore the terminal as soon as a signal arrives; Run stops waiting
	// on the prompt by itself.
	stopClose := context.AfterFunc(ctx, func() { _ = input.Close() })
	defer stopClose()

	view := display.NewConsole(os.Stdout, a.cfg.ColorEnabled())
	ctrl := session.NewController(a.words, a.store, view, input, session.ControllerConfig{
		ExitAfterSave: a.cfg.Game.ExitAfterSave,
		MaxRetries:    a.cfg.RetryLimit(),
	}, a.logger)

	phase, err := ctrl.Run(ctx)
	if leftEarly(err) {
		a.logger.Info("Player left", "phase", phase, "reason", err)
		fmt.Fprintln(os.Stdout, "\nGoodbye!")
		return nil
	}
	if err != nil {
		a.logger.Error("Game aborted", "phase", phase, "error", err)
		return err
	}

	a.logger.Info("Game over", "phase", phase)
	return nil
}

// leftEarly reports whether err means the player stopped playing rather
// than something going wrong.
func leftEarly(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, terminal.ErrInterrupted) ||
		errors.Is(err, context.Canceled)
}
