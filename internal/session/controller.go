package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/hangman/internal/game"
)

// ErrTooManyRetries is returned when the player gives too many invalid
// answers in a row.
var ErrTooManyRetries = errors.New("too many invalid answers")

// WordSource supplies the secret word for a new game.
type WordSource interface {
	Next() (string, error)
}

// LineReader shows a prompt and returns the line the player typed.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Presenter renders the game for the player.
type Presenter interface {
	Rules()
	LoadPrompt() string
	GuessPrompt() string
	Board(s game.State)
	Rejected(err error, s game.State)
	Outcome(o game.Outcome)
	Saved(exiting bool)
	SaveFailed(err error)
	LoadFailed(err error)
	Finished(s game.State)
}

// ControllerConfig holds the loop settings.
type ControllerConfig struct {
	ExitAfterSave bool
	// MaxRetries bounds consecutive invalid answers at one prompt; 0 means
	// no bound.
	MaxRetries int
}

// Controller plays one game over a line-based terminal.
type Controller struct {
	words  WordSource
	store  Store
	view   Presenter
	input  LineReader
	cfg    ControllerConfig
	logger *log.Logger
}

// NewController wires a Controller from its collaborators.
func NewController(words WordSource, store Store, view Presenter, input LineReader, cfg ControllerConfig, logger *log.Logger) *Controller {
	return &Controller{
		words:  words,
		store:  store,
		view:   view,
		input:  input,
		cfg:    cfg,
		logger: logger,
	}
}

// Run plays until the game is won or lost, or until a save ends the loop
// when ExitAfterSave is set. It returns the final phase. Errors from the
// line reader (end of input, interrupt) and ctx cancellation end the run,
// including a cancellation that arrives while a prompt is waiting.
func (c *Controller) Run(ctx context.Context) (Phase, error) {
	word, err := c.words.Next()
	if err != nil {
		return AwaitingInput, err
	}

	sess := New(game.New(word), c.store, Options{
		ExitAfterSave: c.cfg.ExitAfterSave,
		Logger:        c.logger,
	})

	c.view.Rules()

	if sess.HasSnapshot() {
		load, err := c.askYesNo(ctx, sess)
		if err != nil {
			return sess.Phase(), err
		}
		if load {
			if err := sess.Resume(); err != nil {
				c.logger.Warn("Starting a new game instead", "error", err)
				c.view.LoadFailed(err)
			}
		}
	}

	retries := 0
	for !sess.Phase().Done() {
		if err := ctx.Err(); err != nil {
			return sess.Phase(), err
		}

		c.view.Board(sess.State())
		line, err := c.prompt(ctx, c.view.GuessPrompt())
		if err != nil {
			return sess.Phase(), err
		}

		turn, err := sess.Submit(line)
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrDuplicateGuess):
			c.view.Rejected(err, sess.State())
			retries++
			if c.cfg.MaxRetries > 0 && retries >= c.cfg.MaxRetries {
				return sess.Phase(), fmt.Errorf("%w (%d in a row)", ErrTooManyRetries, retries)
			}
			continue
		case errors.Is(err, ErrSaveFailed):
			c.view.SaveFailed(err)
			continue
		case err != nil:
			return sess.Phase(), err
		}

		retries = 0
		if turn.Saved {
			c.view.Saved(sess.Phase() == Saved)
			continue
		}
		c.view.Outcome(turn.Outcome)
	}

	if p := sess.Phase(); p == Won || p == Lost {
		c.view.Finished(sess.State())
	}
	return sess.Phase(), nil
}

func (c *Controller) askYesNo(ctx context.Context, sess *Session) (bool, error) {
	for retries := 1; ; retries++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		line, err := c.prompt(ctx, c.view.LoadPrompt())
		if err != nil {
			return false, err
		}

		yes, err := ParseYesNo(line)
		if err == nil {
			return yes, nil
		}

		c.view.Rejected(err, sess.State())
		if c.cfg.MaxRetries > 0 && retries >= c.cfg.MaxRetries {
			return false, fmt.Errorf("%w (%d in a row)", ErrTooManyRetries, retries)
		}
	}
}

type answer struct {
	line string
	err  error
}

// prompt reads one line, giving up when ctx is cancelled. A reader blocked
// on its input is left behind; the caller is expected to close it.
func (c *Controller) prompt(ctx context.Context, prompt string) (string, error) {
	ch := make(chan answer, 1)
	go func() {
		line, err := c.input.Prompt(prompt)
		ch <- answer{line: line, err: err}
	}()

	select {
	case a := <-ch:
		return a.line, a.err
	case <-ctx.Done():
		c.logger.Debug("Prompt cancelled", "error", ctx.Err())
		return "", ctx.Err()
	}
}
