// Package session runs one game of hangman against a player.
//
// Session is the state machine: it owns the current game.State and moves
// between the phases AwaitingInput, Resolving, Saved, Won and Lost as
// answers are submitted. Controller drives a Session from a line-based
// terminal; the tui package drives the same Session from a full-screen
// program.
package session

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/hangman/internal/game"
)

var (
	// ErrGameOver is returned when answers arrive after the loop ended.
	ErrGameOver = errors.New("game is over")

	// ErrSaveFailed wraps errors from the snapshot store during a save.
	ErrSaveFailed = errors.New("could not save game")

	// ErrFinishedSnapshot means the saved game had already been won or lost.
	ErrFinishedSnapshot = errors.New("saved game is already finished")
)

// Phase is the position of a session in the guess loop.
type Phase int

const (
	AwaitingInput Phase = iota
	Resolving
	Saved
	Won
	Lost
)

func (p Phase) String() string {
	return [...]string{"awaiting_input", "resolving", "saved", "won", "lost"}[p]
}

// Done reports whether the loop has ended.
func (p Phase) Done() bool {
	return p == Saved || p == Won || p == Lost
}

// Store persists the single saved game.
type Store interface {
	Exists() bool
	Save(game.State) error
	Load() (game.State, error)
	Clear() error
}

// Options configures a Session.
type Options struct {
	// ExitAfterSave ends the loop in the Saved phase after a save. By
	// default saving is a quick save and play continues.
	ExitAfterSave bool
	Logger        *log.Logger
}

// Turn describes what one submitted answer did.
type Turn struct {
	Saved   bool
	Letter  rune
	Outcome game.Outcome
	Status  game.Status
}

// Session holds the current game and the loop phase.
type Session struct {
	state         game.State
	phase         Phase
	store         Store
	exitAfterSave bool
	persisted     bool // the snapshot holds this game
	logger        *log.Logger
}

// New starts a session on state.
func New(state game.State, store Store, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		state:         state,
		phase:         phaseFor(state.Status()),
		store:         store,
		exitAfterSave: opts.ExitAfterSave,
		logger:        logger.WithPrefix("session"),
	}
}

// State returns the current game.
func (s *Session) State() game.State {
	return s.state
}

// Phase returns the current loop phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// HasSnapshot reports whether a saved game could be resumed.
func (s *Session) HasSnapshot() bool {
	return s.store.Exists()
}

// Resume replaces the current game with the saved one. On error the
// current game is kept.
func (s *Session) Resume() error {
	st, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading saved game: %w", err)
	}
	if st.Status().Done() {
		return ErrFinishedSnapshot
	}

	s.state = st
	s.phase = AwaitingInput
	s.persisted = true
	s.logger.Info("Resumed saved game", "attempts", st.AttemptsRemaining(), "hidden", st.Hidden())
	return nil
}

// Submit handles one raw answer from the player. Validation errors
// (ErrInvalidInput, ErrDuplicateGuess) leave the session unchanged so the
// caller can ask again.
func (s *Session) Submit(line string) (Turn, error) {
	if s.phase.Done() {
		return Turn{}, ErrGameOver
	}

	guess, err := ParseGuess(line, s.state)
	if err != nil {
		s.logger.Debug("Rejected answer", "input", line, "error", err)
		return Turn{}, err
	}

	if guess.Save {
		return s.save()
	}
	return s.resolve(guess.Letter), nil
}

func (s *Session) save() (Turn, error) {
	if err := s.store.Save(s.state); err != nil {
		return Turn{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.persisted = true
	s.phase = Saved
	if !s.exitAfterSave {
		s.phase = AwaitingInput
	}
	return Turn{Saved: true, Status: s.state.Status()}, nil
}

func (s *Session) resolve(letter rune) Turn {
	s.phase = Resolving

	next, outcome := game.ApplyGuess(s.state, letter)
	s.state = next
	status := next.Status()
	s.phase = phaseFor(status)

	s.logger.Debug("Applied guess", "letter", string(letter), "outcome", outcome, "status", status)

	if status.Done() {
		s.logger.Info("Game finished", "status", status, "attempts", next.AttemptsRemaining())
		if s.persisted {
			if err := s.store.Clear(); err != nil {
				s.logger.Warn("Failed to clear snapshot", "error", err)
			}
			s.persisted = false
		}
	}

	return Turn{Letter: letter, Outcome: outcome, Status: status}
}

func phaseFor(status game.Status) Phase {
	switch status {
	case game.Won:
		return Won
	case game.Lost:
		return Lost
	default:
		return AwaitingInput
	}
}
