package session

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/hangman/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// memStore is an in-memory Store.
type memStore struct {
	saved   *game.State
	saveErr error
	loadErr error
	saves   int
	clears  int
}

func (m *memStore) Exists() bool { return m.saved != nil || m.loadErr != nil }

func (m *memStore) Save(s game.State) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &s
	m.saves++
	return nil
}

func (m *memStore) Load() (game.State, error) {
	if m.loadErr != nil {
		return game.State{}, m.loadErr
	}
	if m.saved == nil {
		return game.State{}, errors.New("nothing saved")
	}
	return *m.saved, nil
}

func (m *memStore) Clear() error {
	m.saved = nil
	m.loadErr = nil
	m.clears++
	return nil
}

// fixedWords always returns the same word, or an error.
type fixedWords struct {
	word string
	err  error
}

func (f fixedWords) Next() (string, error) { return f.word, f.err }

// scriptedReader answers prompts from a fixed script, then returns io.EOF.
type scriptedReader struct {
	lines   []string
	prompts []string
}

func (r *scriptedReader) Prompt(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

// recordingView records presenter calls as short event strings.
type recordingView struct {
	events []string
}

func (v *recordingView) record(format string, args ...any) {
	v.events = append(v.events, fmt.Sprintf(format, args...))
}

func (v *recordingView) Rules()              { v.record("rules") }
func (v *recordingView) LoadPrompt() string  { return "load? " }
func (v *recordingView) GuessPrompt() string { return "guess: " }

func (v *recordingView) Board(s game.State) {
	v.record("board %s %d", string(s.Revealed()), s.AttemptsRemaining())
}

func (v *recordingView) Rejected(err error, _ game.State) {
	v.record("rejected %v", err)
}

func (v *recordingView) Outcome(o game.Outcome) {
	v.record("outcome %s", o)
}

func (v *recordingView) Saved(exiting bool) {
	v.record("saved exiting=%t", exiting)
}

func (v *recordingView) SaveFailed(err error) {
	v.record("save failed")
}

func (v *recordingView) LoadFailed(err error) {
	v.record("load failed")
}

func (v *recordingView) Finished(s game.State) {
	v.record("finished %s", s.Status())
}

func restore(t *testing.T, word, pattern, wrong string, attempts int) game.State {
	t.Helper()
	s, err := game.Restore(word, []rune(pattern), []rune(wrong), attempts)
	require.NoError(t, err)
	return s
}

// blockingReader waits in Prompt until released, like a terminal nobody
// types into.
type blockingReader struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingReader() *blockingReader {
	return &blockingReader{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (r *blockingReader) Prompt(string) (string, error) {
	select {
	case r.started <- struct{}{}:
	default:
	}
	<-r.release
	return "", io.EOF
}
