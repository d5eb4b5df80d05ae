package session

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hangman/internal/words"
)

type controllerRun struct {
	phase Phase
	err   error
	store *memStore
	view  *recordingView
	input *scriptedReader
}

func runController(t *testing.T, store *memStore, cfg ControllerConfig, lines ...string) controllerRun {
	t.Helper()
	if store == nil {
		store = &memStore{}
	}
	view := &recordingView{}
	input := &scriptedReader{lines: lines}
	c := NewController(fixedWords{word: "cat"}, store, view, input, cfg, quietLogger())

	phase, err := c.Run(context.Background())
	return controllerRun{phase: phase, err: err, store: store, view: view, input: input}
}

func TestControllerWin(t *testing.T) {
	run := runController(t, nil, ControllerConfig{MaxRetries: 20}, "c", "A", "t")

	require.NoError(t, run.err)
	assert.Equal(t, Won, run.phase)
	assert.Equal(t, []string{
		"rules",
		"board ___ 10", "outcome correct",
		"board c__ 10", "outcome correct",
		"board ca_ 10", "outcome correct",
		"finished won",
	}, run.view.events)
	assert.Equal(t, []string{"guess: ", "guess: ", "guess: "}, run.input.prompts)
}

func TestControllerLoss(t *testing.T) {
	wrong := strings.Split("bdefghijkl", "")
	run := runController(t, nil, ControllerConfig{MaxRetries: 20}, wrong...)

	require.NoError(t, run.err)
	assert.Equal(t, Lost, run.phase)
	assert.Contains(t, run.view.events, "board ___ 1")
	assert.Equal(t, "finished lost", run.view.events[len(run.view.events)-1])
}

func TestControllerSaveContinues(t *testing.T) {
	run := runController(t, nil, ControllerConfig{MaxRetries: 20}, "c", "save", "a", "t")

	require.NoError(t, run.err)
	assert.Equal(t, Won, run.phase)
	assert.Contains(t, run.view.events, "saved exiting=false")
	assert.Equal(t, 1, run.store.saves)
	assert.Nil(t, run.store.saved, "snapshot is cleared once the saved game ends")
}

func TestControllerSaveExits(t *testing.T) {
	run := runController(t, nil, ControllerConfig{ExitAfterSave: true, MaxRetries: 20}, "c", "save", "a")

	require.NoError(t, run.err)
	assert.Equal(t, Saved, run.phase)
	assert.Equal(t, "saved exiting=true", run.view.events[len(run.view.events)-1])
	require.NotNil(t, run.store.saved)
	assert.Equal(t, "c__", string(run.store.saved.Revealed()))
	assert.Len(t, run.input.lines, 1, "answers after the save are not read")
}

func TestControllerSaveFailureKeepsPlaying(t *testing.T) {
	store := &memStore{saveErr: errors.New("read-only file system")}
	run := runController(t, store, ControllerConfig{ExitAfterSave: true, MaxRetries: 20}, "save", "c", "a", "t")

	require.NoError(t, run.err)
	assert.Equal(t, Won, run.phase)
	assert.Contains(t, run.view.events, "save failed")
}

func TestControllerResumesSnapshot(t *testing.T) {
	saved := restore(t, "banana", "_a_a_a", "xz", 8)
	store := &memStore{saved: &saved}

	run := runController(t, store, ControllerConfig{MaxRetries: 20}, "yes", "b", "n")

	require.NoError(t, run.err)
	assert.Equal(t, Won, run.phase)
	assert.Equal(t, "load? ", run.input.prompts[0])
	assert.Equal(t, "board _a_a_a 8", run.view.events[1])
	assert.Nil(t, store.saved)
}

func TestControllerDeclinesSnapshot(t *testing.T) {
	saved := restore(t, "banana", "_a_a_a", "xz", 8)
	store := &memStore{saved: &saved}

	run := runController(t, store, ControllerConfig{MaxRetries: 20}, "N", "c", "a", "t")

	require.NoError(t, run.err)
	assert.Equal(t, Won, run.phase)
	assert.Equal(t, "board ___ 10", run.view.events[1])
	assert.NotNil(t, store.saved, "declined snapshot is left alone")
}

func TestControllerMalformedSnapshotStartsFresh(t *testing.T) {
	store := &memStore{loadErr: errors.New("malformed snapshot")}

	run := runController(t, store, ControllerConfig{MaxRetries: 20}, "y", "c", "a", "t")

	require.NoError(t, run.err)
	assert.Equal(t, Won, run.phase)
	assert.Equal(t, []string{"rules", "load failed", "board ___ 10"}, run.view.events[:3])
}

func TestControllerRetriesYesNo(t *testing.T) {
	saved := restore(t, "banana", "_a_a_a", "", 10)
	store := &memStore{saved: &saved}

	run := runController(t, store, ControllerConfig{MaxRetries: 20}, "maybe", "n", "c", "a", "t")

	require.NoError(t, run.err)
	assert.Equal(t, "rejected answer y or n", run.view.events[1])
	assert.Equal(t, []string{"load? ", "load? "}, run.input.prompts[:2])
}

func TestControllerRejectsBadGuesses(t *testing.T) {
	run := runController(t, nil, ControllerConfig{MaxRetries: 20}, "c", "c", "7", "", "a", "t")

	require.NoError(t, run.err)
	assert.Equal(t, Won, run.phase)

	var rejected []string
	for _, e := range run.view.events {
		if strings.HasPrefix(e, "rejected") {
			rejected = append(rejected, e)
		}
	}
	assert.Equal(t, []string{
		"rejected letter already guessed",
		"rejected please enter a valid letter",
		"rejected please enter a valid letter",
	}, rejected)
}

func TestControllerRetryLimit(t *testing.T) {
	t.Run("consecutive invalid answers", func(t *testing.T) {
		run := runController(t, nil, ControllerConfig{MaxRetries: 3}, "1", "2", "3", "c")

		assert.ErrorIs(t, run.err, ErrTooManyRetries)
		assert.Equal(t, AwaitingInput, run.phase)
		assert.Len(t, run.input.lines, 1)
	})

	t.Run("counter resets on a valid answer", func(t *testing.T) {
		run := runController(t, nil, ControllerConfig{MaxRetries: 2}, "1", "c", "2", "a", "t")

		require.NoError(t, run.err)
		assert.Equal(t, Won, run.phase)
	})

	t.Run("unbounded", func(t *testing.T) {
		lines := append(strings.Split(strings.Repeat("?", 50), ""), "c", "a", "t")
		run := runController(t, nil, ControllerConfig{}, lines...)

		require.NoError(t, run.err)
		assert.Equal(t, Won, run.phase)
	})

	t.Run("yes/no prompt", func(t *testing.T) {
		saved := restore(t, "banana", "______", "", 10)
		run := runController(t, &memStore{saved: &saved}, ControllerConfig{MaxRetries: 2}, "huh", "what")

		assert.ErrorIs(t, run.err, ErrTooManyRetries)
	})
}

func TestControllerEndOfInput(t *testing.T) {
	run := runController(t, nil, ControllerConfig{MaxRetries: 20}, "c")

	assert.ErrorIs(t, run.err, io.EOF)
	assert.Equal(t, AwaitingInput, run.phase)
	assert.Nil(t, run.store.saved)
}

func TestControllerNoWord(t *testing.T) {
	view := &recordingView{}
	input := &scriptedReader{}
	c := NewController(fixedWords{err: words.ErrNoQualifyingWord}, &memStore{}, view, input, ControllerConfig{}, quietLogger())

	_, err := c.Run(context.Background())

	assert.ErrorIs(t, err, words.ErrNoQualifyingWord)
	assert.Empty(t, view.events)
	assert.Empty(t, input.prompts)
}

func TestControllerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	view := &recordingView{}
	input := &scriptedReader{lines: []string{"c"}}
	c := NewController(fixedWords{word: "cat"}, &memStore{}, view, input, ControllerConfig{}, quietLogger())

	_, err := c.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, input.prompts)
}

func TestControllerCancelledWhileWaiting(t *testing.T) {
	tests := []struct {
		name  string
		store *memStore
	}{
		{"guess prompt", &memStore{}},
		{"load question", func() *memStore {
			saved := restore(t, "banana", "______", "", 10)
			return &memStore{saved: &saved}
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := newBlockingReader()
			t.Cleanup(func() { close(input.release) })

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			c := NewController(fixedWords{word: "cat"}, tt.store, &recordingView{}, input, ControllerConfig{}, quietLogger())

			done := make(chan error, 1)
			go func() {
				_, err := c.Run(ctx)
				done <- err
			}()

			select {
			case <-input.started:
			case <-time.After(5 * time.Second):
				t.Fatal("controller never prompted")
			}
			cancel()

			select {
			case err := <-done:
				assert.ErrorIs(t, err, context.Canceled)
			case <-time.After(5 * time.Second):
				t.Fatal("controller kept waiting for input after cancel")
			}
		})
	}
}
