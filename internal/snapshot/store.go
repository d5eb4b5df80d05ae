package snapshot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/fileutil"
	"github.com/lox/hangman/internal/game"
)

// DefaultPath is where the saved game lives unless configured otherwise.
const DefaultPath = "save.yml"

// Store keeps at most one saved game in a single file. Saving replaces the
// previous snapshot atomically.
type Store struct {
	path   string
	clock  quartz.Clock
	logger *log.Logger
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string, clock quartz.Clock, logger *log.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{
		path:   path,
		clock:  clock,
		logger: logger.WithPrefix("snapshot"),
	}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a saved game is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.Mode().IsRegular()
}

// Save writes st as the saved game, overwriting any earlier one.
func (s *Store) Save(st game.State) error {
	snap := Serialize(st)
	snap.SavedAt = s.clock.Now().UTC()

	data, err := Encode(snap)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	err = fileutil.ReplaceFile(s.path, 0o644, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to save game", "path", s.path, "error", err)
		return fmt.Errorf("saving game: %w", err)
	}

	s.logger.Info("Game saved", "path", s.path, "attempts", st.AttemptsRemaining(), "hidden", st.Hidden())
	return nil
}

// Load reads the saved game.
func (s *Store) Load() (game.State, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.State{}, ErrNoSnapshot
	}
	if err != nil {
		return game.State{}, fmt.Errorf("reading snapshot: %w", err)
	}

	snap, err := Decode(data)
	if err != nil {
		s.logger.Warn("Snapshot unreadable", "path", s.path, "error", err)
		return game.State{}, err
	}
	st, err := Deserialize(snap)
	if err != nil {
		s.logger.Warn("Snapshot invalid", "path", s.path, "error", err)
		return game.State{}, err
	}

	if !snap.SavedAt.IsZero() {
		s.logger.Info("Game loaded", "path", s.path, "age", s.clock.Since(snap.SavedAt).Round(time.Second))
	} else {
		s.logger.Info("Game loaded", "path", s.path)
	}
	return st, nil
}

// Clear removes the saved game, if any.
func (s *Store) Clear() error {
	if err := fileutil.RemoveIfExists(s.path); err != nil {
		return fmt.Errorf("removing snapshot: %w", err)
	}
	s.logger.Debug("Snapshot cleared", "path", s.path)
	return nil
}
