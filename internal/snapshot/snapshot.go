// Package snapshot persists a single in-progress game.
//
// A Snapshot is the storage form of a game.State. It is written as YAML:
//
//	word: apple
//	revealedPattern: [a, _, _, _, _]
//	wrongGuesses: [z]
//	attemptsRemaining: 9
//	savedAt: 2025-01-02T15:04:05Z
//
// Deserialize checks the snapshot as strictly as game.Restore does, so a
// hand-edited or truncated file is reported instead of producing an
// impossible game.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/lox/hangman/internal/game"
)

var (
	// ErrMalformedSnapshot is returned for snapshots that are unreadable or
	// do not describe a valid game.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrNoSnapshot is returned when there is no saved game to load.
	ErrNoSnapshot = errors.New("no saved game")
)

// Snapshot is the persisted form of a game.State.
type Snapshot struct {
	Word              string    `yaml:"word"`
	RevealedPattern   []string  `yaml:"revealedPattern,flow"`
	WrongGuesses      []string  `yaml:"wrongGuesses,flow"`
	AttemptsRemaining int       `yaml:"attemptsRemaining"`
	SavedAt           time.Time `yaml:"savedAt,omitempty"`
}

// rawSnapshot mirrors Snapshot with every required field nullable so that
// Decode can tell a missing key from a zero value.
type rawSnapshot struct {
	Word              *string   `yaml:"word"`
	RevealedPattern   []string  `yaml:"revealedPattern"`
	WrongGuesses      []string  `yaml:"wrongGuesses"`
	AttemptsRemaining *int      `yaml:"attemptsRemaining"`
	SavedAt           time.Time `yaml:"savedAt"`
}

// Serialize converts a game into its snapshot.
func Serialize(s game.State) Snapshot {
	return Snapshot{
		Word:              s.Word(),
		RevealedPattern:   runesToStrings(s.Revealed()),
		WrongGuesses:      runesToStrings(s.Wrong()),
		AttemptsRemaining: s.AttemptsRemaining(),
	}
}

// Deserialize converts a snapshot back into a game. Every failure wraps
// ErrMalformedSnapshot.
func Deserialize(snap Snapshot) (game.State, error) {
	revealed, err := stringsToRunes(snap.RevealedPattern)
	if err != nil {
		return game.State{}, fmt.Errorf("%w: revealedPattern: %v", ErrMalformedSnapshot, err)
	}
	wrong, err := stringsToRunes(snap.WrongGuesses)
	if err != nil {
		return game.State{}, fmt.Errorf("%w: wrongGuesses: %v", ErrMalformedSnapshot, err)
	}

	s, err := game.Restore(snap.Word, revealed, wrong, snap.AttemptsRemaining)
	if err != nil {
		return game.State{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return s, nil
}

// Encode renders snap as YAML.
func Encode(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses YAML produced by Encode. Missing keys and values of the
// wrong type are reported as ErrMalformedSnapshot.
func Decode(data []byte) (Snapshot, error) {
	var raw rawSnapshot
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	var missing []string
	if raw.Word == nil {
		missing = append(missing, "word")
	}
	if raw.RevealedPattern == nil {
		missing = append(missing, "revealedPattern")
	}
	if raw.WrongGuesses == nil {
		missing = append(missing, "wrongGuesses")
	}
	if raw.AttemptsRemaining == nil {
		missing = append(missing, "attemptsRemaining")
	}
	if len(missing) > 0 {
		return Snapshot{}, fmt.Errorf("%w: missing %v", ErrMalformedSnapshot, missing)
	}

	return Snapshot{
		Word:              *raw.Word,
		RevealedPattern:   raw.RevealedPattern,
		WrongGuesses:      raw.WrongGuesses,
		AttemptsRemaining: *raw.AttemptsRemaining,
		SavedAt:           raw.SavedAt,
	}, nil
}

func runesToStrings(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

func stringsToRunes(ss []string) ([]rune, error) {
	out := make([]rune, len(ss))
	for i, s := range ss {
		if utf8.RuneCountInString(s) != 1 {
			return nil, fmt.Errorf("entry %d is %q, want a single character", i, s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		out[i] = r
	}
	return out, nil
}
