package session

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/lox/hangman/internal/game"
)

// SaveDirective is the answer that saves the game instead of guessing.
const SaveDirective = "save"

var (
	// ErrInvalidInput means the answer was not a single letter.
	ErrInvalidInput = errors.New("please enter a valid letter")

	// ErrDuplicateGuess means the letter was already tried.
	ErrDuplicateGuess = errors.New("letter already guessed")

	// ErrInvalidYesNo means a yes/no question got some other answer.
	ErrInvalidYesNo = errors.New("answer y or n")
)

// Guess is one validated answer at the guess prompt: either a letter or
// the save directive.
type Guess struct {
	Letter rune
	Save   bool
}

// ParseGuess validates a raw answer against the current game. The answer is
// trimmed and lowercased; it must be the save directive or a single ASCII
// letter not guessed before.
func ParseGuess(line string, s game.State) (Guess, error) {
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == SaveDirective {
		return Guess{Save: true}, nil
	}

	if utf8.RuneCountInString(answer) != 1 {
		return Guess{}, ErrInvalidInput
	}
	letter, _ := utf8.DecodeRuneInString(answer)
	if letter < 'a' || letter > 'z' {
		return Guess{}, ErrInvalidInput
	}
	if s.Guessed(letter) {
		return Guess{}, ErrDuplicateGuess
	}
	return Guess{Letter: letter}, nil
}

// ParseYesNo interprets an answer to a yes/no question.
func ParseYesNo(line string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidYesNo
	}
}
