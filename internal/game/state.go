package game

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

const (
	// MaxAttempts is the number of wrong guesses a player may make.
	MaxAttempts = 10

	// MinWordLength and MaxWordLength bound the secret words a new game
	// will pick from a dictionary.
	MinWordLength = 5
	MaxWordLength = 12

	// Placeholder marks a position whose letter has not been guessed yet.
	Placeholder = '_'
)

// Status classifies a game after a guess has been applied.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	return [...]string{"in_progress", "won", "lost"}[s]
}

// Done reports whether no further guesses are accepted.
func (s Status) Done() bool {
	return s == Won || s == Lost
}

// State is one game of hangman. The zero value is not a valid game; use New
// or Restore. State values are never mutated once built.
type State struct {
	word     []rune
	revealed []rune
	wrong    []rune
	attempts int
}

// New returns a fresh game for word: every position hidden, no wrong
// letters and MaxAttempts attempts left.
func New(word string) State {
	w := []rune(strings.ToLower(word))
	revealed := make([]rune, len(w))
	for i := range revealed {
		revealed[i] = Placeholder
	}
	return State{
		word:     w,
		revealed: revealed,
		wrong:    []rune{},
		attempts: MaxAttempts,
	}
}

// Restore rebuilds a State from its persisted parts. It checks that the
// word is non-empty and lowercase, that the revealed pattern matches the
// word position by position with each guessed letter shown everywhere it
// occurs, that wrong letters are lowercase, absent from the word and not
// repeated, and that attempts lie within 0..MaxAttempts. Word length and
// the balance between attempts and wrong letters are not checked.
func Restore(word string, revealed, wrong []rune, attempts int) (State, error) {
	w := []rune(word)
	if len(w) == 0 {
		return State{}, fmt.Errorf("word is empty")
	}
	for i, r := range w {
		if !unicode.IsLower(r) {
			return State{}, fmt.Errorf("word has non-lowercase letter %q at position %d", r, i)
		}
	}

	if len(revealed) != len(w) {
		return State{}, fmt.Errorf("revealed pattern has %d positions, word has %d", len(revealed), len(w))
	}
	for i, r := range revealed {
		if r != Placeholder && r != w[i] {
			return State{}, fmt.Errorf("revealed letter %q at position %d does not match word", r, i)
		}
	}
	// A guessed letter is revealed everywhere it occurs.
	for i, r := range w {
		if revealed[i] == Placeholder && slices.Contains(revealed, r) {
			return State{}, fmt.Errorf("letter %q is revealed but hidden at position %d", r, i)
		}
	}

	seen := make(map[rune]bool, len(wrong))
	for _, r := range wrong {
		if !unicode.IsLower(r) {
			return State{}, fmt.Errorf("wrong guess %q is not a lowercase letter", r)
		}
		if slices.Contains(w, r) {
			return State{}, fmt.Errorf("wrong guess %q occurs in the word", r)
		}
		if seen[r] {
			return State{}, fmt.Errorf("wrong guess %q repeated", r)
		}
		seen[r] = true
	}

	if attempts < 0 || attempts > MaxAttempts {
		return State{}, fmt.Errorf("attempts remaining %d outside 0..%d", attempts, MaxAttempts)
	}

	return State{
		word:     w,
		revealed: slices.Clone(revealed),
		wrong:    append([]rune{}, wrong...),
		attempts: attempts,
	}, nil
}

// Word returns the secret word.
func (s State) Word() string { return string(s.word) }

// Revealed returns the revealed pattern, one rune per word position.
func (s State) Revealed() []rune { return slices.Clone(s.revealed) }

// Wrong returns the wrong letters in the order they were guessed.
func (s State) Wrong() []rune { return append([]rune{}, s.wrong...) }

// AttemptsRemaining returns how many wrong guesses are still allowed.
func (s State) AttemptsRemaining() int { return s.attempts }

// Hidden returns the number of positions still showing the placeholder.
func (s State) Hidden() int {
	n := 0
	for _, r := range s.revealed {
		if r == Placeholder {
			n++
		}
	}
	return n
}

// Guessed reports whether letter was already tried, right or wrong.
func (s State) Guessed(letter rune) bool {
	letter = unicode.ToLower(letter)
	return slices.Contains(s.revealed, letter) || slices.Contains(s.wrong, letter)
}

// Status classifies the game. Won takes precedence: a fully revealed word
// is never Lost.
func (s State) Status() Status {
	switch {
	case s.Hidden() == 0:
		return Won
	case s.attempts == 0:
		return Lost
	default:
		return InProgress
	}
}

// Equal reports whether both states hold the same game.
func (s State) Equal(o State) bool {
	return slices.Equal(s.word, o.word) &&
		slices.Equal(s.revealed, o.revealed) &&
		slices.Equal(s.wrong, o.wrong) &&
		s.attempts == o.attempts
}

func (s State) String() string {
	return fmt.Sprintf("%s wrong=%s attempts=%d", string(s.revealed), string(s.wrong), s.attempts)
}
