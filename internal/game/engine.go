package game

import (
	"slices"
	"unicode"
)

// Outcome is the result of a single guess.
type Outcome int

const (
	CorrectGuess Outcome = iota
	WrongGuess
)

func (o Outcome) String() string {
	return [...]string{"correct", "wrong"}[o]
}

// ApplyGuess resolves one guessed letter against s and returns the next
// state. The letter must be a single letter not guessed before; callers
// validate that first. s itself is left untouched.
//
// A letter in the word reveals every position holding it and costs
// nothing. Any other letter is appended to the wrong letters and costs
// exactly one attempt.
func ApplyGuess(s State, letter rune) (State, Outcome) {
	letter = unicode.ToLower(letter)

	if !slices.Contains(s.word, letter) {
		next := State{
			word:     s.word,
			revealed: slices.Clone(s.revealed),
			wrong:    append(slices.Clone(s.wrong), letter),
			attempts: max(s.attempts-1, 0),
		}
		return next, WrongGuess
	}

	revealed := slices.Clone(s.revealed)
	for i, r := range s.word {
		if r == letter {
			revealed[i] = letter
		}
	}
	next := State{
		word:     s.word,
		revealed: revealed,
		wrong:    slices.Clone(s.wrong),
		attempts: s.attempts,
	}
	return next, CorrectGuess
}
