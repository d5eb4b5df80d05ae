package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/session"
)

// Text shown to the player. The tui package reuses it.
const (
	LoadQuestion  = "Would you like to load a saved game? y/n"
	GuessQuestion = "Guess a letter, or type 'save' to save your game: "
	NoLetters     = "No letters yet"
	GoodGuess     = "Good guess!"
	WrongLetter   = "Whoops, wrong letter!"
	InvalidLetter = "Please enter a valid letter!"
	AlreadyTried  = "You already guessed that one! Try another."
	IncorrectYN   = "Incorrect input"
	GameSaved     = "Game saved."
	GameSavedExit = "Game saved. Run hangman again to pick it up."
	WonMessage    = "Congratulations! You guessed the word!"
	LastGuess     = "Your last guess:"
	LostMessage   = "Better luck next time! The word was:"
)

// RulesText is the rules banner.
func RulesText() string {
	return fmt.Sprintf(`***************************** RULES *****************************
* The computer has chosen a word between %d and %d letters long.
* You have %d tries to guess it.
* Each turn, you may guess a letter. If the word contains it,
* it will be revealed. If it doesn't, you lose an attempt.
*****************************************************************`,
		game.MinWordLength, game.MaxWordLength, game.MaxAttempts)
}

// FormatLetters joins letters with single spaces, or reports that there
// are none.
func FormatLetters(letters []rune) string {
	if len(letters) == 0 {
		return NoLetters
	}
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// AttemptsLine reports the attempts left.
func AttemptsLine(attempts int) string {
	return fmt.Sprintf("You have %d attempt(s) to guess the word.", attempts)
}

// OutcomeText is the message shown after a resolved guess.
func OutcomeText(o game.Outcome) string {
	if o == game.CorrectGuess {
		return GoodGuess
	}
	return WrongLetter
}

// RejectionText is the message shown for an answer that was not accepted.
func RejectionText(err error) string {
	switch {
	case errors.Is(err, session.ErrInvalidYesNo):
		return IncorrectYN
	case errors.Is(err, session.ErrDuplicateGuess):
		return AlreadyTried
	default:
		return InvalidLetter
	}
}

// LoadFailedText reports a saved game that could not be resumed.
func LoadFailedText(err error) string {
	return fmt.Sprintf("Could not load the saved game (%v). Starting a new one.", err)
}

// SaveFailedText reports a failed save.
func SaveFailedText(err error) string {
	return fmt.Sprintf("Could not save the game: %v", err)
}
