// Package game implements the hangman round rules.
//
// The main type is State, an immutable snapshot of one game: the secret
// word, the revealed pattern, the wrong letters in guess order and the
// attempts left. ApplyGuess is the only transition; it never modifies its
// input and returns the next State together with the Outcome of the guess.
//
// # Basic Usage
//
//	s := game.New("apple")
//	s, outcome := game.ApplyGuess(s, 'p')
//	// outcome == game.CorrectGuess, s.Revealed() == "_pp__"
//	switch s.Status() {
//	case game.Won, game.Lost:
//	    // game over
//	}
//
// Letters handed to ApplyGuess must already be validated: a single letter
// that has not been guessed before. The session package does that.
//
// States read back from storage go through Restore, which checks every
// invariant a State built by ApplyGuess satisfies.
package game
