// Package words supplies secret words for new games.
//
// A dictionary is a newline-delimited list of candidate words. Lines are
// trimmed and lowercased; blank lines and lines starting with '#' are
// skipped. Only words made of the letters a-z whose length lies within
// [game.MinWordLength, game.MaxWordLength] are ever selected, so every
// secret word can be guessed from the keyboard.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/lox/hangman/internal/game"
)

// ErrNoQualifyingWord is returned when a dictionary holds no word of a
// playable length.
var ErrNoQualifyingWord = errors.New("no word of qualifying length in dictionary")

//go:embed default_words.txt
var embeddedWords string

// Default returns the built-in dictionary.
func Default() []string {
	words, _ := Load(strings.NewReader(embeddedWords))
	return words
}

// Load reads a dictionary from r.
func Load(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return out, nil
}

// LoadFile reads a dictionary from the file at path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Qualifying returns the playable words, in dictionary order.
func Qualifying(words []string) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		n := utf8.RuneCountInString(w)
		if n < game.MinWordLength || n > game.MaxWordLength {
			return false
		}
		return lo.EveryBy([]rune(w), func(r rune) bool { return r >= 'a' && r <= 'z' })
	})
}

// Select picks one qualifying word uniformly at random.
func Select(words []string, rng *rand.Rand) (string, error) {
	pool := Qualifying(words)
	if len(pool) == 0 {
		return "", ErrNoQualifyingWord
	}
	return pool[rng.IntN(len(pool))], nil
}
