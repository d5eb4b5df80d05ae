package words

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/randutil"
)

// Source hands out secret words from a fixed dictionary.
type Source struct {
	words  []string
	rng    *rand.Rand
	logger *log.Logger
}

// NewSource returns a Source over words. A seed of 0 draws a fresh seed
// from clock; any other seed gives a reproducible sequence.
func NewSource(words []string, seed int64, clock quartz.Clock, logger *log.Logger) *Source {
	seed = randutil.SeedOrNow(seed, clock.Now())
	logger = logger.WithPrefix("words")
	logger.Debug("Seeded word source", "seed", seed)
	return &Source{
		words:  words,
		rng:    randutil.New(seed),
		logger: logger,
	}
}

// Open builds a Source from the dictionary file at path, or from the
// built-in list when path is empty.
func Open(path string, seed int64, clock quartz.Clock, logger *log.Logger) (*Source, error) {
	if path == "" {
		logger.Debug("Using built-in dictionary")
		return NewSource(Default(), seed, clock, logger), nil
	}

	list, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded dictionary", "path", path, "words", len(list))
	return NewSource(list, seed, clock, logger), nil
}

// Next returns a random word of playable length.
func (s *Source) Next() (string, error) {
	w, err := Select(s.words, s.rng)
	if err != nil {
		s.logger.Error("No playable word", "dictionary_size", len(s.words))
		return "", fmt.Errorf("choosing secret word: %w", err)
	}
	s.logger.Debug("Chose secret word", "length", len(w))
	return w, nil
}
