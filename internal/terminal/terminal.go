// Package terminal reads the player's answers, one line per prompt.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned when the player presses Ctrl-C at a prompt.
var ErrInterrupted = errors.New("interrupted")

// Reader shows a prompt and returns the line typed in response. At end of
// input Prompt returns io.EOF.
type Reader interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// Open returns a line-editing reader when in is a terminal and a plain
// buffered reader otherwise.
func Open(in io.Reader, out io.Writer) (Reader, error) {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return newLineEditor(f, out)
	}
	return NewScanner(in, out), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Scanner reads answers from a non-interactive stream such as a pipe.
type Scanner struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScanner returns a Scanner reading from in and writing prompts to out.
func NewScanner(in io.Reader, out io.Writer) *Scanner {
	return &Scanner{scanner: bufio.NewScanner(in), out: out}
}

func (s *Scanner) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", err
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *Scanner) Close() error { return nil }

type lineEditor struct {
	rl        *readline.Instance
	out       io.Writer
	closeOnce sync.Once
	closeErr  error
}

func newLineEditor(in *os.File, out io.Writer) (*lineEditor, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:                  io.NopCloser(in),
		Stdout:                 out,
		InterruptPrompt:        "^C",
		DisableAutoSaveHistory: true,
		FuncFilterInputRune:    filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	return &lineEditor{rl: rl, out: out}, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Prompt prints any leading lines of prompt and edits the answer on the
// last one.
func (e *lineEditor) Prompt(prompt string) (string, error) {
	if i := strings.LastIndexByte(prompt, '\n'); i >= 0 {
		if _, err := io.WriteString(e.out, prompt[:i+1]); err != nil {
			return "", err
		}
		prompt = prompt[i+1:]
	}
	e.rl.SetPrompt(prompt)

	line, err := e.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case err != nil:
		return "", err
	}
	return line, nil
}

// Close releases the terminal. It is safe to call more than once.
func (e *lineEditor) Close() error {
	e.closeOnce.Do(func() { e.closeErr = e.rl.Close() })
	return e.closeErr
}
