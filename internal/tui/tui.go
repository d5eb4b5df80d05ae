// Package tui is a full-screen hangman front end built on bubbletea.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/hangman/internal/display"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/session"
)

// Options configures a Model.
type Options struct {
	// MaxRetries bounds consecutive invalid answers; 0 means no bound.
	MaxRetries int
	// TestMode captures log entries and skips viewport updates.
	TestMode bool
}

// Model is the bubbletea model for one game.
type Model struct {
	sess   *session.Session
	logger *log.Logger

	logViewport viewport.Model
	input       textinput.Model

	gameLog    []string
	asking     bool // waiting for the load question
	retries    int
	maxRetries int
	quitting   bool
	err        error

	width  int
	height int

	testMode    bool
	capturedLog []string
}

// NewModel returns a model playing sess. When a saved game exists the
// player is first asked whether to load it.
func NewModel(sess *session.Session, logger *log.Logger, opts Options) *Model {
	vp := viewport.New(10, 5)

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 20
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		sess:        sess,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		maxRetries:  opts.MaxRetries,
		testMode:    opts.TestMode,
		capturedLog: []string{},
	}
	m.asking = !sess.Phase().Done() && sess.HasSnapshot()
	m.updatePlaceholder()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updated dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.sess.Phase().Done() || m.err != nil {
				m.quitting = true
				return m, tea.Quit
			}
			m.submit(m.input.Value())
			m.input.SetValue("")
			m.updatePlaceholder()
			if m.err != nil {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit handles one answer typed by the player.
func (m *Model) submit(line string) {
	if m.asking {
		m.answerLoad(line)
		return
	}

	turn, err := m.sess.Submit(line)
	switch {
	case errors.Is(err, session.ErrInvalidInput), errors.Is(err, session.ErrDuplicateGuess):
		m.reject(err)
		return
	case errors.Is(err, session.ErrSaveFailed):
		m.addEntry(ErrorStyle, display.SaveFailedText(err))
		return
	case err != nil:
		m.logger.Error("Unexpected answer error", "error", err)
		m.err = err
		return
	}

	m.retries = 0
	if turn.Saved {
		msg := display.GameSaved
		if m.sess.Phase() == session.Saved {
			msg = display.GameSavedExit
		}
		m.addEntry(SuccessStyle, msg)
		return
	}

	style := SuccessStyle
	if turn.Outcome == game.WrongGuess {
		style = ErrorStyle
	}
	m.addEntry(style, fmt.Sprintf("%s %s", strings.ToUpper(string(turn.Letter)), display.OutcomeText(turn.Outcome)))

	if turn.Status.Done() {
		m.finish()
	}
}

func (m *Model) answerLoad(line string) {
	yes, err := session.ParseYesNo(line)
	if err != nil {
		m.reject(err)
		return
	}

	m.retries = 0
	m.asking = false
	if !yes {
		return
	}
	if err := m.sess.Resume(); err != nil {
		m.logger.Warn("Starting a new game instead", "error", err)
		m.addEntry(ErrorStyle, display.LoadFailedText(err))
		return
	}
	m.addEntry(SuccessStyle, "Saved game loaded.")
}

func (m *Model) reject(err error) {
	m.addEntry(WarningStyle, display.RejectionText(err))
	m.retries++
	if m.maxRetries > 0 && m.retries >= m.maxRetries {
		m.err = fmt.Errorf("%w (%d in a row)", session.ErrTooManyRetries, m.retries)
		m.addEntry(ErrorStyle, "Too many invalid answers.")
	}
}

func (m *Model) finish() {
	s := m.sess.State()
	if s.Status() == game.Won {
		m.addEntry(SuccessStyle, display.WonMessage+" "+s.Word())
		return
	}
	m.addEntry(ErrorStyle, display.LostMessage+" "+s.Word())
}

func (m *Model) updatePlaceholder() {
	switch {
	case m.sess.Phase().Done() || m.err != nil:
		m.input.Placeholder = "Enter to exit"
	case m.asking:
		m.input.Placeholder = "y or n"
	default:
		m.input.Placeholder = "a letter, or save"
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var top strings.Builder
	top.WriteString(HeaderStyle.Render("HANGMAN"))
	top.WriteString("\n\n")
	top.WriteString(RulesStyle.Render(display.RulesText()))
	top.WriteString("\n\n")
	top.WriteString(m.renderBoard())

	prompt := m.renderPrompt()

	logHeight := m.height - lipgloss.Height(top.String()) - lipgloss.Height(prompt) - 2
	m.logViewport.Width = max(m.width-2, 1)
	m.logViewport.Height = max(logHeight, 1)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()

	logPane := PaneStyle.Width(max(m.width-2, 1)).Render(m.logViewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, top.String(), logPane, prompt)
}

func (m *Model) renderBoard() string {
	s := m.sess.State()
	if m.asking {
		return WarningStyle.Render(display.LoadQuestion)
	}

	var b strings.Builder
	b.WriteString(AttemptsStyle.Render(display.AttemptsLine(s.AttemptsRemaining())))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("* Revealed letters: "))
	b.WriteString(RevealedStyle.Render(display.FormatLetters(s.Revealed())))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("* Letters not in the word: "))
	b.WriteString(WrongStyle.Render(display.FormatLetters(s.Wrong())))
	return b.String()
}

func (m *Model) renderPrompt() string {
	help := "Enter to submit • Esc to quit"
	if m.sess.Phase().Done() || m.err != nil {
		help = "Enter to exit"
	}
	return m.input.View() + "\n" + InfoStyle.Render(help)
}

// addEntry appends a message to the game log.
func (m *Model) addEntry(style lipgloss.Style, entry string) {
	m.gameLog = append(m.gameLog, style.Render(entry))

	// In test mode, capture the text without styling
	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// Session returns the session the model plays.
func (m *Model) Session() *session.Session {
	return m.sess
}

// Err returns the error that ended the game early, if any.
func (m *Model) Err() error {
	return m.err
}

// Asking reports whether the model is waiting for the load question.
func (m *Model) Asking() bool {
	return m.asking
}
