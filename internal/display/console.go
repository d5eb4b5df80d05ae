package display

import (
	"errors"
	"fmt"
	"io"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/session"
)

// Console renders a game as plain lines of styled text. It implements
// session.Presenter.
type Console struct {
	out    io.Writer
	styles Styles
}

var _ session.Presenter = (*Console)(nil)

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer, color bool) *Console {
	return &Console{
		out:    out,
		styles: NewStyles(NewRenderer(out, color)),
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) Rules() {
	c.println("")
	c.println(c.styles.Rules.Render(RulesText()))
}

func (c *Console) LoadPrompt() string {
	return c.styles.Prompt.Render(LoadQuestion) + "\n"
}

func (c *Console) GuessPrompt() string {
	return "\n" + c.styles.Prompt.Render(GuessQuestion)
}

// Board shows the attempts left and both letter rows.
func (c *Console) Board(s game.State) {
	c.println("")
	c.println(AttemptsLine(s.AttemptsRemaining()))
	c.println("")
	c.println(c.styles.Label.Render("* Revealed letters:"))
	c.println(c.styles.Revealed.Render(FormatLetters(s.Revealed())))
	c.println("")
	c.println(c.styles.Label.Render("* Letters not in the word:"))
	c.println(c.styles.Wrong.Render(FormatLetters(s.Wrong())))
}

// Rejected explains why an answer was not accepted. A repeated letter also
// shows the revealed row again.
func (c *Console) Rejected(err error, s game.State) {
	if errors.Is(err, session.ErrInvalidYesNo) {
		c.println(c.styles.Warning.Render(RejectionText(err)))
		return
	}

	c.println("")
	c.println(c.styles.Warning.Render(RejectionText(err)))
	if errors.Is(err, session.ErrDuplicateGuess) {
		c.println(c.styles.Revealed.Render(FormatLetters(s.Revealed())))
	}
}

func (c *Console) Outcome(o game.Outcome) {
	style := c.styles.Success
	if o == game.WrongGuess {
		style = c.styles.Error
	}
	c.println("")
	c.println(style.Render(OutcomeText(o)))
}

func (c *Console) Saved(exiting bool) {
	msg := GameSaved
	if exiting {
		msg = GameSavedExit
	}
	c.println("")
	c.println(c.styles.Success.Render(msg))
}

func (c *Console) SaveFailed(err error) {
	c.println("")
	c.println(c.styles.Error.Render(SaveFailedText(err)))
}

func (c *Console) LoadFailed(err error) {
	c.println(c.styles.Error.Render(LoadFailedText(err)))
}

// Finished shows the result of a won or lost game followed by the secret
// word.
func (c *Console) Finished(s game.State) {
	c.println("")
	switch s.Status() {
	case game.Won:
		c.println(c.styles.Success.Render(WonMessage))
	case game.Lost:
		c.println(LastGuess)
		c.println(c.styles.Revealed.Render(FormatLetters(s.Revealed())))
		c.println("")
		c.println(c.styles.Error.Render(LostMessage))
	}
	c.println(c.styles.Word.Render(s.Word()))
}
