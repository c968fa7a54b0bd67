package live

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/question"
	"quizdeck/internal/session"
)

// Model drives a configured session from the keyboard.
type Model struct {
	session  *session.Session
	group    string
	noColor  bool
	width    int
	phase    Phase
	current  question.Question
	cursor   int
	feedback session.Feedback
	result   session.Result
	history  []session.Result
	review   table.Model
	err      error
}

// Options configures the quiz UI model.
type Options struct {
	Group   string
	NoColor bool
}

// NewModel wraps a configured session.
func NewModel(s *session.Session, opts Options) (Model, error) {
	if s == nil {
		return Model{}, errors.New("live: session is nil")
	}
	review := table.New(
		table.WithColumns(reviewColumns(80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithWidth(80),
		table.WithHeight(8),
	)
	review.SetStyles(tableStyles(opts.NoColor))
	m := Model{
		session: s,
		group:   opts.Group,
		noColor: opts.NoColor,
		width:   80,
		review:  review,
	}
	current, err := s.CurrentQuestion()
	if err != nil {
		return Model{}, fmt.Errorf("live: %w", err)
	}
	m.current = current
	return m, nil
}

// Init has no startup command; the quiz waits for keys.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.review.SetWidth(typed.Width)
		m.review.SetColumns(reviewColumns(typed.Width))
		m.review.SetHeight(max(typed.Height/2, 3))
		return m, nil
	case tea.KeyMsg:
		m = m.handleKey(typed.String())
		if m.phase == PhaseQuit {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// View renders the current phase.
func (m Model) View() string {
	if m.phase == PhaseQuit {
		return ""
	}
	parts := []string{renderHeader(m), ""}
	switch m.phase {
	case PhaseQuestion:
		parts = append(parts, renderQuestion(m.current, m.cursor, m.noColor))
	case PhaseFeedback:
		parts = append(parts, renderQuestion(m.current, m.feedback.Selected, m.noColor), "", renderFeedback(m.feedback, m.noColor))
	case PhaseResult:
		parts = append(parts, renderResult(m.result, m.noColor))
		if len(m.review.Rows()) > 0 {
			parts = append(parts, "", m.review.View())
		}
	}
	if m.err != nil {
		parts = append(parts, "", stylize(m.err.Error(), m.noColor, colorError))
	}
	parts = append(parts, "", renderHelp(m.phase, m.canRetry(), m.noColor))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) handleKey(key string) Model {
	m.err = nil
	if key == "ctrl+c" || key == "esc" {
		m.phase = PhaseQuit
		return m
	}
	switch m.phase {
	case PhaseQuestion:
		return m.questionKey(key)
	case PhaseFeedback:
		if key == "enter" || key == "n" || key == " " {
			return m.advance()
		}
		if key == "q" {
			m.phase = PhaseQuit
		}
	case PhaseResult:
		switch key {
		case "r":
			return m.retry()
		case "q", "enter":
			m.phase = PhaseQuit
		}
	}
	return m
}

func (m Model) questionKey(key string) Model {
	n := len(m.current.Choices)
	switch key {
	case "up", "k", "shift+tab":
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case "down", "j", "tab":
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case "enter", " ":
		return m.submit(session.Choose(m.cursor))
	case "s":
		return m.submit(session.NoAnswer())
	case "q":
		m.phase = PhaseQuit
	default:
		if index, ok := letterIndex(key); ok && index < n {
			m.cursor = index
		}
	}
	return m
}

func (m Model) submit(sel session.Selection) Model {
	feedback, err := m.session.Answer(sel)
	if err != nil {
		m.err = err
		return m
	}
	m.feedback = feedback
	m.phase = PhaseFeedback
	return m
}

func (m Model) advance() Model {
	if err := m.session.Advance(); err != nil {
		m.err = err
		return m
	}
	if m.session.State() == session.StateCompleted {
		result, err := m.session.Result()
		if err != nil {
			m.err = err
			return m
		}
		m.result = result
		m.history = append(m.history, result)
		m.review.SetRows(reviewRows(m.session.Incorrect()))
		m.phase = PhaseResult
		return m
	}
	return m.loadCurrent()
}

func (m Model) retry() Model {
	if err := m.session.Retry(); err != nil {
		m.err = err
		return m
	}
	m.review.SetRows([]table.Row{})
	return m.loadCurrent()
}

func (m Model) loadCurrent() Model {
	current, err := m.session.CurrentQuestion()
	if err != nil {
		m.err = err
		return m
	}
	m.current = current
	m.cursor = 0
	m.feedback = session.Feedback{}
	m.phase = PhaseQuestion
	return m
}

func (m Model) canRetry() bool {
	return m.phase == PhaseResult && m.result.IncorrectCount > 0
}

// Phase reports the screen being shown.
func (m Model) Phase() Phase { return m.phase }

// History lists the results of every finished pass.
func (m Model) History() []session.Result {
	return append([]session.Result(nil), m.history...)
}

// Run starts the quiz program on the given terminal streams and returns the final model.
func Run(m Model, in io.Reader, out io.Writer) (Model, error) {
	program := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return m, fmt.Errorf("run live ui: %w", err)
	}
	done, ok := final.(Model)
	if !ok {
		return m, errors.New("live: unexpected final model")
	}
	return done, nil
}
