// Package tui renders a quiz session in the terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
	"github.com/aliskhannn/glossary-quiz/internal/service"
)

// QuizLoader runs the glossary pipeline for a new quiz.
type QuizLoader interface {
	Load(ctx context.Context) (*service.LoadResult, error)
	Marker() string
}

type sessionState int

const (
	stateLoading sessionState = iota
	stateLoadFailed
	stateQuestion
	stateAnswered
	stateFinished
)

type loadedMsg struct {
	result *service.LoadResult
	err    error
}

// --- Styles ---
var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	promptStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model of one terminal quiz.
type Model struct {
	ctx    context.Context
	loader QuizLoader
	logger *zap.Logger

	state    sessionState
	spinner  spinner.Model
	help     help.Model
	session  *entities.QuizSession
	warnings []*entities.MalformedEntryWarning
	err      error

	current int
	cursor  int
	verdict entities.AnswerVerdict
}

// New creates a model that loads its quiz on Init.
func New(ctx context.Context, loader QuizLoader, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		loader:  loader,
		logger:  logger,
		state:   stateLoading,
		spinner: s,
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.loader))
}

// --- Commands ---

func loadCmd(ctx context.Context, loader QuizLoader) tea.Cmd {
	return func() tea.Msg {
		result, err := loader.Load(ctx)
		return loadedMsg{result: result, err: err}
	}
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		return m.applyLoad(msg), nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) applyLoad(msg loadedMsg) Model {
	m.warnings = nil
	if msg.result != nil {
		m.warnings = msg.result.Warnings
	}

	if msg.err != nil {
		m.logger.Error("quiz load failed", zap.Error(msg.err))
		m.state = stateLoadFailed
		m.err = msg.err
		return m
	}

	m.err = nil
	m.session = msg.result.Session
	m.restart()
	return m
}

func (m *Model) restart() {
	m.current = 0
	m.cursor = 0
	m.state = stateQuestion
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.state = stateLoading
	return m, tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.loader))
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLoadFailed, stateFinished:
		switch {
		case key.Matches(msg, keys.Reload):
			return m.reload()
		case m.state == stateFinished && key.Matches(msg, keys.Shuffle):
			m.session.ShuffleQuestions()
			m.restart()
		}

	case stateQuestion:
		q, err := m.session.Question(m.current)
		if err != nil {
			m.err = err
			m.state = stateLoadFailed
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Choose):
			if n := int(msg.String()[0] - '1'); n < len(q.Options) {
				m.cursor = n
				return m.submit()
			}
		case key.Matches(msg, keys.Submit):
			return m.submit()
		case key.Matches(msg, keys.Shuffle):
			m.session.ShuffleQuestions()
			m.restart()
		case key.Matches(msg, keys.Reload):
			return m.reload()
		}

	case stateAnswered:
		switch {
		case key.Matches(msg, keys.Submit):
			m.current++
			m.cursor = 0
			m.state = stateQuestion
			if m.current >= m.session.Len() {
				m.state = stateFinished
			}
		case key.Matches(msg, keys.Shuffle):
			m.session.ShuffleQuestions()
			m.restart()
		}
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	v, err := m.session.CheckAnswer(m.current, m.cursor)
	if err != nil {
		m.logger.Error("check answer", zap.Int("question", m.current), zap.Int("option", m.cursor), zap.Error(err))
		return m, nil
	}
	m.verdict = v
	m.state = stateAnswered
	return m, nil
}

// --- View ---

func (m Model) View() string {
	var b strings.Builder

	switch m.state {
	case stateLoading:
		fmt.Fprintf(&b, "%s Loading glossary…", m.spinner.View())

	case stateLoadFailed:
		b.WriteString(errorStyle.Render(errorMessage(m.err)))
		b.WriteString("\n\n")
		b.WriteString(noteStyle.Render(m.err.Error()))

	case stateQuestion, stateAnswered:
		b.WriteString(m.questionView())

	case stateFinished:
		fmt.Fprintf(&b, "%s\n\nAll %d questions answered. Press s to shuffle and go again or r to reload the glossary.",
			titleStyle.Render("Done"), m.session.Len())
	}

	if len(m.warnings) > 0 {
		b.WriteString("\n\n")
		b.WriteString(noteStyle.Render(fmt.Sprintf("%d glossary entries were skipped (see log).", len(m.warnings))))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))

	return docStyle.Render(b.String())
}

func (m Model) questionView() string {
	q, err := m.session.Question(m.current)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d/%d", m.current+1, m.session.Len())))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(q.Prompt))
	if !q.HasBlank(m.loader.Marker()) {
		b.WriteString("\n")
		b.WriteString(noteStyle.Render("The definition does not mention its term."))
	}
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)

		switch {
		case m.state == stateAnswered && i == m.verdict.CorrectIndex:
			line = correctStyle.Render("✔ " + line)
		case m.state == stateAnswered && i == m.verdict.SelectedIndex:
			line = wrongStyle.Render("✘ " + line)
		case m.state == stateQuestion && i == m.cursor:
			line = cursorStyle.Render("> " + line)
		default:
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.state == stateAnswered {
		b.WriteString("\n")
		if m.verdict.IsCorrect {
			b.WriteString(correctStyle.Render("Correct!"))
		} else {
			b.WriteString(wrongStyle.Render("Not quite."))
		}
		b.WriteString(noteStyle.Render("  Press enter for the next question."))
	}

	return b.String()
}

// errorMessage picks the guidance shown for a failed load.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrSourceUnavailable):
		return "The glossary could not be loaded. Check the file, URL or database, then press r to retry."
	case errors.Is(err, service.ErrNoQuestionsAvailable):
		return "The glossary has no usable entries. Each term needs its own line followed by \"term: definition\"."
	default:
		return "Something went wrong. Press r to retry."
	}
}
