// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kanaquiz/internal/model"
	"github.com/verte-zerg/kanaquiz/internal/quiz"
	"github.com/verte-zerg/kanaquiz/internal/statsui"
)

// AdvanceMsg tells the model that the controller advanced on its own.
// Messages for a session other than the current one are dropped.
type AdvanceMsg struct {
	SessionID string
}

// PoolBuilder produces the question pool for a session.
type PoolBuilder interface {
	BuildPool(cfg model.Config) ([]model.Question, error)
}

// Model implements the Bubble Tea quiz UI.
type Model struct {
	config  model.Config
	ctrl    *quiz.Controller
	builder PoolBuilder

	input      textinput.Model
	lastAnswer string
	errMsg     string
	report     *statsui.Model

	width  int
	height int
}

var (
	characterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Padding(1, 4).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	expectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs the quiz model and starts the first session.
func NewModel(cfg model.Config, ctrl *quiz.Controller, builder PoolBuilder) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = placeholderFor(cfg)
	input.CharLimit = 64
	input.Width = 24
	input.Focus()
	m := &Model{
		config:  cfg,
		ctrl:    ctrl,
		builder: builder,
		input:   input,
	}
	m.restart()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	if m.report != nil {
		if _, ok := msg.(statsui.RestartMsg); ok {
			m.restart()
			return m, tea.ClearScreen
		}
		_, cmd := m.report.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, nil
	case AdvanceMsg:
		if msg.SessionID != m.ctrl.Status().SessionID {
			return m, nil
		}
		m.lastAnswer = ""
		m.input.Reset()
		m.afterAdvance()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.restart()
			return m, nil
		case tea.KeyEnter:
			m.handleEnter()
			return m, nil
		}
		if m.ctrl.Status().State != quiz.StateActive {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.report != nil {
		return m.report.View()
	}
	content := m.renderQuestion()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + m.renderFooter(m.ctrl.Status())
	}
	footer := m.renderFooter(m.ctrl.Status())
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) handleEnter() {
	switch m.ctrl.Status().State {
	case quiz.StateActive:
		answer := m.input.Value()
		if _, err := m.ctrl.Submit(answer); err != nil {
			if !errors.Is(err, quiz.ErrBlankAnswer) {
				logErrf("failed to submit answer: %v\n", err)
			}
			return
		}
		m.lastAnswer = strings.TrimSpace(answer)
		m.input.Reset()
	case quiz.StateAwaitingAdvance:
		// The timer may have advanced first; that is not an error worth showing.
		if err := m.ctrl.Advance(); err != nil && !errors.Is(err, quiz.ErrNotAwaitingAdvance) {
			logErrf("failed to advance: %v\n", err)
		}
		m.afterAdvance()
	}
}

func (m *Model) afterAdvance() {
	status := m.ctrl.Status()
	if status.State == quiz.StateComplete && m.report == nil {
		m.report = statsui.NewModel(status.Stats, describe(m.config))
		if m.width > 0 && m.height > 0 {
			m.report.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
	}
}

func (m *Model) restart() {
	m.report = nil
	m.lastAnswer = ""
	m.errMsg = ""
	m.input.Reset()
	pool, err := m.builder.BuildPool(m.config)
	if err != nil {
		m.errMsg = err.Error()
		m.ctrl.Reset()
		return
	}
	if err := m.ctrl.Start(pool); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) renderQuestion() string {
	status := m.ctrl.Status()
	if m.errMsg != "" {
		return incorrectStyle.Render(m.errMsg)
	}
	if status.Current == nil {
		return ""
	}
	q := status.Current
	lines := []string{
		promptStyle.Render(describe(m.config)),
		characterStyle.Render(q.Character),
		promptStyle.Render(questionPrompt(*q)),
	}
	switch status.State {
	case quiz.StateActive:
		lines = append(lines, m.input.View())
	case quiz.StateAwaitingAdvance:
		lines = append(lines, feedbackLines(status.Last, m.lastAnswer, q.Answer)...)
		lines = append(lines, promptStyle.Render(m.advanceHint(status.Last)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func feedbackLines(outcome quiz.Outcome, answer, expected string) []string {
	if outcome == quiz.OutcomeCorrect {
		return []string{correctStyle.Render("Correct!")}
	}
	return []string{
		incorrectStyle.Render(fmt.Sprintf("Incorrect: %s", answer)),
		"Answer: " + expectedStyle.Render(expected),
	}
}

func (m *Model) advanceHint(outcome quiz.Outcome) string {
	if m.ctrl.Mode() == model.AdvanceManual {
		return "enter: next"
	}
	if outcome == quiz.OutcomeCorrect {
		return "next in a moment, enter to skip"
	}
	return "next shortly, enter to skip"
}

func (m *Model) renderFooter(status quiz.Status) string {
	if status.State == quiz.StateIdle {
		return ""
	}
	segments := []string{
		fmt.Sprintf("Remaining %d", status.Remaining),
		fmt.Sprintf("First try %d/%d", status.Stats.CorrectFirstTry, status.Stats.TotalQuestions),
		fmt.Sprintf("Mistakes %d", status.Stats.TotalMistakes),
	}
	if status.Current != nil && status.Current.Attempts > 1 {
		segments = append(segments, fmt.Sprintf("Attempt %d", status.Current.Attempts))
	}
	segments = append(segments, "ctrl+r: restart  esc: quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}

func describe(cfg model.Config) string {
	if cfg.QuizType == model.QuizKanji {
		return fmt.Sprintf("Kanji · top %d · %s", cfg.KanjiCount, cfg.KanjiMode)
	}
	rows := make([]string, 0, len(cfg.SelectedRows))
	for _, row := range cfg.SelectedRows {
		rows = append(rows, string(row))
	}
	return fmt.Sprintf("Kana · %s · rows %s", cfg.KanaMode, strings.Join(rows, ", "))
}

func placeholderFor(cfg model.Config) string {
	if cfg.QuizType == model.QuizKanji {
		switch cfg.KanjiMode {
		case model.KanjiKana:
			return "reading in kana"
		case model.KanjiRomaji:
			return "reading in romaji"
		default:
			return "meaning"
		}
	}
	return "romaji"
}

func questionPrompt(q model.Question) string {
	switch q.Dimension {
	case string(model.KanjiMeaning):
		return "What does this kanji mean?"
	case string(model.KanjiKana):
		return "How is this kanji read (kana)?"
	case string(model.KanjiRomaji):
		return "How is this kanji read (romaji)?"
	default:
		return "Type the romaji"
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
