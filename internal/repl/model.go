// File: model.go
// Title: REPL Terminal UI
// Description: bubbletea model of the interactive REPL: a single line
//              prompt, a scrolling transcript and asynchronous evaluation
//              that Ctrl+C can interrupt.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/sbml/foundation/sbml/value"
)

type lineKind int

const (
	lineInput lineKind = iota
	lineOutput
	lineValue
	lineError
	lineInfo
)

type transcriptLine struct {
	kind lineKind
	text string
}

// evalResultMsg carries the result of an asynchronous evaluation
type evalResultMsg struct {
	result Result
}

// Model is the REPL TUI model
type Model struct {
	ctx     context.Context
	session *Session
	version string

	width   int
	height  int
	ready   bool
	running bool
	cancel  context.CancelFunc

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	transcript []transcriptLine
	pending    string

	history      []string
	historyIndex int
}

// NewModel creates the REPL model for session
func NewModel(ctx context.Context, session *Session, version string) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(prompt)
	ti.Placeholder = "x = 1 + 2; or :help"
	ti.CharLimit = 4000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		ctx:     ctx,
		session: session,
		version: version,
		input:   ti,
		spinner: sp,
		transcript: []transcriptLine{
			{kind: lineInfo, text: "type :help for commands, Ctrl+C interrupts a running loop"},
		},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles key presses, window resizes and evaluation results
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.running {
				m.cancel()
				return m, nil
			}
			return m, tea.Quit

		case "esc":
			if m.pending != "" {
				m.pending = ""
				m.input.Prompt = PromptStyle.Render(prompt)
				m.appendLines(lineInfo, "input discarded")
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if m.running {
				return m, nil
			}
			return m.submit()

		case "up":
			m.recall(-1)
			return m, nil

		case "down":
			m.recall(1)
			return m, nil

		case "ctrl+l":
			m.transcript = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.viewport.YPosition = 2
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.input.Width = msg.Width - 12
		m.updateContent()

	case evalResultMsg:
		m.running = false
		m.cancel = nil
		m.record(msg.result)
		if msg.result.Quit {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	source := line
	if m.pending != "" {
		source = m.pending + "\n" + line
	}
	m.appendLines(lineInput, promptFor(m.pending)+line)

	if !Complete(source) {
		m.pending = source
		m.input.Prompt = PromptStyle.Render(continuationPrompt)
		return m, nil
	}
	m.pending = ""
	m.input.Prompt = PromptStyle.Render(prompt)

	if strings.TrimSpace(source) == "" {
		return m, nil
	}
	m.history = append(m.history, source)
	m.historyIndex = len(m.history)

	return m, m.evaluate(source)
}

// evaluate runs source off the UI goroutine
func (m *Model) evaluate(source string) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.running = true
	session := m.session

	return func() tea.Msg {
		defer cancel()
		return evalResultMsg{result: session.Submit(ctx, source)}
	}
}

func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	m.historyIndex += step
	switch {
	case m.historyIndex < 0:
		m.historyIndex = 0
	case m.historyIndex >= len(m.history):
		m.historyIndex = len(m.history)
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

func (m *Model) record(result Result) {
	m.appendLines(lineOutput, result.Output...)
	if result.Value != nil {
		m.appendLines(lineValue, value.Repr(result.Value))
	}
	if result.Diagnostic != "" {
		m.appendLines(lineError, result.Diagnostic)
	}
}

func (m *Model) appendLines(kind lineKind, lines ...string) {
	for _, text := range lines {
		m.transcript = append(m.transcript, transcriptLine{kind: kind, text: text})
	}
	m.updateContent()
}

func (m *Model) updateContent() {
	var content strings.Builder
	for _, line := range m.transcript {
		switch line.kind {
		case lineInput:
			content.WriteString(InputEchoStyle.Render(line.text))
		case lineValue:
			content.WriteString(ValueStyle.Render(line.text))
		case lineError:
			content.WriteString(RenderError(line.text))
		case lineInfo:
			content.WriteString(InfoStyle.Render(line.text))
		default:
			content.WriteString(OutputStyle.Render(line.text))
		}
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var s strings.Builder
	s.WriteString(TitleStyle.Render("sbml " + m.version))
	s.WriteString("\n\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderFooter() string {
	help := "Enter: run • ↑/↓: history • Ctrl+L: clear • Esc: quit"
	status := fmt.Sprintf("%d names", len(m.session.interp.Names()))
	if m.running {
		status = RunningStyle.Render(m.spinner.View() + " running (Ctrl+C interrupts)")
	}

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-lipgloss.Width(status)-4)),
			status,
		),
	)
}

func promptFor(pending string) string {
	if pending != "" {
		return continuationPrompt
	}
	return prompt
}

// Run starts the full screen REPL and blocks until the user quits
func Run(ctx context.Context, session *Session, version string) error {
	p := tea.NewProgram(
		NewModel(ctx, session, version),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
