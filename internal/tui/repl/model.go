// ============================================================================
// mcalc - MCL Statement Evaluator
// ============================================================================
//
// Package:     repl
// Description: Main Bubbletea model for the interactive MCL REPL
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mcalc/foundation/mcl"
	"github.com/msto63/mcalc/foundation/mcl/symtab"
)

// Config holds REPL configuration
type Config struct {
	Engine *mcl.Engine

	// OnRun is called after every evaluated line, e.g. to record history
	OnRun func(source string, result *mcl.Result, err error)
}

// Model is the main Bubbletea model for the REPL
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Session state
	session    *mcl.Session
	operators  string
	transcript []Entry
	onRun      func(source string, result *mcl.Result, err error)

	// Input history
	inputHistory []string
	historyIndex int // -1 = new input
	currentInput string
}

// New creates a new REPL model
func New(cfg Config) Model {
	engine := cfg.Engine
	if engine == nil {
		engine = mcl.New(mcl.Options{})
	}

	ti := textinput.New()
	ti.Placeholder = "int a = 10;"
	ti.Prompt = PromptStyle.Render("mcl> ")
	ti.CharLimit = 4096
	ti.Width = 76
	ti.Focus()

	return Model{
		input:        ti,
		session:      engine.NewSession(),
		operators:    engine.Operators().String(),
		onRun:        cfg.OnRun,
		historyIndex: -1,
		transcript: []Entry{
			{Kind: EntrySystem, Text: "Anweisungen eingeben, :help für Befehle"},
		},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 3
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 6
		m.updateViewportContent()

	case evalResultMsg:
		if m.onRun != nil {
			m.onRun(msg.source, msg.result, msg.err)
		}

		if msg.err != nil {
			m.appendEntry(EntryError, "Fehler: "+msg.err.Error())
			break
		}

		changes := changedVariables(msg.before, msg.result.Variables)
		if len(changes) == 0 {
			m.appendEntry(EntrySystem, "ok")
		}
		for _, e := range changes {
			m.appendEntry(EntryResult, formatEntry(e))
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return m, tea.Quit

	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		m.historyIndex = -1
		m.currentInput = ""
		if line == "" {
			return m, nil
		}

		m.inputHistory = append(m.inputHistory, line)
		m.appendEntry(EntryInput, line)

		if strings.HasPrefix(line, ":") {
			return m.runCommand(line)
		}
		return m, m.evaluate(line)

	case tea.KeyUp:
		if len(m.inputHistory) == 0 {
			return m, nil
		}
		if m.historyIndex == -1 {
			m.currentInput = m.input.Value()
			m.historyIndex = len(m.inputHistory) - 1
		} else if m.historyIndex > 0 {
			m.historyIndex--
		}
		m.input.SetValue(m.inputHistory[m.historyIndex])
		m.input.CursorEnd()
		return m, nil

	case tea.KeyDown:
		if m.historyIndex == -1 {
			return m, nil
		}
		if m.historyIndex < len(m.inputHistory)-1 {
			m.historyIndex++
			m.input.SetValue(m.inputHistory[m.historyIndex])
		} else {
			m.historyIndex = -1
			m.input.SetValue(m.currentInput)
		}
		m.input.CursorEnd()
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runCommand executes a colon command
func (m Model) runCommand(line string) (tea.Model, tea.Cmd) {
	switch strings.Fields(line)[0] {
	case ":quit", ":q", ":exit":
		return m, tea.Quit

	case ":reset":
		m.session.Reset()
		m.appendEntry(EntrySystem, "Alle Variablen zurückgesetzt")

	case ":vars":
		vars := m.session.Variables()
		if len(vars) == 0 {
			m.appendEntry(EntrySystem, "Keine Variablen deklariert")
		}
		for _, e := range vars {
			m.appendEntry(EntryResult, formatEntry(e))
		}

	case ":help":
		m.appendEntry(EntrySystem, ":vars Variablen anzeigen, :reset zurücksetzen, :quit beenden")

	default:
		m.appendEntry(EntryError, fmt.Sprintf("Fehler: unbekannter Befehl %s", line))
	}

	return m, nil
}

// evaluate runs a line against the session
func (m Model) evaluate(source string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		before := session.Variables()
		result, err := session.Execute(context.Background(), source)
		return evalResultMsg{source: source, before: before, result: result, err: err}
	}
}

// Transcript returns a copy of the transcript lines
func (m Model) Transcript() []Entry {
	result := make([]Entry, len(m.transcript))
	copy(result, m.transcript)
	return result
}

// Variables returns the committed session variables
func (m Model) Variables() []symtab.Entry {
	return m.session.Variables()
}

func (m *Model) appendEntry(kind EntryKind, text string) {
	m.transcript = append(m.transcript, Entry{Kind: kind, Text: text})
	m.updateViewportContent()
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// View implements tea.Model
func (m Model) View() string {
	header := LogoStyle.Render("mcalc") + " " +
		SubHeaderStyle.Render(fmt.Sprintf("MCL REPL (Operatoren %s)", m.operators))

	body := m.renderTranscript()
	if m.ready {
		body = m.viewport.View()
	}

	status := StatusBarStyle.Render(fmt.Sprintf("%d Variablen", len(m.session.Variables()))) +
		" " + HelpStyle.Render("Enter ausführen • ↑/↓ Historie • :help • Ctrl+C beenden")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, m.input.View(), status)
}

func (m Model) renderTranscript() string {
	lines := make([]string, 0, len(m.transcript))
	for _, e := range m.transcript {
		switch e.Kind {
		case EntryInput:
			lines = append(lines, PromptStyle.Render("> ")+InputEchoStyle.Render(e.Text))
		case EntryResult:
			lines = append(lines, ResultStyle.Render(e.Text))
		case EntryError:
			lines = append(lines, ErrorStyle.Render(e.Text))
		default:
			lines = append(lines, SystemStyle.Render(e.Text))
		}
	}
	return strings.Join(lines, "\n")
}

// changedVariables returns entries of after that are new or differ from before
func changedVariables(before, after []symtab.Entry) []symtab.Entry {
	prev := make(map[string]symtab.Entry, len(before))
	for _, e := range before {
		prev[e.Name] = e
	}

	var changes []symtab.Entry
	for _, e := range after {
		if old, ok := prev[e.Name]; !ok || old != e {
			changes = append(changes, e)
		}
	}
	return changes
}

func formatEntry(e symtab.Entry) string {
	return fmt.Sprintf("%s (%s) = %d", e.Name, e.Type, e.Value)
}

// Run starts the REPL TUI
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
