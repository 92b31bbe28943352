// Package repl implements the interactive formula session.
package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/formula"
	"github.com/ardnew/formula/cli/cmd"
)

const prompt = "➜ "

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func helpMessage() string {
	return `
Commands:

  help     Print this cruft
  vars     List bound variables
  clear    Clear screen
  quit     Exit session

Usage:
  Type an expression to evaluate it; assignments persist for the session
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on an empty line or Ctrl+D to exit
`
}

// Repl starts an interactive evaluation session with a persistent
// environment.
type Repl struct {
	cmd.Bindings `embed:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	env, err := r.Environment()
	if err != nil {
		return err
	}

	input := textinput.New()
	input.Prompt = promptStyle.Render(prompt)
	input.TextStyle = inputStyle
	input.Focus()

	m := model{
		ctx:       ctx,
		env:       env,
		input:     input,
		history:   newHistory(),
		completer: newCompleter(env),
	}

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

// model is the Bubble Tea model for the session.
type model struct {
	ctx       context.Context
	env       *formula.Environment
	input     textinput.Model
	history   *history
	completer *completer
	lines     []string
	quitting  bool
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var c tea.Cmd

		m.input, c = m.input.Update(msg)

		return m, c
	}

	switch key.Type {
	case tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.completer.reset()

		return m, nil

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyTab:
		m.cycle(1)

		return m, nil

	case tea.KeyShiftTab:
		m.cycle(-1)

		return m, nil

	case tea.KeyUp:
		if line, ok := m.history.prev(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}

		m.completer.reset()

		return m, nil

	case tea.KeyDown:
		line, _ := m.history.next()
		m.input.SetValue(line)
		m.input.CursorEnd()
		m.completer.reset()

		return m, nil
	}

	var c tea.Cmd

	m.input, c = m.input.Update(msg)
	m.completer.match(m.input.Value(), m.input.Position())

	return m, c
}

// submit evaluates the current line and appends the outcome to the
// scrollback.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())

	m.input.SetValue("")
	m.completer.reset()

	if line == "" {
		return m, nil
	}

	m.history.add(line)
	m.lines = append(m.lines, promptStyle.Render(prompt)+inputStyle.Render(line))

	switch line {
	case "quit", "exit":
		m.quitting = true

		return m, tea.Quit

	case "help":
		m.lines = append(m.lines, hintStyle.Render(helpMessage()))

		return m, nil

	case "clear":
		m.lines = nil

		return m, tea.ClearScreen

	case "vars":
		for _, key := range m.env.Keys() {
			value, _ := m.env.Lookup(key)
			m.lines = append(m.lines, hintStyle.Render(
				fmt.Sprintf("  %s = %s", key, value),
			))
		}

		return m, nil
	}

	result, err := m.eval(line)
	if err != nil {
		m.lines = append(m.lines, errorStyle.Render(err.Error()))
	} else {
		m.lines = append(m.lines, resultStyle.Render(result.String()))
	}

	return m, nil
}

// eval parses and resolves one line against the session environment.
func (m model) eval(line string) (formula.Result, error) {
	x, err := formula.ParseString(m.ctx, line)
	if err != nil {
		return formula.Null, err
	}

	return x.Resolve(m.env)
}

// cycle advances the completion selection and applies it to the input.
func (m *model) cycle(delta int) {
	if replaced, pos, ok := m.completer.cycle(
		m.input.Value(), m.input.Position(), delta,
	); ok {
		m.input.SetValue(replaced)
		m.input.SetCursor(pos)
	}
}

func (m model) View() string {
	var b strings.Builder

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if m.quitting {
		return b.String()
	}

	b.WriteString(m.input.View())

	if hint := m.completer.hint(); hint != "" {
		b.WriteByte('\n')
		b.WriteString(hint)
	}

	return b.String()
}
