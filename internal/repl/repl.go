package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/chongchonghe/acap/internal/engine"
	"github.com/chongchonghe/acap/internal/history"
	"github.com/chongchonghe/acap/internal/logger"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	parsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Run starts the interactive calculator. A terminal gets the full UI; piped
// input falls back to a plain line loop so that scripted use stays clean.
func Run(calc *engine.Calculator, store *history.Store, noColor bool) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runPlain(calc, store, os.Stdin, os.Stdout)
	}

	m := newModel(calc, store, noColor)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

type model struct {
	session *Session
	input   textinput.Model
	lines   []string
	counter int
	noColor bool
	done    bool
}

func newModel(calc *engine.Calculator, store *history.Store, noColor bool) model {
	ti := textinput.New()
	ti.Placeholder = "expression, e.g. 2 G M_sun / c^2 in km"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 70

	return model{
		session: NewSession(calc, store),
		input:   ti,
		counter: 1,
		noColor: noColor,
		lines: []string{
			"acap: a calculator for astronomers and physicists",
			"Type an expression, 'q' to quit, '!' or '!N' to recall history.",
			"",
		},
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	out := m.session.Process(line)

	switch {
	case out.Quit:
		m.done = true
		return m, tea.Quit
	case out.Empty:
		return m, nil
	case out.Recall != "":
		// Prefill the recalled input for editing instead of running it.
		m.input.SetValue(out.Recall)
		m.input.CursorEnd()
		return m, nil
	}

	m.lines = append(m.lines, m.style(promptStyle, m.prompt())+line)
	m.lines = append(m.lines, m.render(out)...)
	m.lines = append(m.lines, "")
	if out.Err == nil && out.Notice == "" {
		m.counter++
	}
	m.input.SetValue("")
	return m, nil
}

func (m model) prompt() string {
	return fmt.Sprintf("Input[%d]: ", m.counter)
}

// render formats one outcome as transcript lines.
func (m model) render(out Outcome) []string {
	if out.Notice != "" {
		return []string{m.style(noticeStyle, out.Notice)}
	}
	if out.Err != nil {
		return []string{m.style(errorStyle, out.Err.Error())}
	}

	var lines []string
	if out.Parsed != "" {
		lines = append(lines, m.style(parsedStyle, "  "+out.Parsed))
	}
	if out.SI != "" {
		lines = append(lines, m.style(resultStyle, "  = "+out.SI+"  (SI)"))
	}
	if out.CGS != "" {
		lines = append(lines, m.style(resultStyle, "  = "+out.CGS+"  (CGS)"))
	}
	if out.Converted != "" {
		lines = append(lines, m.style(resultStyle, "  = "+out.Converted))
	}
	return lines
}

func (m model) style(s lipgloss.Style, text string) string {
	if m.noColor {
		return text
	}
	return s.Render(text)
}

func (m model) View() string {
	if m.done {
		return strings.Join(m.lines, "\n") + "\n"
	}
	return strings.Join(m.lines, "\n") + "\n" +
		m.style(promptStyle, m.prompt()) + m.input.View() + "\n"
}

// runPlain reads lines from r and writes uncolored results to w.
func runPlain(calc *engine.Calculator, store *history.Store, r io.Reader, w io.Writer) error {
	session := NewSession(calc, store)
	scanner := bufio.NewScanner(r)
	counter := 1

	for scanner.Scan() {
		out := session.Process(scanner.Text())
		switch {
		case out.Quit:
			return nil
		case out.Empty:
			continue
		case out.Recall != "":
			// Without an editable prompt, recalled input runs directly.
			out = session.Process(out.Recall)
		}

		if out.Notice != "" {
			fmt.Fprintln(w, out.Notice)
			continue
		}
		if out.Err != nil {
			fmt.Fprintln(w, out.Err.Error())
			continue
		}

		fmt.Fprintf(w, "Input[%d]: %s\n", counter, out.Input)
		if out.Parsed != "" {
			fmt.Fprintf(w, "  %s\n", out.Parsed)
		}
		if out.SI != "" {
			fmt.Fprintf(w, "  = %s  (SI)\n", out.SI)
		}
		if out.CGS != "" {
			fmt.Fprintf(w, "  = %s  (CGS)\n", out.CGS)
		}
		if out.Converted != "" {
			fmt.Fprintf(w, "  = %s\n", out.Converted)
		}
		counter++
	}
	if err := scanner.Err(); err != nil {
		logger.Error("repl: stdin read failed: %s", err.Error())
		return err
	}
	return nil
}
