// Package ui provides the interactive candidate picker and its terminal
// styling. The picker re-ranks candidates on every keystroke and prints
// the chosen line to stdout, so it composes with shell pipelines.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haystacksearch/needle/internal/filter"
)

// ErrAborted is returned when the user exits the picker without choosing.
var ErrAborted = errors.New("selection aborted")

// defaultVisible is how many candidates are shown before scrolling.
const defaultVisible = 10

// pickerModel is the bubbletea model for interactive selection.
type pickerModel struct {
	input   textinput.Model
	filter  *filter.Filter
	results []filter.Ranked
	cursor  int
	offset  int
	visible int
	styles  Styles
	choice  string
	aborted bool
}

// newPickerModel creates a picker over the given candidates.
func newPickerModel(candidates []string, opts filter.Options, styles Styles) *pickerModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = "type to filter"
	ti.Focus()

	m := &pickerModel{
		input:   ti,
		filter:  filter.New(candidates, opts),
		visible: defaultVisible,
		styles:  styles,
	}
	m.rank("")
	return m
}

// rank re-filters the candidates for the current pattern.
func (m *pickerModel) rank(pattern string) {
	ranked, err := m.filter.Rank(context.Background(), pattern)
	if err != nil {
		ranked = nil
	}
	m.results = ranked
	m.cursor = 0
	m.offset = 0
}

// Init implements tea.Model.
func (m *pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			if len(m.results) == 0 {
				return m, nil
			}
			m.choice = m.results[m.cursor].Text
			return m, tea.Quit

		case "up", "ctrl+p":
			m.moveCursor(-1)
			return m, nil

		case "down", "ctrl+n":
			m.moveCursor(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		// Leave room for the prompt and the counter line.
		m.visible = msg.Height - 3
		if m.visible < 1 {
			m.visible = 1
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.rank(m.input.Value())
	}
	return m, cmd
}

// moveCursor moves the selection, keeping it within the visible window.
func (m *pickerModel) moveCursor(delta int) {
	if len(m.results) == 0 {
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.visible {
		m.offset = m.cursor - m.visible + 1
	}
}

// View implements tea.Model.
func (m *pickerModel) View() string {
	if m.choice != "" || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	counter := fmt.Sprintf("%d/%d", len(m.results), m.filter.Len())
	b.WriteString(m.styles.Counter.Render(counter))
	b.WriteString("\n")

	end := m.offset + m.visible
	if end > len(m.results) {
		end = len(m.results)
	}
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("▌ "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(m.renderCandidate(m.results[i], i == m.cursor))
		b.WriteString("\n")
	}

	if len(m.results) == 0 {
		b.WriteString(m.styles.Dim.Render("  no matches"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCandidate renders one candidate line with matched runs emphasized.
func (m *pickerModel) renderCandidate(r filter.Ranked, selected bool) string {
	base := m.styles.Dim
	if selected {
		base = m.styles.Selected
	}

	if r.Match == nil {
		return base.Render(r.Text)
	}

	runes := []rune(r.Text)
	var b strings.Builder
	last := 0
	for _, span := range r.Match.ContinuousMatches() {
		if span.Start > last {
			b.WriteString(base.Render(string(runes[last:span.Start])))
		}
		b.WriteString(m.styles.Match.Render(string(runes[span.Start : span.Start+span.Len])))
		last = span.Start + span.Len
	}
	if last < len(runes) {
		b.WriteString(base.Render(string(runes[last:])))
	}
	return b.String()
}

// Pick runs the interactive picker over candidates and returns the chosen
// line. The UI is drawn on stderr so the selection can be piped from
// stdout. Returns ErrAborted if the user quits without selecting.
func Pick(candidates []string, opts filter.Options) (string, error) {
	if !IsTTY(os.Stderr) {
		return "", fmt.Errorf("interactive picker requires a terminal")
	}

	styles := GetStyles(DetectNoColor())
	model := newPickerModel(candidates, opts, styles)

	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(*pickerModel)
	if !ok || m.aborted || m.choice == "" {
		return "", ErrAborted
	}
	return m.choice, nil
}

var _ tea.Model = (*pickerModel)(nil)
