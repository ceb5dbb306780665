package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"interlit/internal/ast"
	"interlit/internal/diagfmt"
	"interlit/internal/interp"
	"interlit/internal/parser"
	"interlit/internal/source"
)

type playModel struct {
	input   textinput.Model
	kind    ast.InterpKind
	parsers interp.GroupParsers
	width   int
	done    bool
}

// NewPlayModel returns a Bubble Tea model for the interactive playground:
// type a literal body, watch the element sequence and lowered argument list
// update live. Tab toggles between the i and f forms.
func NewPlayModel(initial string) tea.Model {
	ti := textinput.New()
	ti.Placeholder = `I ate $apples apples and $(apples + bananas) fruit.`
	ti.SetValue(initial)
	ti.Focus()
	ti.Prompt = "body> "

	typeFn, exprFn := parser.Hooks()
	return &playModel{
		input:   ti,
		kind:    ast.InterpI,
		parsers: interp.GroupParsers{Type: typeFn, Expr: exprFn},
		width:   80,
	}
}

func (m *playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyTab:
			if m.kind == ast.InterpI {
				m.kind = ast.InterpF
			} else {
				m.kind = ast.InterpI
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) View() string {
	if m.done {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	kindStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("interlit playground"))
	b.WriteString("  ")
	b.WriteString(kindStyle.Render(fmt.Sprintf("[%s]", m.kind)))
	b.WriteString(dimStyle.Render("  tab: toggle form  esc: quit"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	fs := source.NewFileSet()
	body := m.input.Value()
	id := fs.AddVirtual("play.il", []byte(body))
	lit := interp.Literal{
		File:    fs.Get(id),
		Kind:    m.kind,
		Body:    source.Span{File: id, Start: 0, End: uint32(len(fs.Get(id).Content))},
		Context: ast.InterpCtxCall,
	}

	elems, d := interp.Scan(lit, m.parsers)
	if d != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("%s: %s", d.Code.ID(), d.Message)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(dimStyle.Render("elements"))
	b.WriteString("\n")
	var eb strings.Builder
	diagfmt.Elements(&eb, fs, elems)
	for _, line := range strings.Split(strings.TrimRight(eb.String(), "\n"), "\n") {
		b.WriteString("  " + truncate(line, m.width-2) + "\n")
	}

	args, d := interp.Lower(lit, m.parsers)
	if d != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("%s: %s", d.Code.ID(), d.Message)))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(dimStyle.Render("lowered"))
	b.WriteString("\n")
	b.WriteString("  " + truncate(diagfmt.LoweredArgs(fs, args), m.width-2) + "\n")
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
