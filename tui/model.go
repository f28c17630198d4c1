// Package tui is an interactive pager for a diff.MultifilePatch: a file
// list pane and a hunk pane, navigable with the keyboard, syntax
// highlighted via syntaxhl and colored via lipgloss/termenv.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	diff "github.com/fwojciec/godiff"
	"github.com/fwojciec/godiff/syntaxhl"
)

var (
	fileStyle         = lipgloss.NewStyle().Bold(true)
	selectedFileStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	addStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#98c379"))
	removeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75"))
	contextStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#abb2bf"))
	headerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#61afef")).Bold(true)
)

type keyMap struct {
	Up, Down, NextFile, PrevFile, Quit key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	NextFile: key.NewBinding(key.WithKeys("tab", "n")),
	PrevFile: key.NewBinding(key.WithKeys("shift+tab", "p")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
}

// Model is a tea.Model that renders a diff.MultifilePatch.
type Model struct {
	patch *diff.MultifilePatch
	tok   *syntaxhl.Tokenizer

	fileIdx int
	cursor  int

	width, height int
	colorProfile  termenv.Profile
}

// NewModel creates a Model over mp, ready to run with tea.NewProgram.
func NewModel(mp *diff.MultifilePatch) Model {
	return Model{
		patch:        mp,
		tok:          syntaxhl.NewTokenizer(),
		colorProfile: termenv.ColorProfile(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// currentFileLines counts the operation lines rendered for the file
// currently in view, the bound the cursor may move within.
func (m Model) currentFileLines() int {
	n := 0
	for _, c := range m.patch.Files[m.fileIdx].Chunks {
		n += len(c.Operations)
	}
	return n
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Down):
			if m.cursor < m.currentFileLines()-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.NextFile):
			if m.fileIdx < len(m.patch.Files)-1 {
				m.fileIdx++
				m.cursor = 0
			}
		case key.Matches(msg, keys.PrevFile):
			if m.fileIdx > 0 {
				m.fileIdx--
				m.cursor = 0
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.patch.Files) == 0 {
		return "no files in patch\n"
	}

	var b strings.Builder
	b.WriteString(m.renderFileList())
	b.WriteString("\n")
	b.WriteString(m.renderHunks())
	return b.String()
}

func (m Model) renderFileList() string {
	var parts []string
	for i, f := range m.patch.Files {
		label := f.NewFile
		if f.IsDeletion() {
			label = f.OldFile
		}
		if i == m.fileIdx {
			parts = append(parts, selectedFileStyle.Render(label))
		} else {
			parts = append(parts, fileStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderHunks() string {
	p := m.patch.Files[m.fileIdx]
	lang := syntaxhl.LanguageForPath(p.NewFile)
	if lang == "" {
		lang = syntaxhl.LanguageForPath(p.OldFile)
	}

	var b strings.Builder
	line := 0
	for _, c := range p.Chunks {
		b.WriteString(headerStyle.Render(chunkHeader(&c)))
		b.WriteString("\n")
		for _, op := range c.Operations {
			style := contextStyle
			prefix := " "
			switch op.Kind {
			case diff.OpAdd:
				style, prefix = addStyle, "+"
			case diff.OpRemove:
				style, prefix = removeStyle, "-"
			}
			rendered := m.renderLine(op.Text, lang)
			cursorMark := "  "
			if line == m.cursor {
				cursorMark = "> "
			}
			b.WriteString(cursorMark + style.Render(prefix+rendered) + "\n")
			line++
		}
	}
	return b.String()
}

func (m Model) renderLine(text, lang string) string {
	if lang == "" {
		return text
	}
	tokens := m.tok.Tokenize(lang, text)
	if tokens == nil {
		return text
	}
	var b strings.Builder
	for _, t := range tokens {
		style := lipgloss.NewStyle()
		if t.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(t.Style.Foreground))
		}
		if t.Style.Bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(t.Text))
	}
	return b.String()
}

func chunkHeader(c *diff.Chunk) string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", c.OldStart+1, c.OldLines, c.NewStart+1, c.NewLines)
}
