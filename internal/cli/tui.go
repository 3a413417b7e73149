package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/venvkit/pkg/reclaim"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listPickedStyle   = lipgloss.NewStyle().Foreground(colorRed)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// selectInputChars are the characters the picker accepts as typed input.
const selectInputChars = "0123456789, alq"

// =============================================================================
// selectModel - Interactive environment selection
// =============================================================================

// selectModel lets the operator mark environments with the cursor or type a
// selection ("1 3", "all", "q"). Either way the result is a string for
// reclaim.ParseSelection.
type selectModel struct {
	names  []string
	cursor int
	picked []bool
	input  string
	height int
	offset int
	result string
}

func newSelectModel(names []string) selectModel {
	return selectModel{names: names, picked: make([]bool, len(names)), height: 15}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.result = reclaim.SelectQuit
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case " ":
			if m.input == "" && len(m.picked) > 0 {
				m.picked[m.cursor] = !m.picked[m.cursor]
			} else {
				m.input += " "
			}
		case "backspace":
			if m.input != "" {
				m.input = m.input[:len(m.input)-1]
			}
		case "enter":
			m.result = m.selection()
			return m, tea.Quit
		default:
			if msg.Type == tea.KeyRunes {
				for _, r := range msg.Runes {
					if strings.ContainsRune(selectInputChars, r) {
						m.input += string(r)
					}
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
	}
	return m, nil
}

// selection prefers typed input over cursor marks.
func (m selectModel) selection() string {
	if in := strings.TrimSpace(m.input); in != "" {
		return in
	}
	var idx []string
	for i, ok := range m.picked {
		if ok {
			idx = append(idx, strconv.Itoa(i+1))
		}
	}
	return strings.Join(idx, " ")
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select environments to remove"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space mark  type numbers or \"all\"  ⏎ confirm  esc quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.names))
	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		mark := " "
		if m.picked[i] {
			mark = "✗"
		}
		rows = append(rows, []string{cursor, strconv.Itoa(i + 1), mark, m.names[i]})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "", "Environment").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.offset + row
			switch {
			case idx >= len(m.names):
				return lipgloss.NewStyle()
			case idx == m.cursor:
				return listSelectedStyle
			case m.picked[idx]:
				return listPickedStyle
			case col == 1:
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.names))))
	b.WriteString("\n> " + m.input)

	return b.String()
}
