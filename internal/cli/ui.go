package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for environment names.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Console
// =============================================================================

// console prints operator-facing status lines. Diagnostics go to the logger.
type console struct {
	w io.Writer
}

func (c *console) println(s string) {
	fmt.Fprintln(c.w, s)
}

func (c *console) success(format string, args ...any) {
	c.println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func (c *console) failure(format string, args ...any) {
	c.println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func (c *console) warning(format string, args ...any) {
	c.println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (c *console) info(format string, args ...any) {
	c.println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// detail prints an indented, dimmed line.
func (c *console) detail(format string, args ...any) {
	c.println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (c *console) keyValue(key, value string) {
	c.println("  " + styleKey.Render(key) + " " + StyleValue.Render(value))
}

// nextStep prints a suggested follow-up command.
func (c *console) nextStep(description, cmd string) {
	c.println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func (c *console) newline() {
	fmt.Fprintln(c.w)
}

// envTable prints names as a numbered table. The numbers are the 1-based
// indices accepted by the interactive selection.
func (c *console) envTable(names []string) {
	rows := make([][]string, len(names))
	for i, n := range names {
		rows[i] = []string{strconv.Itoa(i + 1), n}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Environment").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return StyleDim.Padding(0, 1)
			default:
				return StyleHighlight.Padding(0, 1)
			}
		})
	c.println(t.Render())
}
