package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/venvkit/pkg/reclaim"
)

// prompter asks the operator which environments to remove and whether to go
// ahead.
type prompter interface {
	// Select returns raw selection input in the form reclaim.ParseSelection
	// accepts.
	Select(ctx context.Context, names []string) (string, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// linePrompter reads answers line by line. End of input answers "q" and "no".
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
	ui  *console
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out, ui: &console{w: out}}
}

func (p *linePrompter) readLine(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	line, err := p.in.ReadString('\n')
	if err == io.EOF {
		return strings.TrimSpace(line), line != "", nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(line), true, nil
}

func (p *linePrompter) Select(ctx context.Context, names []string) (string, error) {
	p.ui.envTable(names)
	fmt.Fprintf(p.out, "Select environments to remove (numbers, %q, or %q to quit): ", reclaim.SelectAll, reclaim.SelectQuit)

	line, ok, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return reclaim.SelectQuit, nil
	}
	return line, nil
}

func (p *linePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, _, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ttyPrompter picks environments with a full-screen list and confirms on a
// plain line.
type ttyPrompter struct {
	*linePrompter
	in io.Reader
}

func (p *ttyPrompter) Select(ctx context.Context, names []string) (string, error) {
	prog := tea.NewProgram(newSelectModel(names),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	return final.(selectModel).result, nil
}

// prompter returns the CLI's prompter. It is created once so buffered input
// carries over from the selection to the confirmation.
func (c *CLI) prompter() prompter {
	if c.prompt != nil {
		return c.prompt
	}
	line := newLinePrompter(c.Stdin, c.Stdout)
	if c.Terminal {
		c.prompt = &ttyPrompter{linePrompter: line, in: c.Stdin}
	} else {
		c.prompt = line
	}
	return c.prompt
}
