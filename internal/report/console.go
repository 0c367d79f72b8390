package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Console prints events as "<level>: message" lines. Errors and warnings go
// to the error writer. Level tokens are colored only on terminals.
type Console struct {
	out    io.Writer
	errOut io.Writer
	mu     sync.Mutex

	styles map[Level]lipgloss.Style
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithColor forces color on or off regardless of the writers.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) {
		if enabled {
			c.styles = defaultStyles()
		} else {
			c.styles = nil
		}
	}
}

// NewConsole returns a Console writing to out and errOut.
func NewConsole(out, errOut io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{out: out, errOut: errOut}
	if isTerminal(out) && isTerminal(errOut) {
		c.styles = defaultStyles()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewStdConsole returns a Console on the process's stdout and stderr.
func NewStdConsole() *Console {
	return NewConsole(os.Stdout, os.Stderr)
}

func defaultStyles() map[Level]lipgloss.Style {
	return map[Level]lipgloss.Style{
		LevelError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		LevelWarn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		LevelSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		LevelInfo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) print(w io.Writer, level Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := level.String() + ":"
	if style, ok := c.styles[level]; ok {
		token = style.Render(token)
	}
	fmt.Fprintf(w, "%s %s\n", token, msg)
}

func (c *Console) Error(msg string)   { c.print(c.errOut, LevelError, msg) }
func (c *Console) Warn(msg string)    { c.print(c.errOut, LevelWarn, msg) }
func (c *Console) Success(msg string) { c.print(c.out, LevelSuccess, msg) }
func (c *Console) Info(msg string)    { c.print(c.out, LevelInfo, msg) }
