package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Printer writes the session's output. Styles are bound to the destination
// writer, so piped or buffered output stays free of escape sequences.
type Printer struct {
	out io.Writer

	banner lipgloss.Style
	prompt lipgloss.Style
	fail   lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(out)

	return &Printer{
		out:    out,
		banner: renderer.NewStyle().Bold(true),
		prompt: renderer.NewStyle().Foreground(lipgloss.Color("12")),
		fail:   renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Banner - prints a bold headline.
func (that *Printer) Banner(text string) {
	fmt.Fprintln(that.out, that.banner.Render(text))
}

// Line - prints one formatted line of plain output.
func (that *Printer) Line(format string, args ...any) {
	fmt.Fprintf(that.out, format+"\n", args...)
}

// Error - prints one formatted error line.
func (that *Printer) Error(format string, args ...any) {
	fmt.Fprintln(that.out, that.fail.Render(fmt.Sprintf(format, args...)))
}

// Prompt - prints a prompt without a trailing newline.
func (that *Printer) Prompt(text string) {
	fmt.Fprint(that.out, that.prompt.Render(text))
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
