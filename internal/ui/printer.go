package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes themed output. Regular lines go to out, failures to errOut.
type Printer struct {
	out, errOut io.Writer
	r           *lipgloss.Renderer
	theme       Theme
}

// NewPrinter returns a Printer whose color profile is detected from out.
func NewPrinter(out, errOut io.Writer, themeName string) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{out: out, errOut: errOut, r: r, theme: ThemeNamed(r, themeName)}
}

func (p *Printer) Theme() Theme                  { return p.theme }
func (p *Printer) Renderer() *lipgloss.Renderer { return p.r }
func (p *Printer) Out() io.Writer               { return p.out }

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.out, p.theme.Success.Render(p.theme.SymOK+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.errOut, p.theme.Error.Render(p.theme.SymFail+" "+msg))
}

// Section prints a banner separating the steps of a demo.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.out, "\n%s\n", p.theme.Title.Render("━━━ "+title+" ━━━"))
}

func (p *Printer) Println(a ...any) { fmt.Fprintln(p.out, a...) }

func (p *Printer) Printf(format string, a ...any) { fmt.Fprintf(p.out, format, a...) }

func (p *Printer) Muted(msg string) { fmt.Fprintln(p.out, p.theme.Muted.Render(msg)) }

// Hint prints a muted line on the error stream.
func (p *Printer) Hint(msg string) { fmt.Fprintln(p.errOut, p.theme.Muted.Render(msg)) }
