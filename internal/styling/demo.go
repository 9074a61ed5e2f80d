package styling

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/playgrounds/internal/ui"
)

// Demo renders every bundled style and notes which border attributes came
// from DefaultBorders.
func Demo(p *ui.Printer) error {
	defaults := Resolve(defaultsOnly{})

	for _, entry := range Catalog {
		p.Section(entry.Name)

		view := NewSquareInSquare(12, 6, 1)
		view.Configure(entry.Style)
		p.Println(view.Render(p.Renderer()))

		attrs := view.Attributes()
		p.Muted(describe("outer", attrs.Outer, defaults.Outer))
		p.Muted(describe("inner", attrs.Inner, defaults.Inner))
	}
	return nil
}

func describe(name string, got, def Box) string {
	origin := "override"
	if got.BorderColor == def.BorderColor && got.BorderWidth == def.BorderWidth {
		origin = "default"
	}
	return fmt.Sprintf("%s border: color=%s width=%d (%s)", name, got.BorderColor, got.BorderWidth, origin)
}

// defaultsOnly is DefaultBorders with blank backgrounds.
type defaultsOnly struct{ DefaultBorders }

func (defaultsOnly) OuterBackground() lipgloss.Color { return "" }
func (defaultsOnly) InnerBackground() lipgloss.Color { return "" }
