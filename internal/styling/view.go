package styling

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box holds the resolved attributes of one square.
type Box struct {
	Background  lipgloss.Color
	BorderColor lipgloss.Color
	BorderWidth int
}

// Attributes is what a view captured from its style.
type Attributes struct {
	Outer, Inner Box
	Rounded      bool
}

// Resolve reads every attribute of s.
func Resolve(s SquareStyle) Attributes {
	return Attributes{
		Outer: Box{
			Background:  s.OuterBackground(),
			BorderColor: s.OuterBorderColor(),
			BorderWidth: s.OuterBorderWidth(),
		},
		Inner: Box{
			Background:  s.InnerBackground(),
			BorderColor: s.InnerBorderColor(),
			BorderWidth: s.InnerBorderWidth(),
		},
		Rounded: s.Rounded(),
	}
}

// SquareInSquare draws an inner square centred in an outer one. Sizes are
// in terminal cells and exclude borders.
type SquareInSquare struct {
	Width, Height int
	Inset         int
	attrs         Attributes
}

// NewSquareInSquare returns an unstyled view; call Configure before Render.
func NewSquareInSquare(width, height, inset int) *SquareInSquare {
	return &SquareInSquare{Width: width, Height: height, Inset: inset}
}

// Configure applies s to the view.
func (v *SquareInSquare) Configure(s SquareStyle) {
	v.attrs = Resolve(s)
}

func (v *SquareInSquare) Attributes() Attributes { return v.attrs }

// Render draws the view with r.
func (v *SquareInSquare) Render(r *lipgloss.Renderer) string {
	innerW := max(v.Width-2*v.Inset-2*borderCells(v.attrs.Inner), 1)
	innerH := max(v.Height-2*v.Inset-2*borderCells(v.attrs.Inner), 1)

	inner := v.boxStyle(r, v.attrs.Inner).
		Width(innerW).
		Height(innerH).
		Render(strings.Repeat(" ", innerW))

	return v.boxStyle(r, v.attrs.Outer).
		Width(v.Width).
		Height(v.Height).
		Padding(v.Inset, v.Inset).
		Render(inner)
}

func (v *SquareInSquare) boxStyle(r *lipgloss.Renderer, b Box) lipgloss.Style {
	st := r.NewStyle().Background(b.Background)
	if b.BorderWidth <= 0 {
		return st
	}
	return st.Border(v.border(b.BorderWidth)).BorderForeground(b.BorderColor)
}

func (v *SquareInSquare) border(width int) lipgloss.Border {
	switch {
	case width == 1 && v.attrs.Rounded:
		return lipgloss.RoundedBorder()
	case width == 1:
		return lipgloss.NormalBorder()
	case width == 2:
		return lipgloss.ThickBorder()
	}
	return lipgloss.DoubleBorder()
}

func borderCells(b Box) int {
	if b.BorderWidth > 0 {
		return 1
	}
	return 0
}
