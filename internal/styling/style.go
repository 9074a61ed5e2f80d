// Package styling shows composition through interfaces and struct embedding.
//
// A SquareStyle describes how a square-in-square view looks. Concrete styles
// embed DefaultBorders to pick up the border attributes and only declare
// what differs, usually just the two backgrounds. Any embedded default can
// be shadowed by declaring the same method on the outer type.
package styling

import "github.com/charmbracelet/lipgloss"

// SquareStyle is the full set of attributes a SquareInSquare reads.
type SquareStyle interface {
	OuterBackground() lipgloss.Color
	OuterBorderColor() lipgloss.Color
	OuterBorderWidth() int

	InnerBackground() lipgloss.Color
	InnerBorderColor() lipgloss.Color
	InnerBorderWidth() int

	// Rounded selects rounded corners for width-1 borders.
	Rounded() bool
}

// DefaultBorders supplies every attribute of SquareStyle except the
// backgrounds.
type DefaultBorders struct{}

func (DefaultBorders) OuterBorderColor() lipgloss.Color { return lipgloss.Color("2") } // green
func (DefaultBorders) OuterBorderWidth() int            { return 1 }
func (DefaultBorders) InnerBorderColor() lipgloss.Color { return lipgloss.Color("3") } // yellow
func (DefaultBorders) InnerBorderWidth() int            { return 1 }
func (DefaultBorders) Rounded() bool                    { return false }

// PurpleInBlue only sets the backgrounds.
type PurpleInBlue struct{ DefaultBorders }

func (PurpleInBlue) OuterBackground() lipgloss.Color { return lipgloss.Color("4") }
func (PurpleInBlue) InnerBackground() lipgloss.Color { return lipgloss.Color("5") }

// Sunset overrides every border default.
type Sunset struct{ DefaultBorders }

func (Sunset) OuterBackground() lipgloss.Color  { return lipgloss.Color("208") }
func (Sunset) InnerBackground() lipgloss.Color  { return lipgloss.Color("160") }
func (Sunset) OuterBorderColor() lipgloss.Color { return lipgloss.Color("226") }
func (Sunset) OuterBorderWidth() int            { return 2 }
func (Sunset) InnerBorderColor() lipgloss.Color { return lipgloss.Color("52") }
func (Sunset) InnerBorderWidth() int            { return 3 }

// Bubble keeps the default colors but asks for rounded corners.
type Bubble struct{ DefaultBorders }

func (Bubble) OuterBackground() lipgloss.Color { return lipgloss.Color("6") }
func (Bubble) InnerBackground() lipgloss.Color { return lipgloss.Color("15") }
func (Bubble) Rounded() bool                   { return true }

// Frameless drops both borders.
type Frameless struct{ DefaultBorders }

func (Frameless) OuterBackground() lipgloss.Color { return lipgloss.Color("0") }
func (Frameless) InnerBackground() lipgloss.Color { return lipgloss.Color("7") }
func (Frameless) OuterBorderWidth() int           { return 0 }
func (Frameless) InnerBorderWidth() int           { return 0 }

// Catalog lists the bundled styles by name.
var Catalog = []struct {
	Name  string
	Style SquareStyle
}{
	{"purple-in-blue", PurpleInBlue{}},
	{"sunset", Sunset{}},
	{"bubble", Bubble{}},
	{"frameless", Frameless{}},
}
