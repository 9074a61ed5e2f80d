package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	BoxUnchecked, BoxChecked                      string
	SymOK, SymFail, SymPending                    string
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
}

var monoBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// ThemeNamed returns the theme called name ("classic", "neon" or "mono")
// with styles bound to r. Unknown names fall back to classic.
func ThemeNamed(r *lipgloss.Renderer, name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:    "neon",
			Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   r.NewStyle().Faint(true),
			Accent:  r.NewStyle().Foreground(lipgloss.Color("14")),
			Success: r.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: r.NewStyle().Foreground(lipgloss.Color("11")),

			BoxUnchecked: "◻", BoxChecked: "◼",
			SymOK: "✔", SymFail: "✖", SymPending: "•",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		plain := r.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymOK: "ok", SymFail: "x", SymPending: "-",
			Border:      monoBorder,
			BorderColor: lipgloss.NoColor{},
		}
	default: // classic
		return Theme{
			Name:    "classic",
			Title:   r.NewStyle().Bold(true),
			Muted:   r.NewStyle().Faint(true),
			Accent:  r.NewStyle().Foreground(lipgloss.Color("12")),
			Success: r.NewStyle().Foreground(lipgloss.Color("42")),
			Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: r.NewStyle().Foreground(lipgloss.Color("214")),

			BoxUnchecked: "☐", BoxChecked: "☑",
			SymOK: "✔", SymFail: "✖", SymPending: "•",
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.Color("8"),
		}
	}
}
