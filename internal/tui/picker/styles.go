package picker

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

var (
	accentColor = lipgloss.Color("#06b6d4")
	amberColor  = lipgloss.Color("#f59e0b")
	mutedColor  = lipgloss.Color("#64748b")
	borderColor = lipgloss.Color("#2a3040")
	bodyColor   = lipgloss.Color("#C4A87A")
	leadColor   = lipgloss.Color("#9CA3AF")
	errorColor  = lipgloss.Color("196")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 2).
			MarginTop(1)

	labelStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	valueStyle     = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	unitStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	toleranceStyle = lipgloss.NewStyle().Bold(true).Foreground(amberColor)

	rowStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedRowStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(accentColor)
	bandLabelStyle = lipgloss.NewStyle().Width(16).Foreground(lipgloss.Color("#94a3b8"))

	disabledSwatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3a4050")).Padding(0, 1)
	errorStyle          = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
)

// swatchStyle paints a color swatch with a label color that stays
// readable on the swatch background.
func swatchStyle(c resistor.Color) lipgloss.Style {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex)).
		Foreground(labelColorFor(c.Hex)).
		Padding(0, 1)
	if c.Metallic() {
		style = style.Italic(true)
	}
	return style
}

func labelColorFor(hex string) lipgloss.Color {
	col, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color("#f0f4f8")
	}
	l, _, _ := col.Lab()
	if l > 0.6 {
		return lipgloss.Color("#0a0c0f")
	}
	return lipgloss.Color("#f0f4f8")
}
