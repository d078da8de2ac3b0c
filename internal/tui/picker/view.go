package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderResult(),
		m.renderResistor(),
		m.renderBands(),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Ω Resistor Calculator")
	subtitle := subtitleStyle.Render(fmt.Sprintf("IEC 60062 • %d bands", m.BandCount()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", subtitle)
}

func (m Model) renderResult() string {
	if m.err != nil {
		return cardStyle.Render(errorStyle.Render(m.err.Error()))
	}

	r := m.report
	value := lipgloss.JoinHorizontal(lipgloss.Bottom,
		valueStyle.Render(r.Resistance.Value), " ", unitStyle.Render(r.Resistance.Unit))

	items := []string{item("Tolerance", r.Tolerance)}
	if r.TempCoeff != "" {
		items = append(items, item("Temp. Coeff.", r.TempCoeff))
	}
	items = append(items, item("Range", r.Range))

	details := strings.Join(items, "    ")
	body := lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render("RESISTANCE VALUE"), value, "", details)
	return cardStyle.Render(body)
}

func item(label, value string) string {
	return labelStyle.Render(strings.ToUpper(label)+" ") + toleranceStyle.Render(value)
}

func (m Model) renderResistor() string {
	lead := lipgloss.NewStyle().Foreground(leadColor).Render("━━━━")
	body := lipgloss.NewStyle().Background(bodyColor)

	var b strings.Builder
	b.WriteString(body.Render(" "))
	for _, name := range m.selection {
		c, err := resistor.Lookup(name)
		if err != nil {
			b.WriteString(body.Render("  "))
			continue
		}
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex)).Render("  "))
		b.WriteString(body.Render(" "))
	}

	return lipgloss.NewStyle().MarginTop(1).MarginBottom(1).PaddingLeft(2).
		Render(lead + b.String() + lead)
}

func (m Model) renderBands() string {
	rows := make([]string, len(m.layout))
	for i, role := range m.layout {
		label := bandLabelStyle.Render(fmt.Sprintf("%d %s", i+1, role.Name))
		row := label + m.renderSwatches(role, m.selection[i])
		if i == m.cursor {
			rows[i] = selectedRowStyle.Render(row)
		} else {
			rows[i] = rowStyle.Render(row)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) renderSwatches(role resistor.Role, selected resistor.ColorName) string {
	colors := resistor.Colors()
	parts := make([]string, len(colors))
	for i, c := range colors {
		label := c.Abbrev()
		switch {
		case c.Name == selected:
			parts[i] = swatchStyle(c).Bold(true).Underline(true).Render("[" + label + "]")
		case resistor.IsValidFor(role, c.Name):
			parts[i] = swatchStyle(c).Render(" " + label + " ")
		default:
			parts[i] = disabledSwatchStyle.Render(" " + strings.Repeat("·", len(label)) + " ")
		}
	}
	return strings.Join(parts, "")
}
