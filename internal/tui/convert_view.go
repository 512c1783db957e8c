package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tokenconv/tokenconv/internal/catalog"
	"github.com/tokenconv/tokenconv/internal/convert"
)

// Palette shared by the conversion view.
var (
	ColorAccent  = lipgloss.Color("39")
	ColorMuted   = lipgloss.Color("241")
	ColorWarning = lipgloss.Color("208")
	ColorError   = lipgloss.Color("196")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	focusedPanelStyle = panelStyle.
				BorderForeground(ColorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	rateStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// View renders the conversion view.
func (m ConvertModel) View() string {
	if m.state == ConvertStateQuitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("tokenconv"))
	if m.state == ConvertStateLoading {
		b.WriteString(mutedStyle.Render("  loading prices…"))
	}
	b.WriteString("\n")

	if m.banner != "" {
		b.WriteString(bannerStyle.Render(m.banner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	left := m.renderPanel(m.LeftToken(), m.leftInput.View(), m.focus == SideLeft)
	right := m.renderPanel(m.RightToken(), m.rightInput.View(), m.focus == SideRight)
	arrow := lipgloss.NewStyle().Padding(2, 1).Render("⇄")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, left, arrow, right))
	b.WriteString("\n")

	b.WriteString(m.renderRate())
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("tab focus · ↑/↓ token · s swap · q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderPanel draws one side: token identity, its unit price, and the amount.
func (m ConvertModel) renderPanel(token catalog.Token, amount string, focused bool) string {
	header := fmt.Sprintf("%s %s", token.Icon, token.Symbol)
	price := mutedStyle.Render(fmt.Sprintf("$%s", convert.FormatTrimmed(token.Price)))

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		mutedStyle.Render(token.Name),
		price,
		"",
		amount,
	)

	if focused {
		return focusedPanelStyle.Render(body)
	}
	return panelStyle.Render(body)
}

// renderRate shows the effective unit rate for the selected pair.
func (m ConvertModel) renderRate() string {
	left, right := m.LeftToken(), m.RightToken()
	rate := convert.Convert(1, left, right)
	return rateStyle.Render(fmt.Sprintf(
		"1 %s = %s %s", left.Symbol, convert.Format(rate), right.Symbol,
	))
}
