package detail

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/roster/internal/employee"
)

const (
	borderPadding = 2
	minCardWidth  = 30
	labelWidth    = 14
	emptyValue    = "-"
)

//nolint:gochecknoglobals // Read-only styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(labelWidth)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// Field is one labelled line of the card.
type Field struct {
	Label string
	Value string
}

// Fields returns the card lines for r in display order.
func Fields(r employee.Record) []Field {
	return []Field{
		{"ID", strconv.Itoa(r.ID)},
		{"Full Name", orDash(r.FullName)},
		{"Gender", genderValue(r.Gender)},
		{"Age", strconv.Itoa(r.Age)},
		{"Demography", orDash(r.Demography)},
		{"Designation", orDash(r.Designation)},
		{"Location", orDash(r.Location)},
		{"Country", orDash(r.Country)},
		{"Image", orDash(r.ImageURL)},
	}
}

// RenderEmployee renders a boxed card for r, at most width columns wide.
func RenderEmployee(r employee.Record, width int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("EMPLOYEE DETAIL"))
	content.WriteString("\n\n")

	for _, f := range Fields(r) {
		content.WriteString(labelStyle.Render(f.Label + ":"))
		content.WriteString(valueStyle.Render(f.Value))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(hintStyle.Render("[Esc] Back to list  [q] Quit"))

	return boxStyle.Width(max(width, minCardWidth) - borderPadding).Render(content.String())
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyValue
	}
	return s
}

// genderValue shows unrecognized genders as received.
func genderValue(g employee.Gender) string {
	switch g {
	case employee.GenderMale, employee.GenderFemale:
		return g.Label()
	default:
		return orDash(string(g))
	}
}
