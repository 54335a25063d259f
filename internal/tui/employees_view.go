package tui

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/rshade/roster/internal/employee"
)

// Table column widths.
const (
	colWidthID          = 5
	colWidthName        = 22
	colWidthDemography  = 12
	colWidthImage       = 14
	colWidthDesignation = 26
	colWidthLocation    = 26

	truncateSuffix = "…"
	emptyCell      = "-"
)

// Column is one column of the roster table.
type Column struct {
	Title string
	Width int
	// Sort is the sort field this column selects, empty if not sortable.
	Sort employee.SortField
}

// Columns returns the table layout in display order.
func Columns() []Column {
	return []Column{
		{Title: "ID", Width: colWidthID, Sort: employee.SortByID},
		{Title: "Full Name", Width: colWidthName, Sort: employee.SortByFullName},
		{Title: "Demography", Width: colWidthDemography, Sort: employee.SortByDemography},
		{Title: "Image", Width: colWidthImage},
		{Title: "Designation", Width: colWidthDesignation},
		{Title: "Location", Width: colWidthLocation},
	}
}

// HeaderTitles returns the column titles, marking the active sort column
// with its direction arrow.
func HeaderTitles(s employee.Sort) []string {
	cols := Columns()
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
		if c.Sort != "" && c.Sort == s.Field {
			titles[i] += " " + s.Direction.Arrow()
		}
	}
	return titles
}

// RowCells returns the cell values for r in column order.
func RowCells(r employee.Record) []string {
	return []string{
		strconv.Itoa(r.ID),
		r.FullName,
		r.Demography,
		imageCell(r.ImageURL),
		r.Designation,
		r.Location,
	}
}

// imageCell shows the file name of the avatar URL.
func imageCell(url string) string {
	if url == "" {
		return emptyCell
	}
	return path.Base(url)
}

func formatCells(cells []string) string {
	cols := Columns()
	parts := make([]string, len(cols))
	for i, c := range cols {
		v := emptyCell
		if i < len(cells) && strings.TrimSpace(cells[i]) != "" {
			v = cells[i]
		}
		parts[i] = fmt.Sprintf("%-*s", c.Width, truncate(v, c.Width))
	}
	return strings.Join(parts, "  ")
}

// truncate shortens s to width runes, marking the cut.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + truncateSuffix
}

// renderHeader renders the table header line.
func renderHeader(s employee.Sort) string {
	return formatCells(HeaderTitles(s))
}

// renderEmployee formats a single record for list display.
func renderEmployee(r employee.Record, selected bool) string {
	row := formatCells(RowCells(r))
	if selected {
		return TableSelectedStyle.Render(row)
	}
	return row
}

// RenderTable renders records as a static table. styled adds lipgloss
// header styling; otherwise the output is plain text. A positive width cuts
// every line to that many columns.
func RenderTable(records []employee.Record, s employee.Sort, styled bool, width int) string {
	fit := func(line string) string {
		if width > 0 {
			return truncate(line, width)
		}
		return line
	}

	var sb strings.Builder
	header := fit(renderHeader(s))
	if styled {
		sb.WriteString(TableHeaderStyle.Render(header))
	} else {
		sb.WriteString(header)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", len([]rune(header))))
	}
	sb.WriteString("\n")

	for _, r := range records {
		sb.WriteString(fit(formatCells(RowCells(r))))
		sb.WriteString("\n")
	}
	return sb.String()
}

// filterLabel renders a selector value, "All" when unset.
func filterLabel(v string) string {
	if v == "" {
		return "All"
	}
	return v
}

// RenderFilterBar renders the two selectors and the active sort.
func RenderFilterBar(f employee.Filter, s employee.Sort) string {
	gender := ""
	if f.Gender != employee.GenderAny {
		gender = f.Gender.Label()
	}
	return LabelStyle.Render("Country: ") + ValueStyle.Render(filterLabel(f.Country)) +
		LabelStyle.Render("   Gender: ") + ValueStyle.Render(filterLabel(gender)) +
		LabelStyle.Render("   Sort: ") + ValueStyle.Render(string(s.Field)+" "+s.Direction.Arrow())
}
