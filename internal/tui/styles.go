package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
//
//nolint:gochecknoglobals // Read-only styling constants.
var (
	ColorHeader   = lipgloss.Color("39")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("252")
	ColorSubtle   = lipgloss.Color("241")
	ColorBorder   = lipgloss.Color("240")
	ColorWarning  = lipgloss.Color("214")
	ColorSelectFg = lipgloss.Color("229")
	ColorSelectBg = lipgloss.Color("57")
	ColorActive   = lipgloss.Color("86")
)

// Shared styles.
//
//nolint:gochecknoglobals // Read-only styling constants.
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	ActiveStyle  = lipgloss.NewStyle().Foreground(ColorActive).Bold(true)
	SubtleStyle  = lipgloss.NewStyle().Foreground(ColorSubtle)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorLabel).Italic(true)

	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(ColorBorder).BorderBottom(true)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorSelectFg).Background(ColorSelectBg)
)
