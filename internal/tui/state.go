package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState is the screen the page is showing.
type ViewState int

const (
	// ViewStateList shows the roster table.
	ViewStateList ViewState = iota
	// ViewStateDetail shows the card of the selected employee.
	ViewStateDetail
	// ViewStateQuitting is set once the program has been asked to exit.
	ViewStateQuitting
)

// String returns the state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Layout defaults used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 30
	minHeight     = 3
)

const (
	defaultLoadingMessage = "Loading employees..."
	nextPageMessage       = "Loading page %d..."
)

// LoadingState is the spinner shown while a page is in flight.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a LoadingState with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ActiveStyle
	return &LoadingState{spinner: s, message: defaultLoadingMessage}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on its tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// SetMessage replaces the text shown next to the spinner.
func (l *LoadingState) SetMessage(msg string) {
	l.message = msg
}

// Message returns the text shown next to the spinner.
func (l *LoadingState) Message() string {
	return l.message
}

// RenderLoading returns the one-line loading indicator. A nil state renders
// plain text.
func RenderLoading(loading *LoadingState) string {
	if loading == nil {
		return "Loading..."
	}
	return fmt.Sprintf(" %s %s", loading.spinner.View(), loading.Message())
}
