package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/roster/internal/employee"
	"github.com/rshade/roster/internal/logging"
	"github.com/rshade/roster/internal/roster"
	"github.com/rshade/roster/internal/tui/detail"
	listview "github.com/rshade/roster/internal/tui/list"
)

// chromeHeight is the number of rows used by everything except the table
// body: title, filter bar, blank, header and its border, footer, help.
const chromeHeight = 7

// DefaultScrollThreshold is how close to the last row the selection must be
// before the next page is requested.
const DefaultScrollThreshold = 3

// Footer messages.
const (
	endOfDataMessage = "No more employees to load."
	noMatchesMessage = "No employees match the current filters."
	fetchErrorLine   = "Could not load more employees. Press r or scroll to retry."
)

// PageFetchedMsg carries the outcome of a page request back into Update.
type PageFetchedMsg struct {
	Event roster.Event
}

// EmployeesOptions configures an EmployeesModel.
type EmployeesOptions struct {
	Filter          employee.Filter
	Sort            employee.Sort
	Countries       []string
	ScrollThreshold int
}

// EmployeesModel is the Bubble Tea model of the roster page. It owns the
// roster state, issues page fetches through the Fetcher and uses the
// virtual list as its scroll driver.
type EmployeesModel struct {
	ctx     context.Context
	fetcher roster.Fetcher

	state roster.State
	view  ViewState

	list    *listview.VirtualListModel[employee.Record]
	loading *LoadingState
	keys    KeyMap
	help    help.Model

	countries []string
	threshold int
	width     int
	height    int

	// cancel aborts the outstanding request, if any.
	cancel context.CancelFunc
}

// NewEmployeesModel creates the page model. Nothing is fetched until Init.
func NewEmployeesModel(ctx context.Context, fetcher roster.Fetcher, opts EmployeesOptions) *EmployeesModel {
	countries := opts.Countries
	if len(countries) == 0 {
		countries = employee.DefaultCountries
	}
	threshold := opts.ScrollThreshold
	if threshold < 0 {
		threshold = DefaultScrollThreshold
	}

	m := &EmployeesModel{
		ctx:       ctx,
		fetcher:   fetcher,
		state:     roster.New(opts.Filter, opts.Sort),
		view:      ViewStateList,
		loading:   NewLoadingState(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		countries: countries,
		threshold: threshold,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.list = listview.NewVirtualListModel(m.state.Displayed(), m.listHeight(), m.width, renderEmployee)
	return m
}

// Init requests the first page.
func (m *EmployeesModel) Init() tea.Cmd {
	return m.driveScroll()
}

// Update handles messages and updates the model state.
func (m *EmployeesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(m.width, m.listHeight())
		return m, m.driveScroll()

	case PageFetchedMsg:
		return m, m.handlePage(msg.Event)

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		return m, m.loading.Update(msg)

	case tea.KeyMsg:
		switch m.view {
		case ViewStateList:
			return m, m.handleListKey(msg)
		case ViewStateDetail:
			return m, m.handleDetailKey(msg)
		case ViewStateQuitting:
			return m, nil
		}
	}
	return m, nil
}

func (m *EmployeesModel) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.SortID):
		return m.selectSort(employee.SortByID)
	case key.Matches(msg, m.keys.SortName):
		return m.selectSort(employee.SortByFullName)
	case key.Matches(msg, m.keys.SortDemography):
		return m.selectSort(employee.SortByDemography)
	case key.Matches(msg, m.keys.Country):
		f := m.state.Filter
		f.Country = employee.NextCountry(m.countries, f.Country)
		return m.changeFilter(f)
	case key.Matches(msg, m.keys.Gender):
		f := m.state.Filter
		f.Gender = employee.NextGender(f.Gender)
		return m.changeFilter(f)
	case key.Matches(msg, m.keys.Clear):
		if m.state.Filter.IsZero() {
			return nil
		}
		return m.changeFilter(employee.Filter{})
	case key.Matches(msg, m.keys.Retry):
		if m.state.Phase != roster.PhaseError {
			return nil
		}
		return m.dispatch(roster.MoreRequested{})
	case key.Matches(msg, m.keys.Open):
		if m.list.GetSelectedItem() != nil {
			m.view = ViewStateDetail
		}
		return nil
	}

	_, cmd := m.list.Update(msg)
	return tea.Batch(cmd, m.driveScroll())
}

func (m *EmployeesModel) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.view = ViewStateList
		return m.driveScroll()
	}
	return nil
}

func (m *EmployeesModel) quit() tea.Cmd {
	m.view = ViewStateQuitting
	m.cancelInFlight()
	return tea.Quit
}

func (m *EmployeesModel) selectSort(field employee.SortField) tea.Cmd {
	m.state, _ = roster.Reduce(m.state, roster.SortSelected{Field: field})
	m.list.SetItems(m.state.Displayed())
	return m.driveScroll()
}

func (m *EmployeesModel) changeFilter(f employee.Filter) tea.Cmd {
	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("operation", "change_filter").
		Str("filter", f.String()).
		Msg("filter changed, restarting pagination")
	cmd := m.dispatch(roster.FilterChanged{Filter: f})
	m.list.Reset(m.state.Displayed())
	return cmd
}

// handlePage reconciles a fetch outcome. Outcomes from an earlier filter
// epoch are dropped here before they reach the reducer.
func (m *EmployeesModel) handlePage(ev roster.Event) tea.Cmd {
	if epoch, ok := eventEpoch(ev); ok && roster.IsStale(m.state, epoch) {
		logging.FromContext(m.ctx).Debug().
			Str("component", "tui").
			Str("operation", "reconcile_page").
			Uint64("epoch", epoch).
			Uint64("current_epoch", m.state.Epoch).
			Msg("discarding stale page")
		return nil
	}

	m.state, _ = roster.Reduce(m.state, ev)
	m.list.SetItems(m.state.Displayed())

	// A failed page waits for the next scroll or an explicit retry.
	if m.state.Phase == roster.PhaseError {
		return nil
	}
	return m.driveScroll()
}

func eventEpoch(ev roster.Event) (uint64, bool) {
	switch e := ev.(type) {
	case roster.PageLoaded:
		return e.Epoch, true
	case roster.PageFailed:
		return e.Epoch, true
	default:
		return 0, false
	}
}

// driveScroll requests the next page when the selection nears the end of
// the rendered rows or the rows do not fill the viewport.
func (m *EmployeesModel) driveScroll() tea.Cmd {
	if m.view != ViewStateList || !m.state.CanFetch() {
		return nil
	}
	if m.list.FillsViewport() && !m.list.NearEnd(m.threshold) {
		return nil
	}
	return m.dispatch(roster.MoreRequested{})
}

// dispatch reduces ev and starts the fetch it issues, if any.
func (m *EmployeesModel) dispatch(ev roster.Event) tea.Cmd {
	next, req := roster.Reduce(m.state, ev)
	m.state = next
	if req == nil {
		return nil
	}
	m.loading.SetMessage(loadingMessage(req.PageIndex))
	return tea.Batch(m.loading.Init(), m.fetchCmd(*req))
}

// loadingMessage is the spinner text for a request of page pageIndex.
func loadingMessage(pageIndex int) string {
	if pageIndex == 0 {
		return defaultLoadingMessage
	}
	return fmt.Sprintf(nextPageMessage, pageIndex+1)
}

// fetchCmd performs req off the event loop. The previous request's context
// is cancelled first; its late outcome carries an old epoch and is dropped.
func (m *EmployeesModel) fetchCmd(req roster.Request) tea.Cmd {
	m.cancelInFlight()
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel

	fetcher := m.fetcher
	return func() tea.Msg {
		return PageFetchedMsg{Event: roster.Execute(ctx, fetcher, req)}
	}
}

func (m *EmployeesModel) cancelInFlight() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *EmployeesModel) listHeight() int {
	return max(m.height-chromeHeight, minHeight)
}

// State returns the current roster state.
func (m *EmployeesModel) State() roster.State {
	return m.state
}

// ViewState returns the current screen.
func (m *EmployeesModel) ViewState() ViewState {
	return m.view
}

// SelectedRecord returns the highlighted record, or nil when the table is
// empty.
func (m *EmployeesModel) SelectedRecord() *employee.Record {
	return m.list.GetSelectedItem()
}

// View renders the current screen.
func (m *EmployeesModel) View() string {
	switch m.view {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		if r := m.list.GetSelectedItem(); r != nil {
			return detail.RenderEmployee(*r, m.width)
		}
		return ""
	default:
		return m.renderListView()
	}
}

func (m *EmployeesModel) renderListView() string {
	title := HeaderStyle.Render("EMPLOYEES") + "  " + SubtleStyle.Render(m.statusLine())
	header := TableHeaderStyle.Render(renderHeader(m.state.Sort))

	body := m.list.View()
	if m.list.ItemCount() == 0 && !m.state.Loading() && m.state.Exhausted() {
		body = InfoStyle.Render(noMatchesMessage)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		RenderFilterBar(m.state.Filter, m.state.Sort),
		"",
		header,
		body,
		m.footerLine(),
		m.help.View(m.keys),
	)
}

func (m *EmployeesModel) statusLine() string {
	var sb strings.Builder
	sb.WriteString("Showing ")
	sb.WriteString(Plural(m.state.Len(), "employee"))
	sb.WriteString(" · pages loaded: ")
	sb.WriteString(FormatCount(m.state.Cursor.PageIndex))
	return sb.String()
}

// footerLine is the loading indicator, the end-of-data message or the
// error line, in that order of precedence.
func (m *EmployeesModel) footerLine() string {
	switch {
	case m.state.Loading():
		return RenderLoading(m.loading)
	case m.state.Phase == roster.PhaseError:
		return WarningStyle.Render(fetchErrorLine)
	case m.state.Exhausted():
		return InfoStyle.Render(endOfDataMessage)
	default:
		return ""
	}
}
