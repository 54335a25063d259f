package roster

import (
	"github.com/rshade/roster/internal/employee"
)

// Request asks the caller to fetch one page.
type Request struct {
	Epoch     uint64
	PageIndex int
	Filter    employee.Filter
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// MoreRequested is sent by the scroll driver when more content is needed.
type MoreRequested struct{}

// FilterChanged replaces the filter and restarts pagination.
type FilterChanged struct {
	Filter employee.Filter
}

// SortSelected selects a sort column.
type SortSelected struct {
	Field employee.SortField
}

// PageLoaded delivers the raw page fetched for a Request.
type PageLoaded struct {
	Epoch     uint64
	PageIndex int
	Records   []employee.Record
}

// PageFailed reports that the Request for Epoch failed.
type PageFailed struct {
	Epoch     uint64
	PageIndex int
	Err       error
}

func (MoreRequested) event() {}
func (FilterChanged) event() {}
func (SortSelected) event()  {}
func (PageLoaded) event()    {}
func (PageFailed) event()    {}

// Reduce applies ev to s. The returned Request is non-nil only when a page
// must be fetched. s is not modified; the returned State never shares a
// backing array with s.Store that a later append could overwrite.
func Reduce(s State, ev Event) (State, *Request) {
	switch e := ev.(type) {
	case MoreRequested:
		return requestMore(s)
	case FilterChanged:
		return changeFilter(s, e.Filter)
	case SortSelected:
		s.Sort = s.Sort.Select(e.Field)
		return s, nil
	case PageLoaded:
		return loadPage(s, e), nil
	case PageFailed:
		return failPage(s, e), nil
	default:
		return s, nil
	}
}

// IsStale reports whether an outcome for epoch no longer applies to s.
func IsStale(s State, epoch uint64) bool {
	return epoch != s.Epoch
}

func requestMore(s State) (State, *Request) {
	if !s.CanFetch() {
		return s, nil
	}
	s.InFlight = true
	s.Phase = PhaseFetching
	return s, &Request{Epoch: s.Epoch, PageIndex: s.Cursor.PageIndex, Filter: s.Filter}
}

func changeFilter(s State, f employee.Filter) (State, *Request) {
	s.Filter = f
	s.Store = nil
	s.Cursor = Cursor{PageIndex: 0, HasMore: true}
	s.Epoch++
	s.InFlight = false
	s.LastErr = nil
	s.Phase = PhaseIdle
	return requestMore(s)
}

func loadPage(s State, e PageLoaded) State {
	if IsStale(s, e.Epoch) || !s.InFlight || e.PageIndex != s.Cursor.PageIndex {
		return s
	}

	kept := s.Filter.Apply(e.Records)
	if e.PageIndex == 0 {
		s.Store = kept
	} else {
		store := make([]employee.Record, 0, len(s.Store)+len(kept))
		store = append(store, s.Store...)
		s.Store = append(store, kept...)
	}

	s.Cursor.HasMore = len(e.Records) > 0
	if s.Cursor.HasMore {
		s.Cursor.PageIndex++
	}
	s.InFlight = false
	s.LastErr = nil
	s.Phase = PhaseIdle
	return s
}

func failPage(s State, e PageFailed) State {
	if IsStale(s, e.Epoch) || !s.InFlight {
		return s
	}
	s.InFlight = false
	s.LastErr = e.Err
	s.Phase = PhaseError
	return s
}
