// Package roster reconciles incremental pagination with client-side filtering
// and sorting.
//
// State is a plain value. Reduce applies one Event and returns the next State
// plus, when a page must be fetched, the Request to issue. The caller performs
// the request and feeds the outcome back as PageLoaded or PageFailed. Every
// Request carries the filter epoch it was issued under; outcomes from an older
// epoch are discarded without touching the store.
package roster

import (
	"github.com/rshade/roster/internal/employee"
)

// Phase is the fetch lifecycle position.
type Phase int

const (
	// PhaseIdle means no request is outstanding.
	PhaseIdle Phase = iota
	// PhaseFetching means exactly one request is outstanding.
	PhaseFetching
	// PhaseError means the last request failed; it behaves like Idle.
	PhaseError
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Cursor is the pagination position.
type Cursor struct {
	PageIndex int  `json:"pageIndex"`
	HasMore   bool `json:"hasMore"`
}

// State is the whole page state.
type State struct {
	// Store holds accumulated records in fetch order. It is append-only within
	// an epoch and is never sorted in place.
	Store  []employee.Record
	Filter employee.Filter
	Sort   employee.Sort
	Cursor Cursor
	// Epoch increments on every filter change.
	Epoch    uint64
	InFlight bool
	Phase    Phase
	// LastErr is the error of the most recent failed request in this epoch.
	LastErr error
}

// New returns the initial state: empty store, cursor (0, true), nothing in flight.
func New(filter employee.Filter, sort employee.Sort) State {
	if sort.Field == "" {
		sort = employee.DefaultSort()
	}
	return State{
		Filter: filter,
		Sort:   sort,
		Cursor: Cursor{PageIndex: 0, HasMore: true},
		Phase:  PhaseIdle,
	}
}

// Displayed derives the displayed sequence from the store.
func (s State) Displayed() []employee.Record {
	return employee.View(s.Store, s.Filter, s.Sort)
}

// Len is the length of the displayed sequence.
func (s State) Len() int {
	n := 0
	for _, r := range s.Store {
		if s.Filter.Matches(r) {
			n++
		}
	}
	return n
}

// HasMore reports whether further pages may exist.
func (s State) HasMore() bool {
	return s.Cursor.HasMore
}

// Loading reports whether a request is outstanding.
func (s State) Loading() bool {
	return s.InFlight
}

// Exhausted reports whether the listing has ended for the current filter.
func (s State) Exhausted() bool {
	return !s.Cursor.HasMore
}

// CanFetch reports whether a MoreRequested event would issue a request.
func (s State) CanFetch() bool {
	return !s.InFlight && s.Cursor.HasMore
}
