package roster

import (
	"context"
	"errors"

	"github.com/rshade/roster/internal/employee"
	"github.com/rshade/roster/internal/logging"
)

// Fetcher loads one page of records. An empty page means the listing ended.
type Fetcher interface {
	FetchRecords(ctx context.Context, pageIndex int) ([]employee.Record, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, pageIndex int) ([]employee.Record, error)

// FetchRecords calls f.
func (f FetcherFunc) FetchRecords(ctx context.Context, pageIndex int) ([]employee.Record, error) {
	return f(ctx, pageIndex)
}

// Execute performs req and converts the outcome into the event to feed back
// into Reduce. Failures are logged here and never returned as errors.
func Execute(ctx context.Context, f Fetcher, req Request) Event {
	records, err := f.FetchRecords(ctx, req.PageIndex)
	if err != nil {
		log := logging.FromContext(ctx)
		ev := log.Warn()
		if errors.Is(err, context.Canceled) {
			ev = log.Debug()
		}
		ev.Str("component", "roster").
			Str("operation", "fetch").
			Uint64("epoch", req.Epoch).
			Int("page", req.PageIndex).
			Str("filter", req.Filter.String()).
			Err(err).
			Msg("page fetch failed, store left unchanged")
		return PageFailed{Epoch: req.Epoch, PageIndex: req.PageIndex, Err: err}
	}
	return PageLoaded{Epoch: req.Epoch, PageIndex: req.PageIndex, Records: records}
}

// Session drives Reduce synchronously against a Fetcher. It suits callers
// without an event loop, such as the non-interactive list command.
type Session struct {
	state   State
	fetcher Fetcher
}

// NewSession returns a session starting from state.
func NewSession(state State, f Fetcher) *Session {
	return &Session{state: state, fetcher: f}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Dispatch reduces ev and, if that issues a request, performs it and reduces
// the outcome. It reports whether a request was issued.
func (s *Session) Dispatch(ctx context.Context, ev Event) bool {
	next, req := Reduce(s.state, ev)
	s.state = next
	if req == nil {
		return false
	}
	outcome := Execute(ctx, s.fetcher, *req)
	s.state, _ = Reduce(s.state, outcome)
	logging.FromContext(ctx).Debug().
		Str("component", "roster").
		Str("operation", "dispatch").
		Int("page", req.PageIndex).
		Int("displayed", s.state.Len()).
		Bool("has_more", s.state.Cursor.HasMore).
		Str("phase", s.state.Phase.String()).
		Msg("page reconciled")
	return true
}

// LoadPages requests pages until maxPages requests have been issued, the
// listing is exhausted, a request fails, or ctx is done. maxPages <= 0 means
// no page limit. It returns the number of requests issued.
func (s *Session) LoadPages(ctx context.Context, maxPages int) int {
	issued := 0
	for maxPages <= 0 || issued < maxPages {
		if ctx.Err() != nil {
			break
		}
		if !s.Dispatch(ctx, MoreRequested{}) {
			break
		}
		issued++
		if s.state.Phase == PhaseError {
			break
		}
	}
	return issued
}
