package catalog

import (
	"sync"
	"time"

	"serveease/models"
)

// DefaultQuietWindow is how long consecutive Schedule calls must stay
// quiet before the underlying fetch is issued.
const DefaultQuietWindow = 400 * time.Millisecond

// FetchFunc performs the underlying catalog query for the guard.
type FetchFunc func(spec models.QuerySpec) (models.QueryResult, error)

// StaleRequestGuard coalesces rapid query changes and guarantees that
// only the most recently issued request's completion reaches the apply
// or fail callback. Completions of superseded requests are discarded
// silently, including failures. Search input goes through Schedule
// (debounced); filter changes go through ScheduleNow (immediate) but
// share the same staleness domain, since a filter change can race an
// in-flight debounced search.
type StaleRequestGuard struct {
	fetch FetchFunc
	apply func(models.QueryResult)
	fail  func(error)
	quiet time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending uint64
	latest  uint64
}

// GuardOption configures a StaleRequestGuard.
type GuardOption func(*StaleRequestGuard)

// WithQuietWindow overrides the debounce window. Tests use short windows.
func WithQuietWindow(d time.Duration) GuardOption {
	return func(g *StaleRequestGuard) { g.quiet = d }
}

// NewStaleRequestGuard builds a guard around fetch. apply receives the
// result of the latest request; fail receives its error. Callbacks run
// on the guard's goroutine while the guard lock is held, so they must
// not call back into the guard.
func NewStaleRequestGuard(fetch FetchFunc, apply func(models.QueryResult), fail func(error), opts ...GuardOption) *StaleRequestGuard {
	g := &StaleRequestGuard{
		fetch: fetch,
		apply: apply,
		fail:  fail,
		quiet: DefaultQuietWindow,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Schedule queues spec behind the quiet window. A call before the window
// elapses replaces the pending spec and restarts the window.
//
// timer.Stop alone cannot cancel a timer whose callback has fired but
// not yet run, so each pending request also carries a generation; the
// callback re-checks it under the lock and aborts when superseded.
func (g *StaleRequestGuard) Schedule(spec models.QuerySpec) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timer != nil {
		g.timer.Stop()
	}
	g.pending++
	gen := g.pending
	g.timer = time.AfterFunc(g.quiet, func() {
		g.mu.Lock()
		if gen != g.pending {
			g.mu.Unlock()
			return
		}
		g.timer = nil
		token := g.issueLocked()
		g.mu.Unlock()
		g.run(token, spec)
	})
}

// ScheduleNow issues spec immediately, cancelling any pending debounced
// request and marking all in-flight requests stale.
func (g *StaleRequestGuard) ScheduleNow(spec models.QuerySpec) {
	g.mu.Lock()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.pending++
	token := g.issueLocked()
	g.mu.Unlock()
	go g.run(token, spec)
}

// Stop cancels any pending debounced request. In-flight fetches are not
// aborted; their completions simply become stale.
func (g *StaleRequestGuard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.pending++
	g.latest++
}

func (g *StaleRequestGuard) issueLocked() uint64 {
	g.latest++
	return g.latest
}

func (g *StaleRequestGuard) run(token uint64, spec models.QuerySpec) {
	result, err := g.fetch(spec)

	// The staleness check and the callback stay under one critical
	// section, otherwise a newer completion could slip between them.
	g.mu.Lock()
	defer g.mu.Unlock()
	if token != g.latest {
		return
	}
	if err != nil {
		if g.fail != nil {
			g.fail(err)
		}
		return
	}
	if g.apply != nil {
		g.apply(result)
	}
}
