package catalog

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"serveease/models"
)

// guardHarness collects applied results and surfaced errors.
type guardHarness struct {
	mu      sync.Mutex
	applied []models.QueryResult
	failed  []error
}

func (h *guardHarness) apply(r models.QueryResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.applied = append(h.applied, r)
}

func (h *guardHarness) fail(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failed = append(h.failed, err)
}

func (h *guardHarness) snapshot() ([]models.QueryResult, []error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.QueryResult{}, h.applied...), append([]error{}, h.failed...)
}

func specWithSearch(search string) models.QuerySpec {
	spec := models.DefaultQuerySpec()
	spec.Search = search
	return spec
}

func TestGuardDiscardsOutOfOrderCompletion(t *testing.T) {
	release := map[string]chan struct{}{
		"a": make(chan struct{}),
		"b": make(chan struct{}),
	}
	done := map[string]chan struct{}{
		"a": make(chan struct{}),
		"b": make(chan struct{}),
	}

	fetch := func(spec models.QuerySpec) (models.QueryResult, error) {
		<-release[spec.Search]
		defer close(done[spec.Search])
		return models.QueryResult{Total: len(spec.Search), TotalPages: 1, Page: 1}, nil
	}

	h := &guardHarness{}
	g := NewStaleRequestGuard(fetch, h.apply, h.fail)

	// Issue A, then B while A is still in flight.
	g.ScheduleNow(specWithSearch("a"))
	g.ScheduleNow(specWithSearch("b"))

	// B resolves first, A resolves later.
	close(release["b"])
	<-done["b"]
	close(release["a"])
	<-done["a"]

	// run() finishes after done is closed; give the callbacks a beat.
	time.Sleep(50 * time.Millisecond)

	applied, failed := h.snapshot()
	if len(failed) != 0 {
		t.Fatalf("unexpected failures: %v", failed)
	}
	if len(applied) != 1 {
		t.Fatalf("applied %d results, want exactly 1", len(applied))
	}
	if applied[0].Total != len("b") {
		t.Errorf("applied stale result: %+v", applied[0])
	}
}

func TestGuardDebouncesRapidScheduling(t *testing.T) {
	var calls int32
	var lastSearch atomic.Value

	fetch := func(spec models.QuerySpec) (models.QueryResult, error) {
		atomic.AddInt32(&calls, 1)
		lastSearch.Store(spec.Search)
		return models.QueryResult{TotalPages: 1, Page: 1}, nil
	}

	h := &guardHarness{}
	g := NewStaleRequestGuard(fetch, h.apply, h.fail, WithQuietWindow(40*time.Millisecond))

	g.Schedule(specWithSearch("p"))
	g.Schedule(specWithSearch("pl"))
	g.Schedule(specWithSearch("plu"))
	g.Schedule(specWithSearch("plumber"))

	time.Sleep(200 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("fetch called %d times, want 1", got)
	}
	if got := lastSearch.Load(); got != "plumber" {
		t.Errorf("fetched %q, want the last scheduled spec", got)
	}
}

func TestGuardImmediateCancelsPendingDebounce(t *testing.T) {
	var calls int32
	var lastSearch atomic.Value

	fetch := func(spec models.QuerySpec) (models.QueryResult, error) {
		atomic.AddInt32(&calls, 1)
		lastSearch.Store(spec.Search)
		return models.QueryResult{TotalPages: 1, Page: 1}, nil
	}

	h := &guardHarness{}
	g := NewStaleRequestGuard(fetch, h.apply, h.fail, WithQuietWindow(60*time.Millisecond))

	g.Schedule(specWithSearch("slow search"))
	g.ScheduleNow(specWithSearch("filter change"))

	time.Sleep(250 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("fetch called %d times, want 1", got)
	}
	if got := lastSearch.Load(); got != "filter change" {
		t.Errorf("fetched %q, want the immediate spec", got)
	}
}

func TestGuardSurfacesLatestFailureOnly(t *testing.T) {
	fetchErr := errors.New("boom")
	release := make(chan struct{})
	failDone := make(chan struct{})

	fetch := func(spec models.QuerySpec) (models.QueryResult, error) {
		if spec.Search == "fails" {
			<-release
			defer close(failDone)
			return models.QueryResult{}, fetchErr
		}
		return models.QueryResult{Total: 42, TotalPages: 1, Page: 1}, nil
	}

	h := &guardHarness{}
	g := NewStaleRequestGuard(fetch, h.apply, h.fail)

	// The failing request is superseded before it completes.
	g.ScheduleNow(specWithSearch("fails"))
	g.ScheduleNow(specWithSearch("wins"))
	time.Sleep(50 * time.Millisecond)
	close(release)
	<-failDone
	time.Sleep(50 * time.Millisecond)

	applied, failed := h.snapshot()
	if len(failed) != 0 {
		t.Errorf("stale failure should be discarded, got %v", failed)
	}
	if len(applied) != 1 || applied[0].Total != 42 {
		t.Fatalf("want the winning result applied once, got %+v", applied)
	}

	// A failure on the latest request is surfaced.
	failDone = make(chan struct{})
	release = make(chan struct{})
	close(release)
	g.ScheduleNow(specWithSearch("fails"))
	<-failDone
	time.Sleep(50 * time.Millisecond)

	_, failed = h.snapshot()
	if len(failed) != 1 || !errors.Is(failed[0], fetchErr) {
		t.Errorf("latest failure should surface, got %v", failed)
	}
}

func TestGuardFiredDebounceCannotOvertakeImmediate(t *testing.T) {
	// A debounce timer can fire just before an immediate request takes
	// the lock; timer.Stop no longer cancels it at that point. The fired
	// callback must then abort instead of issuing a request that would
	// supersede the newer immediate one.
	fetch := func(spec models.QuerySpec) (models.QueryResult, error) {
		return models.QueryResult{Total: len(spec.Search), TotalPages: 1, Page: 1}, nil
	}

	for trial := 0; trial < 100; trial++ {
		h := &guardHarness{}
		g := NewStaleRequestGuard(fetch, h.apply, h.fail, WithQuietWindow(50*time.Microsecond))

		g.Schedule(specWithSearch("debounced"))
		// Land ScheduleNow right around the moment the timer fires.
		time.Sleep(50 * time.Microsecond)
		g.ScheduleNow(specWithSearch("now"))

		time.Sleep(5 * time.Millisecond)

		applied, failed := h.snapshot()
		if len(failed) != 0 {
			t.Fatalf("trial %d: unexpected failures: %v", trial, failed)
		}
		if len(applied) == 0 || applied[len(applied)-1].Total != len("now") {
			t.Fatalf("trial %d: applied %+v, want the immediate request to win", trial, applied)
		}
	}
}

func TestGuardStopCancelsPending(t *testing.T) {
	var calls int32
	fetch := func(spec models.QuerySpec) (models.QueryResult, error) {
		atomic.AddInt32(&calls, 1)
		return models.QueryResult{TotalPages: 1, Page: 1}, nil
	}

	g := NewStaleRequestGuard(fetch, nil, nil, WithQuietWindow(40*time.Millisecond))
	g.Schedule(specWithSearch("never"))
	g.Stop()

	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("fetch called %d times after Stop, want 0", got)
	}
}
