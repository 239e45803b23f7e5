package listview

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// State of a controller. Loaded and Errored both transition back to Loading
// on the next Load; no other states exist.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateErrored State = "errored"
)

// Fetcher retrieves the full raw collection for the bound resource.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Mutator performs a state-changing remote call for one record.
type Mutator func(ctx context.Context, action string, id int64, payload any) error

// Controller orchestrates fetch, filter, paginate and mutation for one
// resource bound at construction. It owns its raw collection, criteria and
// page state exclusively; concurrent access is serialized by a mutex.
type Controller[T any] struct {
	mu     sync.Mutex
	cfg    Config[T]
	fetch  Fetcher[T]
	mutate Mutator

	raw      []T
	criteria Criteria
	page     PageState
	state    State
	lastErr  string

	// Monotonic load sequence: a resolution older than the newest issued
	// Load is discarded so the latest request always wins.
	issued uint64
}

func New[T any](cfg Config[T], fetch Fetcher[T], mutate Mutator) *Controller[T] {
	return &Controller[T]{
		cfg:      cfg,
		fetch:    fetch,
		mutate:   mutate,
		criteria: NewCriteria(),
		page:     PageState{Index: 1, Size: DefaultPageSize},
		state:    StateIdle,
	}
}

// Load replaces the raw collection wholesale. On failure the previous
// collection is retained and the error recorded for display; the error is
// also returned so callers can surface it.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.state = StateLoading
	fetch := c.fetch
	c.mu.Unlock()

	recs, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.issued {
		// A newer load was issued while this one was in flight.
		log.Debug().Str("resource", c.cfg.Resource).Uint64("seq", seq).Msg("stale load discarded")
		return nil
	}
	if err != nil {
		c.state = StateErrored
		c.lastErr = err.Error()
		return err
	}
	c.raw = recs
	c.state = StateLoaded
	c.lastErr = ""
	return nil
}

// SetCriteria replaces the filter wholesale and resets the page index to 1.
func (c *Controller[T]) SetCriteria(cr Criteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = cr
	c.page.Index = 1
}

// PatchValue updates a single text/enum field and resets the page index to 1.
func (c *Controller[T]) PatchValue(field, v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.SetValue(field, v)
	c.page.Index = 1
}

// ResetCriteria clears every filter field and resets the page index to 1.
func (c *Controller[T]) ResetCriteria() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Reset()
	c.page.Index = 1
}

// SetPage moves the page cursor. Out-of-range indexes are tolerated by the
// paginator (empty slice), so only a floor of 1 is enforced here.
func (c *Controller[T]) SetPage(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 1 {
		index = 1
	}
	c.page.Index = index
}

// SetPageSize changes the page size and resets the page index to 1. Sizes
// outside the allowed set are ignored.
func (c *Controller[T]) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !ValidPageSize(size) {
		return
	}
	c.page.Size = size
	c.page.Index = 1
}

// Apply drives the controller from one request's worth of query state: a new
// criteria or page size resets the index to 1; the requested index is honored
// only when neither changed, so a filter edit can never leave the view on a
// now-out-of-range page.
func (c *Controller[T]) Apply(cr Criteria, index, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	reset := false
	if ValidPageSize(size) && size != c.page.Size {
		c.page.Size = size
		reset = true
	}
	if !c.criteria.Equal(cr) {
		c.criteria = cr
		reset = true
	}
	if reset {
		c.page.Index = 1
		return
	}
	if index >= 1 {
		c.page.Index = index
	}
}

// Mutate dispatches a state-changing call for one record. On success exactly
// one refetch follows; on failure the collection is left untouched and the
// error returned for the caller to surface.
func (c *Controller[T]) Mutate(ctx context.Context, action string, id int64, payload any) error {
	c.mu.Lock()
	mutate := c.mutate
	c.mu.Unlock()
	if mutate == nil {
		return fmt.Errorf("resource %s has no mutations", c.cfg.Resource)
	}
	if err := mutate(ctx, action, id, payload); err != nil {
		return err
	}
	return c.Load(ctx)
}

// Snapshot is the derived, read-only view of the controller: the filtered and
// paginated rows plus everything a pager needs to render.
type Snapshot[T any] struct {
	Rows        []T    `json:"rows"`
	Total       int    `json:"total"`
	TotalPages  int    `json:"totalPages"`
	PageIndex   int    `json:"page"`
	PageSize    int    `json:"pageSize"`
	PageNumbers []int  `json:"pageNumbers"`
	State       State  `json:"state"`
	Error       string `json:"error,omitempty"`
}

// Snapshot recomputes the view slice from the current raw collection,
// criteria and page state. It never mutates controller state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := c.cfg.Filter(c.criteria, c.raw)
	pg := Paginate(filtered, c.page.Index, c.page.Size)
	return Snapshot[T]{
		Rows:        pg.Items,
		Total:       pg.Total,
		TotalPages:  pg.TotalPages,
		PageIndex:   c.page.Index,
		PageSize:    c.page.Size,
		PageNumbers: PageNumbers(c.page.Index, pg.TotalPages),
		State:       c.state,
		Error:       c.lastErr,
	}
}

// Filtered returns the criteria-filtered collection without pagination, for
// derived footers such as column totals.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Filter(c.criteria, c.raw)
}

// State returns the current lifecycle state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
