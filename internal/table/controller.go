package table

import (
	"context"
	"sync"

	"github.com/danielolaszy/issuetable/internal/logging"
	"github.com/danielolaszy/issuetable/pkg/models"
)

// Fetcher performs one search for a page of issues. pageIndex is zero-based and
// order is "asc", "desc" or empty.
type Fetcher interface {
	GetRepoIssues(ctx context.Context, sort, order string, pageIndex, pageSize int) (*models.SearchResult, error)
}

// Snapshot is a consistent copy of the controller's render state.
type Snapshot struct {
	State      State
	Rows       []models.IssueRecord
	TotalCount int
	// Loading is true while the most recent fetch has not completed.
	Loading bool
	// Err is the failure of the most recent completed fetch, if any.
	Err error
	// Seq is the sequence number of the most recent fetch.
	Seq uint64
	// Version increases with every change to the snapshot. Consumers that may
	// receive snapshots out of order keep the highest version.
	Version uint64
}

// Option configures a Controller.
type Option func(*Controller)

// OnUpdate registers fn to be called with a fresh snapshot whenever a fetch starts
// or its result is applied. fn is called without the controller's lock held and
// may be called from several goroutines.
func OnUpdate(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.onUpdate = fn
	}
}

// Controller turns sort and page changes into searches and keeps the rows of the
// latest one. Each fetch gets a sequence number; a completion is applied only if
// it belongs to the most recently started fetch, so results of superseded fetches
// are dropped whatever order they arrive in. Superseded requests are not cancelled.
type Controller struct {
	fetcher  Fetcher
	onUpdate func(Snapshot)

	mu      sync.Mutex
	state   State
	rows    []models.IssueRecord
	total   int
	loading bool
	err     error
	seq     uint64
	version uint64

	inflight sync.WaitGroup
}

// NewController returns a controller starting from initial. No fetch is issued
// until Start, Run, SortChange or PageChange is called.
func NewController(fetcher Fetcher, initial State, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		state:   initial,
		rows:    []models.IssueRecord{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run issues the initial fetch and then one fetch per event received on sorts or
// pages. It returns when ctx is done or both channels are closed. Fetches are
// issued with ctx.
func (c *Controller) Run(ctx context.Context, sorts <-chan SortEvent, pages <-chan PageEvent) error {
	c.Start(ctx)

	for sorts != nil || pages != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-sorts:
			if !ok {
				sorts = nil
				continue
			}
			c.SortChange(ctx, ev)
		case ev, ok := <-pages:
			if !ok {
				pages = nil
				continue
			}
			c.PageChange(ctx, ev)
		}
	}
	return nil
}

// Start issues a fetch for the current state and returns its sequence number.
func (c *Controller) Start(ctx context.Context) uint64 {
	c.mu.Lock()
	return c.fetchLocked(ctx)
}

// SortChange applies a sort change, which resets the page index to zero, and
// issues a fetch for the new state.
func (c *Controller) SortChange(ctx context.Context, ev SortEvent) uint64 {
	c.mu.Lock()
	c.state = c.state.ApplySort(ev)
	return c.fetchLocked(ctx)
}

// PageChange applies a page change and issues a fetch for the new state.
func (c *Controller) PageChange(ctx context.Context, ev PageEvent) uint64 {
	c.mu.Lock()
	c.state = c.state.ApplyPage(ev)
	return c.fetchLocked(ctx)
}

// fetchLocked must be called with c.mu held; it releases it.
func (c *Controller) fetchLocked(ctx context.Context) uint64 {
	c.seq++
	seq := c.seq
	state := c.state
	c.loading = true
	c.version++
	snap := c.snapshotLocked()
	c.inflight.Add(1)
	c.mu.Unlock()

	logging.Debug("fetching issues",
		"seq", seq,
		"sort", state.Sort.Active,
		"order", state.Sort.Direction,
		"page_index", state.PageIndex,
		"page_size", state.PageSize)

	c.notify(snap)

	go func() {
		defer c.inflight.Done()
		result, err := c.fetcher.GetRepoIssues(ctx, state.Sort.Active, string(state.Sort.Direction), state.PageIndex, state.PageSize)
		c.complete(seq, result, err)
	}()

	return seq
}

func (c *Controller) complete(seq uint64, result *models.SearchResult, err error) {
	c.mu.Lock()
	if seq != c.seq {
		latest := c.seq
		c.mu.Unlock()
		logging.Debug("discarding superseded result", "seq", seq, "latest", latest)
		return
	}

	c.loading = false
	c.rows, c.total, c.err = applyResult(c.total, result, err)
	if err != nil {
		logging.Warn("issue fetch failed", "seq", seq, "error", err)
	}
	c.version++
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// Snapshot returns the current render state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Wait blocks until every fetch started so far has completed, applied or not.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) snapshotLocked() Snapshot {
	rows := make([]models.IssueRecord, len(c.rows))
	copy(rows, c.rows)
	return Snapshot{
		State:      c.state,
		Rows:       rows,
		TotalCount: c.total,
		Loading:    c.loading,
		Err:        c.err,
		Seq:        c.seq,
		Version:    c.version,
	}
}

func (c *Controller) notify(snap Snapshot) {
	if c.onUpdate != nil {
		c.onUpdate(snap)
	}
}
