// Package feed drives infinite scrolling over the garden. A Controller owns
// one query (page size plus optional author filter), stores its pages in a
// cache.Store and fetches the next page when a scroll event reports the
// list is nearly at its end.
package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/garden/internal/client/cache"
	"github.com/dmitrijs2005/garden/internal/client/models"
	"github.com/dmitrijs2005/garden/internal/common"
	"github.com/dmitrijs2005/garden/internal/logging"
	"github.com/dmitrijs2005/garden/internal/validation"
)

// State of the pagination state machine.
type State int

const (
	Idle State = iota
	Fetching
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ScrollThreshold is the scrolled percentage above which the next page loads.
const ScrollThreshold = 90.0

// ErrBusy is returned when a fetch is requested while another is in flight.
var ErrBusy = errors.New("fetch already in progress")

// Fetcher loads one garden page.
type Fetcher interface {
	Garden(ctx context.Context, q validation.GardenQuery) (*models.Page, error)
}

type Controller struct {
	fetcher Fetcher
	store   *cache.Store
	logger  logging.Logger

	mu    sync.Mutex
	key   cache.QueryKey
	state State
	// gen changes with the filter so results of an older query are dropped.
	gen     int
	lastErr error

	ctx         context.Context
	unsubscribe func()
	wg          sync.WaitGroup
}

// NewController builds a controller for the unfiltered garden with pageSize
// seeds per page. An out of range pageSize falls back to the default.
func NewController(f Fetcher, store *cache.Store, pageSize int, l logging.Logger) *Controller {
	q := validation.GardenQuery{Limit: pageSize}
	if err := validation.Garden(&q); err != nil {
		q.Limit = common.DefaultPageSize
	}

	return &Controller{
		fetcher: f,
		store:   store,
		logger:  l.With("module", "feed"),
		key:     cache.KeyFor(q),
		state:   Idle,
	}
}

// Key is the cache key of the current query.
func (c *Controller) Key() cache.QueryKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.key
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastErr is the error of the most recent failed fetch, cleared on success.
func (c *Controller) LastErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Seeds is the concatenation of all fetched pages for the current query.
func (c *Controller) Seeds() []models.Seed {
	e, _ := c.store.Get(c.Key())
	return e.Seeds()
}

// Load shows the first page of the current query. A fresh cached entry is
// reused as is; a missing or stale one is (re)fetched.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	key := c.key
	e, ok := c.store.Get(key)
	if ok && !e.Stale {
		// a running next-page fetch keeps the state until it completes
		if c.state != Fetching {
			c.state = stateOf(e)
		}
		c.mu.Unlock()
		return nil
	}
	if c.state == Fetching {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = Fetching
	gen := c.gen
	c.mu.Unlock()

	return c.fetch(ctx, gen, key, "")
}

// Refresh drops the cached pages of the current query and loads page one.
// A fetch still running for the old list is discarded when it completes.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	key := c.key
	c.gen++
	c.state = Idle
	c.lastErr = nil
	c.mu.Unlock()

	c.store.Delete(key)
	return c.Load(ctx)
}

// SetFilter switches to the garden of one author, or to everyone when
// author is empty. The list starts over from the first page.
func (c *Controller) SetFilter(ctx context.Context, author string) error {
	q := validation.GardenQuery{Limit: c.Key().Limit}
	if author != "" {
		q.Where = &validation.Where{Author: &validation.AuthorWhere{Name: author}}
	}
	if err := validation.Garden(&q); err != nil {
		return err
	}

	c.mu.Lock()
	c.key = cache.KeyFor(q)
	c.gen++
	c.state = Idle
	c.lastErr = nil
	c.mu.Unlock()

	c.store.Delete(cache.KeyFor(q))
	return c.Load(ctx)
}

// FetchNext loads the page after the last one. It is a no-op once the feed
// is exhausted and fails with ErrBusy while another fetch is running.
func (c *Controller) FetchNext(ctx context.Context) error {
	gen, key, cursor, ok, err := c.beginNext()
	if err != nil || !ok {
		return err
	}
	return c.fetch(ctx, gen, key, cursor)
}

func (c *Controller) beginNext() (gen int, key cache.QueryKey, cursor string, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case Fetching:
		return 0, key, "", false, ErrBusy
	case Exhausted:
		return 0, key, "", false, nil
	}

	e, found := c.store.Get(c.key)
	cursor = e.NextCursor()
	if !found || cursor == "" {
		return 0, key, "", false, nil
	}

	c.state = Fetching
	return c.gen, c.key, cursor, true, nil
}

func (c *Controller) fetch(ctx context.Context, gen int, key cache.QueryKey, cursor string) error {
	q := key.Query()
	q.Cursor = cursor

	page, err := c.fetcher.Garden(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// filter changed while fetching; the new query owns the state now
		return err
	}

	if err != nil {
		c.state = Idle
		c.lastErr = err
		c.logger.Warn(ctx, "garden fetch failed", "error", err, "cursor", cursor)
		return err
	}
	c.lastErr = nil

	if cursor == "" {
		c.store.Set(key, cache.Entry{Pages: []models.Page{*page}})
	} else if !c.store.Update(key, cache.AppendPage(*page)) {
		// the list was cleared under us; a lone later page must not become
		// the head of the feed
		c.state = Idle
		c.logger.Debug(ctx, "dropping page of a cleared list", "cursor", cursor)
		return nil
	}

	if page.HasMore() {
		c.state = Idle
	} else {
		c.state = Exhausted
	}
	return nil
}

// HandleScroll starts a background fetch of the next page when ev is past
// ScrollThreshold and the controller is Idle. It reports whether a fetch
// was started.
func (c *Controller) HandleScroll(ev ScrollEvent) bool {
	if ev.Scrolled <= ScrollThreshold {
		return false
	}

	gen, key, cursor, ok, err := c.beginNext()
	if err != nil || !ok {
		return false
	}

	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		_ = c.fetch(ctx, gen, key, cursor)
	}()
	return true
}

// Attach subscribes the controller to src. Fetches started by scroll events
// use ctx. Attaching again replaces the previous subscription.
func (c *Controller) Attach(ctx context.Context, src ScrollSource) {
	c.Detach()

	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()

	unsub := src.Subscribe(func(ev ScrollEvent) { c.HandleScroll(ev) })

	c.mu.Lock()
	c.unsubscribe = unsub
	c.mu.Unlock()
}

// Detach ends the scroll subscription and waits for background fetches.
func (c *Controller) Detach() {
	c.mu.Lock()
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	c.Wait()
}

// Wait blocks until background fetches have finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func stateOf(e cache.Entry) State {
	if e.Exhausted() {
		return Exhausted
	}
	return Idle
}
