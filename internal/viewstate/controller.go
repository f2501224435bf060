package viewstate

import (
	"context"
	"image"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pokeget/poke-viewer/internal/model"
)

// FetchState holds the state of the primary record fetch. Err keeps the
// typed client error; formatting to a display string is the UI's job.
type FetchState struct {
	Status model.FetchStatus
	Record *model.Pokemon
	Err    error
}

// ImageState holds the state of the sprite fetch, keyed by the URL found
// in a loaded record.
type ImageState struct {
	Status model.FetchStatus
	URL    string
	Image  image.Image
	Err    error
}

// Snapshot is an immutable copy of the observable state handed to subscribers.
type Snapshot struct {
	Fetch   FetchState
	Sprite  ImageState
	Counter int
}

// Controller owns the view state: the primary fetch, the sprite sub-state
// and the click counter. All mutation happens under the controller's mutex;
// there is exactly one producer per in-flight operation.
type Controller struct {
	mu      sync.Mutex
	fetch   FetchState
	sprite  ImageState
	counter int
	started bool

	// deliverMu serializes notify so snapshots reach subscribers in the
	// order they were taken; without it two concurrent notifiers could
	// leave the UI rendered from the stale snapshot.
	deliverMu sync.Mutex

	fetcher Fetcher
	sugar   *zap.SugaredLogger

	subscribers map[string]func(Snapshot)

	ctx    context.Context
	cancel context.CancelFunc
}

// NewController creates a controller over the given fetcher
func NewController(fetcher Fetcher, sugar *zap.SugaredLogger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		fetch:       FetchState{Status: model.FetchStatusIdle},
		sprite:      ImageState{Status: model.FetchStatusIdle},
		fetcher:     fetcher,
		sugar:       sugar,
		subscribers: make(map[string]func(Snapshot)),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Subscribe registers a callback invoked after every state change and
// returns a token for Unsubscribe. Callbacks receive a snapshot copy and
// may be invoked from a background goroutine.
func (c *Controller) Subscribe(fn func(Snapshot)) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := uuid.NewString()
	c.subscribers[token] = fn
	return token
}

// Unsubscribe removes a previously registered callback
func (c *Controller) Unsubscribe(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subscribers, token)
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Start triggers the startup fetch for the given species. Calls after the
// first are no-ops; the app fetches exactly once per session.
func (c *Controller) Start(species string) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.fetch.Status = model.FetchStatusLoading
	c.mu.Unlock()
	c.notify()

	go c.runFetch(species)
}

// runFetch performs the record fetch off the UI goroutine
func (c *Controller) runFetch(species string) {
	record, err := c.fetcher.FetchPokemon(c.ctx, species)

	// A result arriving after Close is abandoned without a transition.
	if c.ctx.Err() != nil {
		c.sugar.Infow("fetch abandoned", "species", species)
		return
	}

	c.mu.Lock()
	if err != nil {
		c.fetch.Status = model.FetchStatusFailed
		c.fetch.Err = err
		c.mu.Unlock()
		c.sugar.Warnw("fetch failed", "species", species, "error", err)
		c.notify()
		return
	}
	c.fetch.Status = model.FetchStatusLoaded
	c.fetch.Record = record
	c.mu.Unlock()
	c.sugar.Infow("fetch loaded", "species", species, "name", record.Name)
	c.notify()

	// A missing sprite URL is not an error; the image state stays idle
	// and the UI simply omits the image section.
	if record.HasSprite() {
		c.requestSprite(record.SpriteURL())
	}
}

// requestSprite starts the sprite fetch unless the same URL was already
// requested; the sub-state is re-triggered only when the URL value changes.
func (c *Controller) requestSprite(url string) {
	c.mu.Lock()
	if url == "" || (c.sprite.URL == url && c.sprite.Status != model.FetchStatusIdle) {
		c.mu.Unlock()
		return
	}
	c.sprite = ImageState{Status: model.FetchStatusLoading, URL: url}
	c.mu.Unlock()
	c.notify()

	go c.runSpriteFetch(url)
}

// runSpriteFetch downloads and decodes the sprite off the UI goroutine
func (c *Controller) runSpriteFetch(url string) {
	img, err := c.fetcher.FetchSprite(c.ctx, url)

	if c.ctx.Err() != nil {
		c.sugar.Infow("sprite fetch abandoned", "url", url)
		return
	}

	c.mu.Lock()
	// The sprite URL changed while the fetch was in flight; drop the
	// stale result.
	if c.sprite.URL != url {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.sprite.Status = model.FetchStatusFailed
		c.sprite.Err = err
		c.sugar.Warnw("sprite fetch failed", "url", url, "error", err)
	} else {
		c.sprite.Status = model.FetchStatusLoaded
		c.sprite.Image = img
	}
	c.mu.Unlock()
	c.notify()
}

// Increment adds one to the click counter and returns the new value. The
// counter is independent of the fetch state machine and never decremented.
func (c *Controller) Increment() int {
	c.mu.Lock()
	c.counter++
	value := c.counter
	c.mu.Unlock()
	c.notify()
	return value
}

// Counter returns the current counter value
func (c *Controller) Counter() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter
}

// Close cancels in-flight work. Results arriving afterwards are dropped
// without a state transition.
func (c *Controller) Close() {
	c.cancel()
}

// notify delivers a snapshot to all subscribers. Delivery is serialized;
// callbacks must not call back into the controller synchronously.
func (c *Controller) notify() {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	snap := c.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{Fetch: c.fetch, Sprite: c.sprite, Counter: c.counter}
}
