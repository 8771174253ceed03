// Package dispatch runs remote rig writes off the event loop.
//
// Every request gets its own goroutine, timeout and correlation id. The
// caller never waits for the rig: outcomes are published on Results for
// whoever wants to observe them (the TUI status bar, the MCP server), and
// failures are logged and otherwise dropped. There is no retry and no
// cancellation of in-flight calls; the rig applies last write wins.
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lumictl/internal/lighting"
	"lumictl/pkg/logging"

	"github.com/google/uuid"
)

const (
	subsystem = "Dispatch"

	defaultTimeout    = 10 * time.Second
	defaultResultsBuf = 64
)

// Dispatcher executes requests asynchronously against a RemoteLightAPI.
type Dispatcher struct {
	api     lighting.RemoteLightAPI
	timeout time.Duration

	mu sync.RWMutex
	// closing stops new dispatches; closed stops publishing once Results is closed.
	closing bool
	closed  bool
	results chan lighting.Result
	wg      sync.WaitGroup
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTimeout bounds each remote call.
func WithTimeout(d time.Duration) Option {
	return func(ds *Dispatcher) {
		if d > 0 {
			ds.timeout = d
		}
	}
}

// WithResultBuffer sizes the results channel. Outcomes are dropped, not
// blocked on, when nobody drains it.
func WithResultBuffer(n int) Option {
	return func(ds *Dispatcher) {
		if n > 0 {
			ds.results = make(chan lighting.Result, n)
		}
	}
}

// New creates a dispatcher for api.
func New(api lighting.RemoteLightAPI, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		api:     api,
		timeout: defaultTimeout,
		results: make(chan lighting.Result, defaultResultsBuf),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch starts req and returns immediately.
func (d *Dispatcher) Dispatch(req lighting.Request) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closing {
		logging.Warn(subsystem, "Dropping %s: dispatcher closed", req)
		return
	}
	d.wg.Add(1)
	go d.run(req)
}

func (d *Dispatcher) run(req lighting.Request) {
	defer d.wg.Done()

	id := uuid.New().String()
	ctx, cancel := context.WithTimeout(lighting.ContextWithRequestID(context.Background(), id), d.timeout)
	defer cancel()

	err := d.apply(ctx, req)
	if err != nil {
		logging.Error(subsystem, err, "%s failed [%s]", req, id)
	} else {
		logging.Debug(subsystem, "%s ok [%s]", req, id)
	}
	d.publish(lighting.Result{Request: req, RequestID: id, Err: err})
}

func (d *Dispatcher) apply(ctx context.Context, req lighting.Request) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic during %s: %v", lighting.ErrRemoteCallFailed, req.Op, r)
		}
	}()
	return req.Apply(ctx, d.api)
}

func (d *Dispatcher) publish(res lighting.Result) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}
	select {
	case d.results <- res:
	default:
		logging.Debug(subsystem, "Result channel full, dropping outcome of %s", res.Request)
	}
}

// Results delivers the outcome of each dispatched request.
func (d *Dispatcher) Results() <-chan lighting.Result {
	return d.results
}

// Wait blocks until every dispatched request has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close refuses new dispatches, waits for in-flight requests to publish
// their outcomes, then closes Results.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closing {
		d.mu.Unlock()
		return
	}
	d.closing = true
	d.mu.Unlock()

	d.wg.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	close(d.results)
}
