// Package lifecycle drives a single external call per user action and keeps
// the outcome of the latest one. A Panel moves through idle, loading, success
// and error; only one request is in flight at a time and every new submission
// replaces the previous result or error wholesale.
package lifecycle

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/chynybekuuludastan/adstudio/internal/service/backend"
)

// State is the display state of a panel
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// MessageInterrupted is shown when a restored panel was loading when its session ended
const MessageInterrupted = "The previous request was interrupted. Please try again."

var (
	// ErrBusy is returned when a submission arrives while a request is in flight
	ErrBusy = errors.New("a request is already in progress")
	// ErrNotRetryable is returned by Retry outside a retryable error state
	ErrNotRetryable = errors.New("nothing to retry")
	// ErrClosed is returned after the panel has been closed
	ErrClosed = errors.New("panel closed")
)

// Fetcher performs the network step for a request
type Fetcher[Req, Res any] func(ctx context.Context, req Req) (*Res, error)

// Validator rejects a request before it reaches the network
type Validator[Req any] func(req Req) error

// Snapshot is a point-in-time copy of a panel
type Snapshot[Req, Res any] struct {
	Panel     string    `json:"panel"`
	State     State     `json:"state"`
	Request   *Req      `json:"request,omitempty"`
	Result    *Res      `json:"result,omitempty"`
	Message   string    `json:"message,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Retryable bool      `json:"retryable"`
	Attempts  int       `json:"attempts"`
	Version   uint64    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Panel is the request/response state machine of one page
type Panel[Req, Res any] struct {
	name     string
	fetch    Fetcher[Req, Res]
	validate Validator[Req]

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	state     State
	request   *Req
	result    *Res
	message   string
	kind      backend.Kind
	retryable bool
	attempts  int
	version   uint64
	updatedAt time.Time
	done      chan struct{}
	closed    bool

	notifyMu     sync.Mutex
	lastNotified uint64
	listeners    []func(Snapshot[Req, Res])
}

// New creates an idle panel whose requests are bound to ctx
func New[Req, Res any](ctx context.Context, name string, fetch Fetcher[Req, Res], validate Validator[Req]) *Panel[Req, Res] {
	ctx, cancel := context.WithCancel(ctx)
	return &Panel[Req, Res]{
		name:      name,
		fetch:     fetch,
		validate:  validate,
		ctx:       ctx,
		cancel:    cancel,
		state:     StateIdle,
		updatedAt: time.Now(),
	}
}

// Name returns the panel name
func (p *Panel[Req, Res]) Name() string {
	return p.name
}

// OnChange registers fn to be called after every transition, in order.
// Listeners must not block for long.
func (p *Panel[Req, Res]) OnChange(fn func(Snapshot[Req, Res])) {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Submit starts a request for req. A validation failure moves the panel to
// the error state without touching the network and is also returned.
func (p *Panel[Req, Res]) Submit(req Req) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.state == StateLoading {
		p.mu.Unlock()
		return ErrBusy
	}

	if p.validate != nil {
		if err := p.validate(req); err != nil {
			p.request = nil
			p.result = nil
			p.setErrorLocked(err, backend.KindValidation, false)
			snap := p.snapshotLocked()
			p.mu.Unlock()
			p.notify(snap)
			return err
		}
	}

	return p.startLocked(req)
}

// Retry re-submits the last payload that reached the network
func (p *Panel[Req, Res]) Retry() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.state != StateError || !p.retryable || p.request == nil {
		p.mu.Unlock()
		return ErrNotRetryable
	}

	return p.startLocked(*p.request)
}

// startLocked must be called with p.mu held; it releases the lock.
func (p *Panel[Req, Res]) startLocked(req Req) error {
	p.state = StateLoading
	p.request = &req
	p.result = nil
	p.message = ""
	p.kind = ""
	p.retryable = false
	p.attempts++
	p.done = make(chan struct{})
	p.touchLocked()

	version := p.version
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(snap)
	go p.run(version, req)
	return nil
}

func (p *Panel[Req, Res]) run(version uint64, req Req) {
	res, err := p.fetch(p.ctx, req)

	p.mu.Lock()
	if p.closed || p.version != version || p.state != StateLoading {
		p.mu.Unlock()
		return
	}

	if err == nil && res == nil {
		err = &backend.Error{Kind: backend.KindDecode, Message: backend.MessageDecode}
	}

	if err != nil {
		p.setErrorLocked(err, backend.KindNetwork, true)
	} else {
		p.state = StateSuccess
		p.result = res
		p.touchLocked()
	}

	close(p.done)
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(snap)
}

// setErrorLocked records err; errors that are not *backend.Error are filed
// under fallback, with the generic network message for network failures.
func (p *Panel[Req, Res]) setErrorLocked(err error, fallback backend.Kind, retryable bool) {
	p.state = StateError
	p.message = backend.MessageOf(err)
	p.kind = backend.KindOf(err)
	if p.kind == "" {
		p.kind = fallback
		if fallback == backend.KindNetwork {
			p.message = backend.MessageNetwork
		}
	}
	p.retryable = retryable
	p.touchLocked()
}

func (p *Panel[Req, Res]) touchLocked() {
	p.version++
	p.updatedAt = time.Now()
}

// Snapshot returns a copy of the current state
func (p *Panel[Req, Res]) Snapshot() Snapshot[Req, Res] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Panel[Req, Res]) snapshotLocked() Snapshot[Req, Res] {
	snap := Snapshot[Req, Res]{
		Panel:     p.name,
		State:     p.state,
		Result:    p.result,
		Message:   p.message,
		ErrorKind: string(p.kind),
		Retryable: p.retryable,
		Attempts:  p.attempts,
		Version:   p.version,
		UpdatedAt: p.updatedAt,
	}
	if p.request != nil {
		req := *p.request
		snap.Request = &req
	}
	return snap
}

// Await blocks until the panel is no longer loading, then returns its snapshot
func (p *Panel[Req, Res]) Await(ctx context.Context) (Snapshot[Req, Res], error) {
	p.mu.Lock()
	if p.state != StateLoading || p.closed {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, nil
	}
	done := p.done
	p.mu.Unlock()

	select {
	case <-done:
		return p.Snapshot(), nil
	case <-ctx.Done():
		return p.Snapshot(), ctx.Err()
	}
}

// Restore seeds an idle panel from a stored snapshot. Only terminal states
// are restored; a stored loading state becomes a retryable error.
func (p *Panel[Req, Res]) Restore(snap Snapshot[Req, Res]) bool {
	p.mu.Lock()
	if p.closed || p.state != StateIdle || p.attempts > 0 {
		p.mu.Unlock()
		return false
	}

	switch snap.State {
	case StateSuccess:
		if snap.Result == nil {
			p.mu.Unlock()
			return false
		}
		p.state = StateSuccess
		p.result = snap.Result
		p.request = snap.Request
	case StateError:
		p.state = StateError
		p.request = snap.Request
		p.message = snap.Message
		p.kind = backend.Kind(snap.ErrorKind)
		p.retryable = snap.Retryable && snap.Request != nil
	case StateLoading:
		if snap.Request == nil {
			p.mu.Unlock()
			return false
		}
		p.state = StateError
		p.request = snap.Request
		p.message = MessageInterrupted
		p.kind = backend.KindNetwork
		p.retryable = true
	default:
		p.mu.Unlock()
		return false
	}

	p.attempts = snap.Attempts
	p.touchLocked()
	restored := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(restored)
	return true
}

// Close cancels any in-flight request. Results that arrive afterwards are dropped.
func (p *Panel[Req, Res]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.cancel()
	if p.state == StateLoading && p.done != nil {
		close(p.done)
	}
}

// notify delivers snap to listeners, skipping snapshots older than one already delivered
func (p *Panel[Req, Res]) notify(snap Snapshot[Req, Res]) {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	if snap.Version <= p.lastNotified {
		return
	}
	p.lastNotified = snap.Version

	for _, fn := range p.listeners {
		fn(snap)
	}
}
