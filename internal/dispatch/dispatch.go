// Package dispatch marshals closures onto the OS thread that owns a native
// window handle. Native windowing state may only be touched from its
// creation thread, but callers invoke window operations from arbitrary
// goroutines; Sync bridges the two by posting a pending call onto the
// owning thread's queue and parking the caller until it has run.
package dispatch

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrTimeout is returned when a cross-thread call exceeds the
	// dispatcher's configured wait bound.
	ErrTimeout = errors.New("dispatch: cross-thread call timed out")

	// ErrClosed is returned when dispatching to a window whose message
	// pump has shut down.
	ErrClosed = errors.New("dispatch: queue closed")
)

// Call is one marshalled unit of work awaiting execution on the owning
// thread. It never outlives a single Sync invocation.
type Call struct {
	fn      func()
	started atomic.Bool
	done    chan struct{}
}

// Execute runs the call on the current goroutine. The pump invokes this for
// every call it drains from the queue; calls are executed at most once.
func (c *Call) Execute() {
	if !c.started.CompareAndSwap(false, true) {
		return
	}
	defer close(c.done)
	c.fn()
}

// Dispatcher routes closures to the owning thread of a window. The
// goroutine that constructs it must be locked to its OS thread for the
// dispatcher's lifetime; that thread is the owner.
type Dispatcher struct {
	ownerTID int
	timeout  time.Duration

	calls     chan *Call
	closed    chan struct{}
	closeOnce sync.Once
}

// New creates a dispatcher owned by the calling thread. A timeout of zero
// means cross-thread calls wait indefinitely for the pump.
func New(timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		ownerTID: gettid(),
		timeout:  timeout,
		calls:    make(chan *Call, 64),
		closed:   make(chan struct{}),
	}
}

// OnOwner reports whether the calling goroutine is running on the owning
// thread. Because the owner is locked to its goroutine, this is true
// exactly for code running in the pump (or called from it).
func (d *Dispatcher) OnOwner() bool {
	return gettid() == d.ownerTID
}

// Calls exposes the pending-call queue to the message pump. Entries must be
// run with Execute, on the owning thread.
func (d *Dispatcher) Calls() <-chan *Call {
	return d.calls
}

// Close marks the dispatcher shut down. Callers blocked in Sync, and any
// later Sync attempts, fail with ErrClosed instead of hanging on a pump
// that will never run again.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.closed) })
}

type outcome struct {
	err      error
	panicked any
}

// Sync executes fn on the owning thread and returns its error. On the
// owning thread fn runs inline. From any other thread it is queued, the
// caller blocks until the pump has executed it, and the stored error (or
// panic) is re-raised here so the call behaves as if it ran locally.
func (d *Dispatcher) Sync(fn func() error) error {
	if d.OnOwner() {
		return fn()
	}

	var res outcome
	c := &Call{done: make(chan struct{})}
	c.fn = func() {
		defer func() {
			if r := recover(); r != nil {
				res.panicked = r
			}
		}()
		res.err = fn()
	}

	var timeoutC <-chan time.Time
	if d.timeout > 0 {
		timer := time.NewTimer(d.timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	select {
	case d.calls <- c:
	case <-d.closed:
		return ErrClosed
	case <-timeoutC:
		return ErrTimeout
	}

	select {
	case <-c.done:
	case <-d.closed:
		// The call that shut the pump down may be this one; only bail
		// out if it never started.
		if !c.started.Load() {
			return ErrClosed
		}
		<-c.done
	case <-timeoutC:
		return ErrTimeout
	}

	if res.panicked != nil {
		panic(res.panicked)
	}
	return res.err
}

// Do marshals fn onto the owning thread and returns its result, mirroring
// Sync for operations that produce a value.
func Do[T any](d *Dispatcher, fn func() (T, error)) (T, error) {
	var out T
	err := d.Sync(func() error {
		v, err := fn()
		out = v
		return err
	})
	if err != nil {
		// On timeout the closure may still run later; out must not be
		// touched once the caller has given up on it.
		var zero T
		return zero, err
	}
	return out, nil
}
