package dispatch

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"
)

// owner runs a dispatcher on a locked OS thread and pumps its queue until
// stop is closed.
type owner struct {
	d    *Dispatcher
	stop chan struct{}
}

func startOwner(t *testing.T, timeout time.Duration) *owner {
	t.Helper()

	o := &owner{stop: make(chan struct{})}
	ready := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		o.d = New(timeout)
		close(ready)

		for {
			select {
			case c := <-o.d.Calls():
				c.Execute()
			case <-o.stop:
				return
			}
		}
	}()

	<-ready
	t.Cleanup(func() { close(o.stop) })
	return o
}

func TestSyncRunsInlineOnOwner(t *testing.T) {
	done := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		d := New(0)
		if !d.OnOwner() {
			done <- fmt.Errorf("creator thread should be the owner")
			return
		}

		// No pump is running; inline execution is the only way this
		// can complete.
		ran := false
		err := d.Sync(func() error {
			ran = true
			return nil
		})
		if err != nil {
			done <- fmt.Errorf("unexpected error: %v", err)
			return
		}
		if !ran {
			done <- fmt.Errorf("closure did not run")
			return
		}
		done <- nil
	}()

	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

func TestSyncCrossThreadReturnsValue(t *testing.T) {
	o := startOwner(t, 0)

	if o.d.OnOwner() {
		t.Fatalf("test goroutine must not be the owning thread")
	}

	got, err := Do(o.d, func() (int, error) { return 1234, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1234 {
		t.Fatalf("expected 1234, got %d", got)
	}
}

func TestSyncCrossThreadPropagatesError(t *testing.T) {
	o := startOwner(t, 0)

	want := errors.New("native call failed")
	err := o.d.Sync(func() error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestSyncCrossThreadPropagatesPanic(t *testing.T) {
	o := startOwner(t, 0)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic to cross the thread boundary")
		}
		if r != "boom" {
			t.Fatalf("expected panic value %q, got %v", "boom", r)
		}
	}()

	_ = o.d.Sync(func() error { panic("boom") })
}

func TestSameCallerOrderingIsFIFO(t *testing.T) {
	o := startOwner(t, 0)

	var got []int
	for i := 0; i < 20; i++ {
		i := i
		if err := o.d.Sync(func() error {
			got = append(got, i)
			return nil
		}); err != nil {
			t.Fatalf("dispatch %d failed: %v", i, err)
		}
	}

	for i, v := range got {
		if v != i {
			t.Fatalf("expected FIFO order, got %v", got)
		}
	}
}

func TestSetThenGetObservesOwnWrite(t *testing.T) {
	o := startOwner(t, 0)

	value := 0
	if err := o.d.Sync(func() error { value = 300; return nil }); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := Do(o.d, func() (int, error) { return value, nil })
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != 300 {
		t.Fatalf("expected sequenced read of own write, got %d", got)
	}
}

func TestTimeoutWhenPumpNeverRuns(t *testing.T) {
	ready := make(chan *Dispatcher)
	hold := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		ready <- New(25 * time.Millisecond)
		<-hold
	}()
	d := <-ready
	defer close(hold)

	err := d.Sync(func() error { return nil })
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestDispatchAfterCloseFails(t *testing.T) {
	o := startOwner(t, 0)
	o.d.Close()

	err := o.d.Sync(func() error { return nil })
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestCloseWakesBlockedCaller(t *testing.T) {
	ready := make(chan *Dispatcher)
	hold := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		ready <- New(0)
		<-hold
	}()
	d := <-ready
	defer close(hold)

	errc := make(chan error, 1)
	go func() {
		errc <- d.Sync(func() error { return nil })
	}()

	time.Sleep(10 * time.Millisecond)
	d.Close()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrClosed) {
			t.Fatalf("expected ErrClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("caller still blocked after Close")
	}
}

func TestCallThatClosesDispatcherStillCompletes(t *testing.T) {
	o := startOwner(t, 0)

	// The closure itself shuts the dispatcher down, the way a close
	// operation tears down its own pump. The caller must still observe
	// the closure's own result, not ErrClosed.
	err := o.d.Sync(func() error {
		o.d.Close()
		return nil
	})
	if err != nil {
		t.Fatalf("expected completed call, got %v", err)
	}
}
