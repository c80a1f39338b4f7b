package event

import "testing"

func TestEmitInvokesInInsertionOrder(t *testing.T) {
	var c Channel[int]
	var got []string

	c.Add(func(v int) { got = append(got, "first") })
	c.Add(func(v int) { got = append(got, "second") })
	c.Add(func(v int) { got = append(got, "third") })

	c.Emit(0)

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d invocations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("invocation %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEmitPassesPayload(t *testing.T) {
	var c Channel[int]
	var got int
	c.Add(func(v int) { got = v })

	c.Emit(42)

	if got != 42 {
		t.Fatalf("expected payload 42, got %d", got)
	}
}

func TestOnceFiresExactlyOnce(t *testing.T) {
	var c Channel[int]
	count := 0
	c.Once(func(int) { count++ })

	c.Emit(0)
	c.Emit(0)
	c.Emit(0)

	if count != 1 {
		t.Fatalf("expected once subscriber to fire exactly once, fired %d times", count)
	}
	if c.Len() != 0 {
		t.Fatalf("expected once subscriber to be removed, %d remain", c.Len())
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	var c Channel[int]
	id := c.Add(func(int) {})

	c.Remove(id)
	c.Remove(id)
	c.Remove(9999)

	if c.Len() != 0 {
		t.Fatalf("expected empty channel, %d remain", c.Len())
	}
}

func TestRemoveOnlyDropsMatchingSubscriber(t *testing.T) {
	var c Channel[int]
	var got []int

	c.Add(func(int) { got = append(got, 1) })
	id := c.Add(func(int) { got = append(got, 2) })
	c.Add(func(int) { got = append(got, 3) })

	c.Remove(id)
	c.Emit(0)

	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("expected invocations [1 3], got %v", got)
	}
}

func TestClearThenReAdd(t *testing.T) {
	var c Channel[int]
	count := 0

	c.Add(func(int) { count++ })
	c.Add(func(int) { count++ })
	c.Clear()
	c.Emit(0)

	if count != 0 {
		t.Fatalf("expected no invocations after clear, got %d", count)
	}

	c.Add(func(int) { count++ })
	c.Emit(0)

	if count != 1 {
		t.Fatalf("expected fresh subscriber to fire after clear, count=%d", count)
	}
}

func TestIDsAreUniqueAndIncreasing(t *testing.T) {
	var c Channel[int]
	prev := uint64(0)
	for i := 0; i < 10; i++ {
		id := c.Add(func(int) {})
		if id <= prev {
			t.Fatalf("expected ids to increase, got %d after %d", id, prev)
		}
		prev = id
	}
}

func TestReentrantAddDuringEmit(t *testing.T) {
	var c Channel[int]
	lateFired := false

	c.Add(func(int) {
		c.Add(func(int) { lateFired = true })
	})

	c.Emit(0)
	if lateFired {
		t.Fatalf("subscriber added during dispatch must not fire in the same dispatch")
	}

	c.Emit(0)
	if !lateFired {
		t.Fatalf("subscriber added during dispatch should fire on the next dispatch")
	}
}

func TestReentrantRemoveDuringEmit(t *testing.T) {
	var c Channel[int]
	var ids [2]uint64
	count := 0

	ids[0] = c.Add(func(int) {
		c.Remove(ids[1])
	})
	ids[1] = c.Add(func(int) { count++ })

	// The snapshot taken before dispatch still includes the removed
	// subscriber for this round.
	c.Emit(0)
	if count != 1 {
		t.Fatalf("expected snapshot dispatch to invoke removed subscriber once, got %d", count)
	}

	c.Emit(0)
	if count != 1 {
		t.Fatalf("expected removed subscriber to stay removed, got %d", count)
	}
}

func TestVetoChannelAnyTrueVetoes(t *testing.T) {
	var c VetoChannel

	c.Add(func() bool { return false })
	if c.Emit() {
		t.Fatalf("expected no veto from false-returning subscriber")
	}

	c.Add(func() bool { return true })
	c.Add(func() bool { return false })
	if !c.Emit() {
		t.Fatalf("expected veto when any subscriber returns true")
	}
}

func TestVetoChannelOnceAndRemove(t *testing.T) {
	var c VetoChannel
	count := 0
	c.Once(func() bool { count++; return true })

	if !c.Emit() {
		t.Fatalf("expected veto on first emit")
	}
	if c.Emit() {
		t.Fatalf("expected no veto after once subscriber fired")
	}
	if count != 1 {
		t.Fatalf("expected once subscriber to fire exactly once, fired %d times", count)
	}

	id := c.Add(func() bool { return true })
	c.Remove(id)
	if c.Emit() {
		t.Fatalf("expected no veto after removal")
	}
}
