package checker

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue([]string{"a", "b", "c"})

	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() ok = false, want item %q", want)
		}
		if got != want {
			t.Errorf("Pop() = %q, want %q", got, want)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue ok = true, want false")
	}
}

func TestQueue_PopEmpty(t *testing.T) {
	q := NewQueue(nil)

	url, ok := q.Pop()
	if ok {
		t.Errorf("Pop() = (%q, true), want ok = false", url)
	}
}

func TestQueue_JoinEmptyReturnsImmediately(t *testing.T) {
	q := NewQueue(nil)

	done := make(chan struct{})
	go func() {
		q.Join()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Join() on empty queue did not return")
	}
}

func TestQueue_JoinWaitsForAcknowledgment(t *testing.T) {
	q := NewQueue([]string{"a", "b"})

	// pop both items but acknowledge neither yet
	q.Pop()
	q.Pop()

	joined := make(chan struct{})
	go func() {
		q.Join()
		close(joined)
	}()

	select {
	case <-joined:
		t.Fatal("Join() returned before items were acknowledged")
	case <-time.After(50 * time.Millisecond):
	}

	q.Done()

	select {
	case <-joined:
		t.Fatal("Join() returned with one item still unacknowledged")
	case <-time.After(50 * time.Millisecond):
	}

	q.Done()

	select {
	case <-joined:
	case <-time.After(time.Second):
		t.Fatal("Join() did not return after all items were acknowledged")
	}
}

func TestQueue_ConcurrentPopNoDuplicates(t *testing.T) {
	const items = 200
	const workers = 4

	urls := make([]string, items)
	for i := range urls {
		urls[i] = "https://example.com/page-" + strconv.Itoa(i)
	}
	q := NewQueue(urls)

	var mu sync.Mutex
	seen := make(map[string]int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				url, ok := q.Pop()
				if !ok {
					return
				}
				mu.Lock()
				seen[url]++
				mu.Unlock()
				q.Done()
			}
		}()
	}
	wg.Wait()
	q.Join()

	if len(seen) != items {
		t.Errorf("popped %d distinct items, want %d", len(seen), items)
	}
	for url, n := range seen {
		if n != 1 {
			t.Errorf("item %q popped %d times, want 1", url, n)
		}
	}
}
