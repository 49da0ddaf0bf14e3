// queue.go - Thread-safe work queue with completion tracking
package checker

import "sync"

// Queue holds pending URLs for concurrent consumption by workers.
// Every pushed item must eventually be acknowledged with Done;
// Join blocks until the queue is fully drained.
type Queue struct {
	mu      sync.Mutex
	items   []string
	pending sync.WaitGroup
}

// NewQueue creates a queue pre-filled with the given URLs
func NewQueue(urls []string) *Queue {
	q := &Queue{}
	for _, url := range urls {
		q.Push(url)
	}
	return q
}

// Push adds one pending item
func (q *Queue) Push(url string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending.Add(1)
	q.items = append(q.items, url)
}

// Pop removes and returns the oldest pending item.
// ok is false when no items remain.
func (q *Queue) Pop() (url string, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return "", false
	}
	url = q.items[0]
	q.items = q.items[1:]
	return url, true
}

// Done acknowledges one previously popped item as fully processed
func (q *Queue) Done() {
	q.pending.Done()
}

// Join blocks until every pushed item has been popped and acknowledged
func (q *Queue) Join() {
	q.pending.Wait()
}

// Len returns the number of items not yet popped
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
