// pool.go - Fixed-size worker pool draining the shared queue
package checker

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

// workerCount is fixed; the batch is one-shot so there is no need for a
// configurable long-lived pool
const workerCount = 4

// lineWriter serializes whole-line writes to a shared stream so lines
// from concurrent workers never interleave mid-line
type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lineWriter) writeLine(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Pool checks queued URLs with a fixed set of concurrent workers,
// writing one status line per URL to out or errOut
type Pool struct {
	client *http.Client
	out    *lineWriter
	errOut *lineWriter
}

// NewPool creates a pool reporting to the given streams
func NewPool(out, errOut io.Writer) *Pool {
	return &Pool{
		client: NewClient(),
		out:    &lineWriter{w: out},
		errOut: &lineWriter{w: errOut},
	}
}

// Run spawns the workers against the queue and returns only after every
// queued URL has been checked, reported, and acknowledged
func (p *Pool) Run(q *Queue) {
	var g errgroup.Group
	for i := 0; i < workerCount; i++ {
		g.Go(func() error {
			p.drain(q)
			return nil
		})
	}

	q.Join()
	g.Wait()
}

// drain pulls URLs until the queue is empty. The batch is static, so an
// empty queue means the worker is finished.
func (p *Pool) drain(q *Queue) {
	for {
		url, ok := q.Pop()
		if !ok {
			return
		}
		p.checkOne(q, url)
	}
}

// checkOne probes a single URL and reports the outcome. Acknowledgment is
// deferred so a failure on one URL never blocks queue drainage.
func (p *Pool) checkOne(q *Queue, url string) {
	defer q.Done()

	switch checkURL(p.client, url) {
	case Success:
		p.out.writeLine("Successfully connected to %s", url)
	case HTTPError:
		p.errOut.writeLine("HTTP error occurred for %s", url)
	default:
		p.errOut.writeLine("Error occurred for %s", url)
	}
}
