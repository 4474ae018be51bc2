package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs row bands on a fixed set of goroutines that outlive any single
// image operation.
//
// Every worker owns a queue. Run deals bands out round-robin, starting at a
// rotating queue so concurrent callers spread out. A worker with an empty
// queue takes bands from the other queues before it blocks, so one slow
// band does not stall the rest.
//
// Pool is safe for concurrent use; concurrent Run calls share the workers.
type Pool struct {
	queues []chan bandTask
	quit   chan struct{}
	wg     sync.WaitGroup
	next   atomic.Uint32

	// mu orders Run's sends against Close, so no band is queued after the
	// workers have been told to stop.
	mu   sync.RWMutex
	open bool
}

type bandTask struct {
	band Band
	fn   func(Band)
	done *sync.WaitGroup
}

func (t bandTask) run() {
	defer t.done.Done()
	t.fn(t.band)
}

// NewPool starts a pool of size workers. A non-positive size means
// GOMAXPROCS.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	depth := max(size*4, 8)

	p := &Pool{
		queues: make([]chan bandTask, size),
		quit:   make(chan struct{}),
		open:   true,
	}
	for i := range p.queues {
		p.queues[i] = make(chan bandTask, depth)
	}

	p.wg.Add(size)
	for id := range size {
		go p.loop(id)
	}
	return p
}

var shared = sync.OnceValue(func() *Pool { return NewPool(0) })

// Shared returns the process-wide pool behind ForEachBand. It is created on
// first use with GOMAXPROCS workers and is never closed.
func Shared() *Pool { return shared() }

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.queues) }

// Open reports whether the pool still hands bands to its workers.
func (p *Pool) Open() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.open
}

func (p *Pool) loop(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case t := <-own:
			t.run()
			continue
		default:
		}

		if t, ok := p.take(id); ok {
			t.run()
			continue
		}

		select {
		case t := <-own:
			t.run()
		case <-p.quit:
			// Run cannot send once quit is closed; finish what is left.
			for {
				select {
				case t := <-own:
					t.run()
				default:
					return
				}
			}
		}
	}
}

// take removes one band from another worker's queue, if any is waiting.
func (p *Pool) take(id int) (bandTask, bool) {
	n := len(p.queues)
	for i := 1; i < n; i++ {
		select {
		case t := <-p.queues[(id+i)%n]:
			return t, true
		default:
		}
	}
	return bandTask{}, false
}

// Run calls fn once for every band and returns when all calls are done.
// After Close, the bands run on the calling goroutine.
func (p *Pool) Run(bands []Band, fn func(Band)) {
	if len(bands) == 0 {
		return
	}

	p.mu.RLock()
	if !p.open {
		p.mu.RUnlock()
		for _, b := range bands {
			fn(b)
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(bands))
	start := int(p.next.Add(1))
	for i, b := range bands {
		p.queues[(start+i)%len(p.queues)] <- bandTask{band: b, fn: fn, done: &done}
	}
	p.mu.RUnlock()

	done.Wait()
}

// Close stops the workers after they finish every queued band. It is safe
// to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.open {
		p.mu.Unlock()
		return
	}
	p.open = false
	close(p.quit)
	p.mu.Unlock()

	p.wg.Wait()
}
