package storage

import (
	"log/slog"
	"sync"
)

// Async wraps a Store so Set never blocks the caller. Writes are handed to
// one background writer; if several pile up for the same key only the most
// recent is written. Write errors are logged and dropped.
type Async struct {
	inner Store

	mu      sync.Mutex
	queued  map[string]int
	order   []string
	wake    chan struct{}
	done    chan struct{}
	closing bool
	once    sync.Once
}

func NewAsync(inner Store) *Async {
	a := &Async{
		inner:  inner,
		queued: make(map[string]int),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

// Get reads through to the wrapped store. A value still waiting to be
// written wins over what is on disk.
func (a *Async) Get(key string) (int, error) {
	a.mu.Lock()
	v, ok := a.queued[key]
	a.mu.Unlock()
	if ok {
		return v, nil
	}
	return a.inner.Get(key)
}

// Set queues the write and returns immediately.
func (a *Async) Set(key string, value int) error {
	a.mu.Lock()
	if a.closing {
		a.mu.Unlock()
		return a.inner.Set(key, value)
	}
	if _, ok := a.queued[key]; !ok {
		a.order = append(a.order, key)
	}
	a.queued[key] = value
	select {
	case a.wake <- struct{}{}:
	default:
	}
	a.mu.Unlock()
	return nil
}

func (a *Async) run() {
	defer close(a.done)
	for range a.wake {
		a.flush()
	}
	a.flush()
}

func (a *Async) flush() {
	for {
		a.mu.Lock()
		if len(a.order) == 0 {
			a.mu.Unlock()
			return
		}
		key := a.order[0]
		a.order = a.order[1:]
		value := a.queued[key]
		delete(a.queued, key)
		a.mu.Unlock()

		if err := a.inner.Set(key, value); err != nil {
			slog.Warn("background write failed", "key", key, "value", value, "error", err)
		}
	}
}

// Close writes anything still queued, then closes the wrapped store.
func (a *Async) Close() error {
	a.once.Do(func() {
		a.mu.Lock()
		a.closing = true
		close(a.wake)
		a.mu.Unlock()
		<-a.done
	})
	return a.inner.Close()
}
