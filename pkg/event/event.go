// Package event provides the in-process dispatcher behind the activity feed.
//
// Dispatch is fire-and-forget: handlers run on a bounded worker pool and a
// full pool drops the event. Nothing in the HTTP request path ever waits on
// a listener.
package event

import (
	"sync"

	"github.com/shashiranjanraj/wisdorage/pkg/metrics"
	"github.com/shashiranjanraj/wisdorage/pkg/workerpool"
)

// Handler receives a dispatched event.
type Handler func(name string, payload interface{})

// Dispatcher routes named events to registered handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	pool     *workerpool.Pool
}

// NewDispatcher creates a dispatcher running handlers on workers goroutines.
func NewDispatcher(workers int) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		pool:     workerpool.New(workers),
	}
}

// Listen registers a handler for the given event name.
func (d *Dispatcher) Listen(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], h)
}

// Fire dispatches an event asynchronously to all registered listeners.
// It never blocks; events are dropped when the pool is saturated.
func (d *Dispatcher) Fire(name string, payload interface{}) {
	d.mu.RLock()
	hs := make([]Handler, len(d.handlers[name]))
	copy(hs, d.handlers[name])
	d.mu.RUnlock()

	metrics.RecordEvent(name)

	for _, h := range hs {
		h := h
		_ = d.pool.Submit(func() { h(name, payload) })
	}
}

// Close stops the worker pool after in-flight handlers finish.
func (d *Dispatcher) Close() {
	d.pool.Shutdown()
}
