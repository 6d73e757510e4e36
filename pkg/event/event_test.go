package event_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/wisdorage/pkg/event"
)

func TestDispatcherFiresAllListeners(t *testing.T) {
	d := event.NewDispatcher(4)
	defer d.Close()

	var mu sync.Mutex
	got := map[string]int{}

	var wg sync.WaitGroup
	wg.Add(2)
	record := func(name string, _ interface{}) {
		defer wg.Done()
		mu.Lock()
		got[name]++
		mu.Unlock()
	}

	d.Listen("order.placed", record)
	d.Listen("order.placed", record)
	d.Fire("order.placed", map[string]string{"bookId": "b1"})

	wg.Wait()
	assert.Equal(t, 2, got["order.placed"])
}

func TestDispatcherIgnoresUnknownEvents(t *testing.T) {
	d := event.NewDispatcher(2)
	defer d.Close()

	fired := make(chan struct{}, 1)
	d.Listen("known", func(string, interface{}) { fired <- struct{}{} })

	d.Fire("unknown", nil)

	select {
	case <-fired:
		t.Fatal("listener ran for an event it never subscribed to")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFireNeverBlocks(t *testing.T) {
	d := event.NewDispatcher(1)
	defer d.Close()

	block := make(chan struct{})
	d.Listen("slow", func(string, interface{}) { <-block })

	done := make(chan struct{})
	go func() {
		// Far more events than the pool can queue; Fire must drop, not wait.
		for i := 0; i < 100; i++ {
			d.Fire("slow", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Fire blocked on a saturated pool")
	}
	close(block)
}
