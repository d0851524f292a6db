package game

import "sync"

type inputKind int

const (
	inputAim inputKind = iota
	inputFire
)

type inputEvent struct {
	kind inputKind
	x, y float64
}

// inputQueue collects pointer events between ticks. Producers (the UI
// thread, the network handler) push concurrently; the engine drains the
// whole queue at the start of each Advance, in arrival order.
type inputQueue struct {
	mu     sync.Mutex
	events []inputEvent
}

func (q *inputQueue) push(ev inputEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// drain returns the queued events and empties the queue
func (q *inputQueue) drain() []inputEvent {
	q.mu.Lock()
	events := q.events
	q.events = nil
	q.mu.Unlock()
	return events
}
