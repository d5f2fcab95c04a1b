package events

// QueueSize is the fixed capacity of the event ring buffer
const QueueSize = 64

// EventQueue is a fixed-capacity ring buffer of game events
// The simulation is single-threaded: producers and the consumer run in the frame loop
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events [QueueSize]GameEvent
	head   int // Index of oldest event
	count  int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest one when full
func (eq *EventQueue) Push(event GameEvent) {
	idx := (eq.head + eq.count) % QueueSize
	eq.events[idx] = event
	if eq.count < QueueSize {
		eq.count++
		return
	}
	eq.head = (eq.head + 1) % QueueSize
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if eq.count == 0 {
		return nil
	}
	out := make([]GameEvent, eq.count)
	for i := range out {
		out[i] = eq.events[(eq.head+i)%QueueSize]
	}
	eq.head = 0
	eq.count = 0
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return eq.count
}

// Clear drops all pending events
func (eq *EventQueue) Clear() {
	eq.head = 0
	eq.count = 0
}
