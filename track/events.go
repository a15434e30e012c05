package track

// eventTable is the growable, append-only output buffer of the
// resampler. The final event count is unknowable in advance: it starts
// at an initial capacity, doubles whenever remaining headroom cannot
// absorb one worst-case segment, and shrinks to its exact size when the
// pass completes. Ownership is exclusive to the resampler until the
// trimmed slice is handed to the caller inside Result.
type eventTable struct {
	events []Event
	grown  int // capacity doublings performed
}

func newEventTable(initial int) *eventTable {
	if initial < 1 {
		initial = 1
	}

	return &eventTable{events: make([]Event, 0, initial)}
}

// ensure guarantees room for at least headroom more events, doubling
// the capacity until it fits.
func (t *eventTable) ensure(headroom int) {
	need := len(t.events) + headroom
	if need <= cap(t.events) {
		return
	}
	newCap := cap(t.events)
	for newCap < need {
		newCap *= 2
		t.grown++
	}
	grown := make([]Event, len(t.events), newCap)
	copy(grown, t.events)
	t.events = grown
}

func (t *eventTable) append(ev Event) {
	t.events = append(t.events, ev)
}

// trim returns the events in a buffer of exactly the used size,
// releasing the growth slack.
func (t *eventTable) trim() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	t.events = nil

	return out
}
