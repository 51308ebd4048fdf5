package catch

import "time"

// Feedback is a transient catch pop-up.
type Feedback struct {
	ItemID int
	X      float64
	Points int
	At     time.Time
}

// FeedbackQueue holds pop-ups until they are older than the TTL.
// Expiry is evaluated against frame timestamps, so it never affects game state.
type FeedbackQueue struct {
	ttl    time.Duration
	events []Feedback
}

// NewFeedbackQueue creates a queue whose entries live for ttl.
func NewFeedbackQueue(ttl time.Duration) FeedbackQueue {
	return FeedbackQueue{ttl: ttl}
}

// Push appends a pop-up.
func (q *FeedbackQueue) Push(f Feedback) {
	q.events = append(q.events, f)
}

// Expire drops every entry emitted ttl or more before now.
func (q *FeedbackQueue) Expire(now time.Time) {
	kept := q.events[:0]
	for _, f := range q.events {
		if now.Sub(f.At) < q.ttl {
			kept = append(kept, f)
		}
	}
	q.events = kept
}

// Active returns a copy of the pending pop-ups, oldest first.
func (q *FeedbackQueue) Active() []Feedback {
	out := make([]Feedback, len(q.events))
	copy(out, q.events)
	return out
}

// Latest returns the most recent pop-up, if any.
func (q *FeedbackQueue) Latest() (Feedback, bool) {
	if len(q.events) == 0 {
		return Feedback{}, false
	}
	return q.events[len(q.events)-1], true
}

// Clear drops all entries.
func (q *FeedbackQueue) Clear() {
	q.events = q.events[:0]
}
