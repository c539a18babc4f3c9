package clock

import (
	"sort"
	"time"
)

type task struct {
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler holds delayed callbacks that are sampled once per frame against
// the game clock. It replaces OS timers so delayed effects always run at a
// fixed point in the frame, in a deterministic order.
//
// Cancellation is cooperative: callbacks are expected to capture a
// generation counter and no-op when a newer action has superseded them.
type Scheduler struct {
	tasks []task
	seq   uint64
}

// After registers fn to run once the clock reaches now+d.
func (s *Scheduler) After(now time.Time, d time.Duration, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, task{due: now.Add(d), seq: s.seq, fn: fn})
}

// RunDue executes every task whose deadline has passed, ordered by deadline
// then by registration order. Tasks registered by a running callback wait
// for the next frame.
func (s *Scheduler) RunDue(now time.Time) {
	var due []task
	rest := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.tasks = rest
	if len(due) == 0 {
		return
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending reports how many tasks are waiting.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}
