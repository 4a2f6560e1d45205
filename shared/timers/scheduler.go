// Package timers provides a frame-driven one-shot timer service. Time only
// moves when the owner calls Advance, so the same scheduler works under the
// ebiten game loop, the server tick loop and tests.
package timers

import (
	"github.com/flintgame/flint/shared/ability"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type timer struct {
	handle  ability.TimerHandle
	delay   float64
	elapsed float64
	tween   *gween.Tween
	fn      func()
	dead    bool
}

// Scheduler implements ability.TimerService. It is not safe for concurrent
// use; callbacks run synchronously inside Advance.
type Scheduler struct {
	next    ability.TimerHandle
	pending []*timer
	firing  []*timer
}

var _ ability.TimerService = (*Scheduler)(nil)

func New() *Scheduler {
	return &Scheduler{}
}

// ScheduleOnce runs fn once delay seconds of Advance time have passed.
// A non-positive delay fires on the next Advance.
func (s *Scheduler) ScheduleOnce(delay float64, fn func()) ability.TimerHandle {
	if delay < 0 {
		delay = 0
	}
	s.next++
	s.pending = append(s.pending, &timer{
		handle: s.next,
		delay:  delay,
		tween:  gween.New(0, float32(delay), float32(delay), ease.Linear),
		fn:     fn,
	})
	return s.next
}

// Cancel drops a pending timer. Unknown, fired and zero handles are ignored.
func (s *Scheduler) Cancel(h ability.TimerHandle) {
	if h == 0 {
		return
	}
	for i, t := range s.pending {
		if t.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	// A callback may cancel a timer that finished in the same Advance.
	for _, t := range s.firing {
		if t.handle == h {
			t.dead = true
		}
	}
}

// Advance moves every pending timer forward by dt seconds and fires the ones
// that finished, in the order they were scheduled.
func (s *Scheduler) Advance(dt float64) {
	if len(s.pending) == 0 {
		return
	}

	var finished []*timer
	kept := s.pending[:0]
	for _, t := range s.pending {
		t.elapsed += dt
		if _, done := t.tween.Set(float32(t.elapsed)); done {
			finished = append(finished, t)
			continue
		}
		kept = append(kept, t)
	}
	s.pending = kept

	s.firing = finished
	for _, t := range finished {
		if !t.dead {
			t.fn()
		}
	}
	s.firing = nil
}

// Remaining returns the seconds left on a pending timer, or 0.
func (s *Scheduler) Remaining(h ability.TimerHandle) float64 {
	for _, t := range s.pending {
		if t.handle == h {
			return t.delay - t.elapsed
		}
	}
	return 0
}

// Pending returns the number of timers that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Clear drops every pending timer without running it.
func (s *Scheduler) Clear() {
	s.pending = nil
}
