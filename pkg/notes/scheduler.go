package notes

import "math"

// Scheduler releases the notes of a chart as simulated time passes.
type Scheduler struct {
	events  []Note
	next    int
	elapsed float64
	loop    bool
	length  float64
}

type NewSchedulerOptions struct {
	Chart *Chart
	// Loop restarts the chart once its duration has elapsed.
	Loop bool
}

func NewScheduler(opts NewSchedulerOptions) *Scheduler {
	s := &Scheduler{loop: opts.Loop}
	if opts.Chart != nil {
		s.events = opts.Chart.Events
		s.length = opts.Chart.Duration
	}
	return s
}

// Advance moves the clock forward by dt and returns every note whose onset
// has been reached, in order. A looping chart restarts at most once per call,
// so each note is returned at most twice however long dt is.
func (s *Scheduler) Advance(dt float64) []Note {
	if dt <= 0 || s.Done() {
		return nil
	}
	s.elapsed += dt

	due := s.release(nil)
	if !s.loop || s.next < len(s.events) || s.length <= 0 || s.elapsed < s.length {
		return due
	}
	s.elapsed = math.Mod(s.elapsed, s.length)
	s.next = 0
	return s.release(due)
}

// release appends the notes due in the current pass to due.
func (s *Scheduler) release(due []Note) []Note {
	for s.next < len(s.events) && s.events[s.next].Time <= s.elapsed {
		due = append(due, s.events[s.next])
		s.next++
	}
	return due
}

// Elapsed returns the position in the current pass of the chart.
func (s *Scheduler) Elapsed() float64 {
	return s.elapsed
}

// Done reports whether every note has been released and the chart does not
// loop.
func (s *Scheduler) Done() bool {
	if len(s.events) == 0 {
		return true
	}
	return !s.loop && s.next >= len(s.events)
}
