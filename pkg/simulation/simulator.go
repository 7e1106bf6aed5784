package simulation

// Simulation drives a Queue with next-event time advance: every step jumps
// the clock straight to the next arrival or service completion
type Simulation struct {
	interArrival     Sampler
	clock            float64
	count            int
	queue            *Queue
	timeUntilArrival float64
}

// New creates a simulation at time zero with an idle queue and the first
// arrival already sampled
func New(interArrival, jobSize Sampler) *Simulation {
	return &Simulation{
		interArrival:     interArrival,
		queue:            NewQueue(jobSize),
		timeUntilArrival: interArrival.Rand(),
	}
}

// Step processes exactly one event. When the next arrival coincides with a
// service completion the arrival branch is taken and the completion is not
// counted.
func (s *Simulation) Step() {
	s.step()
}

// step performs one event and reports which branch was taken and how far
// the clock moved
func (s *Simulation) step() (EventType, float64) {
	t := s.timeUntilArrival
	if remaining, ok := s.queue.TimeUntilCompletion(); ok && remaining < t {
		t = remaining
	}

	s.clock += t
	s.queue.Elapse(t)

	if s.timeUntilArrival == t {
		s.queue.Increment()
		s.timeUntilArrival = s.interArrival.Rand()
		return EventTypeArrival, t
	}

	s.count++
	s.timeUntilArrival -= t
	return EventTypeDeparture, t
}

// Run performs steps events, recording the state observed before each one
func (s *Simulation) Run(steps int) []TimePoint {
	points := make([]TimePoint, 0, steps)
	for i := 0; i < steps; i++ {
		point := s.Snapshot()
		point.Event, point.Advance = s.step()
		points = append(points, point)
	}
	return points
}

// Snapshot returns the current observable state
func (s *Simulation) Snapshot() TimePoint {
	waiting, busy := s.queue.NumWaiting()
	return TimePoint{
		Clock:      s.clock,
		Departures: s.count,
		Busy:       busy,
		Waiting:    waiting,
	}
}

// Clock returns the simulated time
func (s *Simulation) Clock() float64 {
	return s.clock
}

// Count returns the number of service completions counted so far
func (s *Simulation) Count() int {
	return s.count
}

// Queue returns the simulated server
func (s *Simulation) Queue() *Queue {
	return s.queue
}

// TimeUntilArrival returns the time left before the next arrival
func (s *Simulation) TimeUntilArrival() float64 {
	return s.timeUntilArrival
}
