package simulation

import "fmt"

// Sampler produces one non-negative sample per call.
// gonum distuv distributions satisfy it directly.
type Sampler interface {
	Rand() float64
}

// SamplerFunc adapts a plain function to a Sampler
type SamplerFunc func() float64

// Rand calls f
func (f SamplerFunc) Rand() float64 {
	return f()
}

// Status is the occupancy state of a server: either Idle or Busy
type Status interface {
	status()
}

// Idle means no customer is present
type Idle struct{}

// Busy means one customer is in service with Remaining time left,
// and Waiting customers are queued behind it
type Busy struct {
	Remaining float64
	Waiting   int
}

func (Idle) status() {}
func (Busy) status() {}

// Queue models a single server with unbounded waiting room
type Queue struct {
	jobSize Sampler
	status  Status
}

// NewQueue creates an idle queue drawing service times from jobSize
func NewQueue(jobSize Sampler) *Queue {
	return &Queue{
		jobSize: jobSize,
		status:  Idle{},
	}
}

// Status returns the current occupancy state
func (q *Queue) Status() Status {
	return q.status
}

// TimeUntilCompletion returns the remaining service time of the customer in
// service. ok is false when the queue is idle.
func (q *Queue) TimeUntilCompletion() (remaining float64, ok bool) {
	if b, busy := q.status.(Busy); busy {
		return b.Remaining, true
	}
	return 0, false
}

// NumWaiting returns the number of customers queued behind the one in
// service. ok is false when the queue is idle.
func (q *Queue) NumWaiting() (waiting int, ok bool) {
	if b, busy := q.status.(Busy); busy {
		return b.Waiting, true
	}
	return 0, false
}

// Increment records an arrival. An arrival at an idle server enters service
// immediately with a freshly sampled service time.
func (q *Queue) Increment() {
	switch s := q.status.(type) {
	case Idle:
		q.status = Busy{Remaining: q.jobSize.Rand()}
	case Busy:
		q.status = Busy{Remaining: s.Remaining, Waiting: s.Waiting + 1}
	}
}

// Elapse advances the queue by t. t must be positive and must not pass the
// completion of the customer in service; Elapse panics otherwise.
func (q *Queue) Elapse(t float64) {
	if !(t > 0) {
		panic(fmt.Sprintf("invalid time %v", t))
	}

	s, busy := q.status.(Busy)
	if !busy {
		return
	}
	if t > s.Remaining {
		panic(fmt.Sprintf("invalid time %v for time until completion %v", t, s.Remaining))
	}

	switch {
	case t < s.Remaining:
		q.status = Busy{Remaining: s.Remaining - t, Waiting: s.Waiting}
	case s.Waiting == 0:
		q.status = Idle{}
	default:
		q.status = Busy{Remaining: q.jobSize.Rand(), Waiting: s.Waiting - 1}
	}
}
