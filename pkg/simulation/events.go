package simulation

// EventType defines the type of event processed by a simulation step
type EventType string

const (
	EventTypeArrival   EventType = "arrival"
	EventTypeDeparture EventType = "departure"
)

// TimePoint represents the observable state of the simulation before a step,
// together with the event that step went on to process
type TimePoint struct {
	Clock      float64
	Departures int
	Busy       bool
	Waiting    int

	// Event and Advance describe the step taken from this state
	Event   EventType
	Advance float64
}

// InSystem returns the number of customers in service or waiting
func (p TimePoint) InSystem() int {
	if !p.Busy {
		return 0
	}
	return p.Waiting + 1
}
