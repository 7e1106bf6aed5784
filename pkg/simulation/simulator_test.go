package simulation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNewSamplesFirstArrival(t *testing.T) {
	sim := New(constant(5), constant(3))

	assert.Equal(t, 0.0, sim.Clock())
	assert.Equal(t, 0, sim.Count())
	assert.Equal(t, 5.0, sim.TimeUntilArrival())
	assert.Equal(t, Idle{}, sim.Queue().Status())
}

func TestStepFixedSamplers(t *testing.T) {
	sim := New(constant(5), constant(3))

	// arrival at 5 enters service until 8
	sim.Step()
	assert.Equal(t, 5.0, sim.Clock())
	assert.Equal(t, 0, sim.Count())
	assert.Equal(t, Busy{Remaining: 3, Waiting: 0}, sim.Queue().Status())
	assert.Equal(t, 5.0, sim.TimeUntilArrival())

	// completion at 8, next arrival at 10
	sim.Step()
	assert.Equal(t, 8.0, sim.Clock())
	assert.Equal(t, 1, sim.Count())
	assert.Equal(t, Idle{}, sim.Queue().Status())
	assert.Equal(t, 2.0, sim.TimeUntilArrival())

	// arrival at 10
	sim.Step()
	assert.Equal(t, 10.0, sim.Clock())
	assert.Equal(t, 1, sim.Count())
	waiting, ok := sim.Queue().NumWaiting()
	require.True(t, ok)
	assert.Equal(t, 0, waiting)
	assert.Equal(t, 5.0, sim.TimeUntilArrival())
}

func TestStepQueueBuildsUp(t *testing.T) {
	sim := New(constant(1), constant(10))

	for i := 0; i < 4; i++ {
		sim.Step()
	}

	assert.Equal(t, 4.0, sim.Clock())
	assert.Equal(t, 0, sim.Count())
	assert.Equal(t, Busy{Remaining: 7, Waiting: 3}, sim.Queue().Status())
}

func TestStepTieTakesArrivalBranch(t *testing.T) {
	// service always 3; the third arrival lands exactly on the first completion
	tie := New(sequence(1, 1, 2), constant(3))
	race := New(sequence(1, 1, 2.5), constant(3))

	for i := 0; i < 3; i++ {
		tie.Step()
		race.Step()
	}

	assert.Equal(t, 4.0, tie.Clock())
	assert.Equal(t, 0, tie.Count(), "the coinciding completion is not counted")
	assert.Equal(t, Busy{Remaining: 3, Waiting: 1}, tie.Queue().Status())
	assert.Equal(t, 1.0, tie.TimeUntilArrival())

	assert.Equal(t, 4.0, race.Clock())
	assert.Equal(t, 1, race.Count())
	assert.Equal(t, Busy{Remaining: 3, Waiting: 0}, race.Queue().Status())
	assert.Equal(t, 0.5, race.TimeUntilArrival())

	tieWaiting, _ := tie.Queue().NumWaiting()
	raceWaiting, _ := race.Queue().NumWaiting()
	assert.Equal(t, raceWaiting+1, tieWaiting)
}

func TestStepTieOnIdleCompletion(t *testing.T) {
	sim := New(constant(3), constant(3))

	sim.Step()
	sim.Step()

	assert.Equal(t, 6.0, sim.Clock())
	assert.Equal(t, 0, sim.Count())
	assert.Equal(t, Busy{Remaining: 3, Waiting: 0}, sim.Queue().Status())
}

func TestRunRecordsStateBeforeEachStep(t *testing.T) {
	sim := New(constant(5), constant(3))

	points := sim.Run(3)

	require.Len(t, points, 3)
	assert.Equal(t, TimePoint{Clock: 0, Event: EventTypeArrival, Advance: 5}, points[0])
	assert.Equal(t, TimePoint{Clock: 5, Busy: true, Event: EventTypeDeparture, Advance: 3}, points[1])
	assert.Equal(t, TimePoint{Clock: 8, Departures: 1, Event: EventTypeArrival, Advance: 2}, points[2])

	assert.Equal(t, 10.0, sim.Clock())
	assert.Equal(t, TimePoint{Clock: 10, Departures: 1, Busy: true}, sim.Snapshot())
}

func newStochastic(seed uint64) *Simulation {
	src := rand.NewPCG(seed, seed+1)
	return New(
		distuv.Exponential{Rate: 1.0 / 7.0, Src: src},
		distuv.LogNormal{Mu: 1.5, Sigma: 0.5, Src: src},
	)
}

func TestStochasticInvariants(t *testing.T) {
	sim := newStochastic(42)
	arrivals := 0
	prevClock := sim.Clock()

	for i := 0; i < 5000; i++ {
		p := sim.Snapshot()
		if p.Busy {
			remaining, _ := sim.Queue().TimeUntilCompletion()
			require.Greater(t, remaining, 0.0)
			require.GreaterOrEqual(t, p.Waiting, 0)
		}

		count := sim.Count()
		sim.Step()
		if sim.Count() == count {
			arrivals++
		}

		require.GreaterOrEqual(t, sim.Clock(), prevClock)
		require.Greater(t, sim.TimeUntilArrival(), 0.0)
		prevClock = sim.Clock()

		require.Equal(t, arrivals, sim.Count()+sim.Snapshot().InSystem(), "step %d", i)
	}
}

func TestStochasticRunIsReproducible(t *testing.T) {
	a := newStochastic(7).Run(200)
	b := newStochastic(7).Run(200)

	assert.Equal(t, a, b)
}
