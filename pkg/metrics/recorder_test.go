package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sherine-k/queuesim/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRun() ([]simulation.TimePoint, simulation.TimePoint) {
	constant := func(v float64) simulation.SamplerFunc {
		return func() float64 { return v }
	}
	sim := simulation.New(constant(5), constant(3))
	points := sim.Run(3)
	return points, sim.Snapshot()
}

func TestRecorderRecord(t *testing.T) {
	r := NewRecorder("test-run")
	points, final := fixedRun()

	r.Record(points, final)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.counters[StepsTotal]))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.counters[ArrivalsTotal]))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.counters[DeparturesTotal]))
	assert.Equal(t, 10.0, testutil.ToFloat64(r.gauges[Clock]))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.gauges[Waiting]))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.gauges[Busy]))
	assert.Equal(t, 1, testutil.CollectAndCount(r.histos[StepAdvance]))

	count, err := testutil.GatherAndCount(r.Gatherer())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestRecorderIdleFinalState(t *testing.T) {
	r := NewRecorder("idle")

	r.Record(nil, simulation.TimePoint{Clock: 4})

	assert.Equal(t, 0.0, testutil.ToFloat64(r.counters[StepsTotal]))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.gauges[Clock]))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.gauges[Busy]))
}

func TestRecorderWriteTextfile(t *testing.T) {
	r := NewRecorder("textfile-run")
	points, final := fixedRun()
	r.Record(points, final)

	path := filepath.Join(t.TempDir(), "queuesim.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `queuesim_arrivals_total{run_id="textfile-run"} 2`)
	assert.Contains(t, string(data), `queuesim_clock{run_id="textfile-run"} 10`)
}

func TestRecorderWriteTextfileError(t *testing.T) {
	r := NewRecorder("broken")

	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "queuesim.prom"))
	assert.ErrorContains(t, err, "failed to write metrics")
}
