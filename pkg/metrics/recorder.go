package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sherine-k/queuesim/pkg/simulation"
)

const (
	ArrivalsTotal   = "queuesim_arrivals_total"
	DeparturesTotal = "queuesim_departures_total"
	StepsTotal      = "queuesim_steps_total"
	Clock           = "queuesim_clock"
	Waiting         = "queuesim_waiting"
	Busy            = "queuesim_busy"
	StepAdvance     = "queuesim_step_advance"
)

// Recorder exposes the progress of one simulation run as prometheus metrics
type Recorder struct {
	registry *prometheus.Registry
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Histogram
}

// NewRecorder creates a recorder on its own registry, labelling every metric
// with runID
func NewRecorder(runID string) *Recorder {
	labels := prometheus.Labels{"run_id": runID}

	arrivals := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        ArrivalsTotal,
		Help:        "Steps that admitted an arrival.",
		ConstLabels: labels,
	})
	departures := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        DeparturesTotal,
		Help:        "Steps that counted a service completion.",
		ConstLabels: labels,
	})
	steps := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        StepsTotal,
		Help:        "Simulation steps performed.",
		ConstLabels: labels,
	})
	clock := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        Clock,
		Help:        "Simulated clock after the last step.",
		ConstLabels: labels,
	})
	waiting := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        Waiting,
		Help:        "Customers waiting behind the one in service.",
		ConstLabels: labels,
	})
	busy := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        Busy,
		Help:        "1 when the server is busy, 0 when idle.",
		ConstLabels: labels,
	})
	advance := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        StepAdvance,
		Help:        "Simulated time advanced by a single step.",
		ConstLabels: labels,
		Buckets:     prometheus.ExponentialBuckets(0.25, 2, 10),
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(arrivals, departures, steps, clock, waiting, busy, advance)

	return &Recorder{
		registry: registry,
		counters: map[string]prometheus.Counter{
			ArrivalsTotal:   arrivals,
			DeparturesTotal: departures,
			StepsTotal:      steps,
		},
		gauges: map[string]prometheus.Gauge{
			Clock:   clock,
			Waiting: waiting,
			Busy:    busy,
		},
		histos: map[string]prometheus.Histogram{
			StepAdvance: advance,
		},
	}
}

// Record accounts for the steps described by points and sets the gauges
// from final, the state after the last of them
func (r *Recorder) Record(points []simulation.TimePoint, final simulation.TimePoint) {
	for _, p := range points {
		r.counters[StepsTotal].Inc()
		switch p.Event {
		case simulation.EventTypeArrival:
			r.counters[ArrivalsTotal].Inc()
		case simulation.EventTypeDeparture:
			r.counters[DeparturesTotal].Inc()
		}
		r.histos[StepAdvance].Observe(p.Advance)
	}

	r.gauges[Clock].Set(final.Clock)
	r.gauges[Waiting].Set(float64(final.Waiting))
	if final.Busy {
		r.gauges[Busy].Set(1)
	} else {
		r.gauges[Busy].Set(0)
	}
}

// Gatherer returns the registry holding the recorded metrics
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics in text exposition format to filename,
// ready for a node exporter textfile collector
func (r *Recorder) WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", filename, err)
	}
	return nil
}
