// Package distribution builds samplers for the simulation from configured
// distributions.
package distribution

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sherine-k/queuesim/pkg/config"
	"github.com/sherine-k/queuesim/pkg/simulation"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns the random source shared by all samplers of a run.
// A zero seed picks one from the current time.
func NewSource(seed uint64) (rand.Source, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15), seed
}

// New creates a sampler for d drawing from src
func New(d config.Distribution, src rand.Source) (simulation.Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	switch d.Kind {
	case config.KindExponential:
		return distuv.Exponential{Rate: d.Rate, Src: src}, nil
	case config.KindLogNormal:
		return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma, Src: src}, nil
	case config.KindGamma:
		return distuv.Gamma{Alpha: d.Alpha, Beta: d.Beta, Src: src}, nil
	case config.KindUniform:
		return distuv.Uniform{Min: d.Min, Max: d.Max, Src: src}, nil
	case config.KindWeibull:
		return distuv.Weibull{K: d.K, Lambda: d.Lambda, Src: src}, nil
	case config.KindConstant:
		value := d.Value
		return simulation.SamplerFunc(func() float64 { return value }), nil
	case config.KindCron:
		return NewCron(d.CronSchedule, d.Start, d.Unit)
	}

	return nil, fmt.Errorf("unknown kind %q", d.Kind)
}
