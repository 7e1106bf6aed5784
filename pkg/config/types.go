package config

import (
	"time"
)

// Config represents the entire configuration for the queue simulator
type Config struct {
	InterArrival Distribution `yaml:"interArrival"`
	Service      Distribution `yaml:"service"`
	Steps        int          `yaml:"steps"`

	// Seed for the random source. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed,omitempty"`
}

// Distribution describes a source of non-negative samples
type Distribution struct {
	Kind DistributionKind `yaml:"kind"`

	// exponential
	Rate float64 `yaml:"rate,omitempty"`

	// lognormal
	Mu    float64 `yaml:"mu,omitempty"`
	Sigma float64 `yaml:"sigma,omitempty"`

	// gamma
	Alpha float64 `yaml:"alpha,omitempty"`
	Beta  float64 `yaml:"beta,omitempty"`

	// uniform
	Min float64 `yaml:"min,omitempty"`
	Max float64 `yaml:"max,omitempty"`

	// weibull
	K      float64 `yaml:"k,omitempty"`
	Lambda float64 `yaml:"lambda,omitempty"`

	// constant
	Value float64 `yaml:"value,omitempty"`

	// For cron-scheduled arrivals: samples are the gaps between successive
	// firings, measured in Unit
	CronSchedule string        `yaml:"cronSchedule,omitempty"`
	Unit         time.Duration `yaml:"unit,omitempty"`
	Start        time.Time     `yaml:"start,omitempty"`
}

// DistributionKind selects the sampling law of a Distribution
type DistributionKind string

const (
	KindExponential DistributionKind = "exponential"
	KindLogNormal   DistributionKind = "lognormal"
	KindGamma       DistributionKind = "gamma"
	KindUniform     DistributionKind = "uniform"
	KindWeibull     DistributionKind = "weibull"
	KindConstant    DistributionKind = "constant"
	KindCron        DistributionKind = "cron"
)

const (
	// DefaultSteps is the number of events simulated when none is configured
	DefaultSteps = 1000

	// DefaultUnit is the time unit of cron-scheduled samples
	DefaultUnit = time.Minute
)

// DefaultStart is the reference time cron schedules are evaluated from
var DefaultStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Default returns the reference model: exponential inter-arrival times with
// rate 1/7 and log-normal service times with location 1.5 and scale 0.5
func Default() *Config {
	return &Config{
		InterArrival: Distribution{Kind: KindExponential, Rate: 1.0 / 7.0},
		Service:      Distribution{Kind: KindLogNormal, Mu: 1.5, Sigma: 0.5},
		Steps:        DefaultSteps,
	}
}
