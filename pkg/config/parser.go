package config

import (
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// CronParser parses the five-field schedules accepted for cron arrivals
var CronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// LoadConfig loads and parses the configuration file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML configuration, filling in defaults for anything left out
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Steps == 0 {
		c.Steps = DefaultSteps
	}
	c.InterArrival.applyDefaults()
	c.Service.applyDefaults()
}

func (d *Distribution) applyDefaults() {
	if d.Kind != KindCron {
		return
	}
	if d.Unit == 0 {
		d.Unit = DefaultUnit
	}
	if d.Start.IsZero() {
		d.Start = DefaultStart
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative")
	}

	if err := c.InterArrival.Validate(); err != nil {
		return fmt.Errorf("interArrival: %w", err)
	}

	if err := c.Service.Validate(); err != nil {
		return fmt.Errorf("service: %w", err)
	}

	return nil
}

// Validate checks that the parameters of d describe a distribution over
// non-negative reals
func (d *Distribution) Validate() error {
	switch d.Kind {
	case KindExponential:
		if d.Rate <= 0 {
			return fmt.Errorf("exponential rate must be greater than 0")
		}
	case KindLogNormal:
		if d.Sigma <= 0 {
			return fmt.Errorf("lognormal sigma must be greater than 0")
		}
	case KindGamma:
		if d.Alpha <= 0 || d.Beta <= 0 {
			return fmt.Errorf("gamma alpha and beta must be greater than 0")
		}
	case KindUniform:
		if d.Min < 0 {
			return fmt.Errorf("uniform min must not be negative")
		}
		if d.Max <= d.Min {
			return fmt.Errorf("uniform max must be greater than min")
		}
	case KindWeibull:
		if d.K <= 0 || d.Lambda <= 0 {
			return fmt.Errorf("weibull k and lambda must be greater than 0")
		}
	case KindConstant:
		if d.Value <= 0 {
			return fmt.Errorf("constant value must be greater than 0")
		}
	case KindCron:
		if d.CronSchedule == "" {
			return fmt.Errorf("cronSchedule is required for cron distributions")
		}
		if _, err := CronParser.Parse(d.CronSchedule); err != nil {
			return fmt.Errorf("invalid cronSchedule %q: %w", d.CronSchedule, err)
		}
		if d.Unit <= 0 {
			return fmt.Errorf("unit must be greater than 0")
		}
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", d.Kind)
	}

	return nil
}
