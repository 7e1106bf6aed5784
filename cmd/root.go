package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sherine-k/queuesim/pkg/chart"
	"github.com/sherine-k/queuesim/pkg/config"
	"github.com/sherine-k/queuesim/pkg/distribution"
	"github.com/sherine-k/queuesim/pkg/metrics"
	"github.com/sherine-k/queuesim/pkg/simulation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "QUEUESIM"

var rootCmd = NewRootCmd()

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// NewRootCmd builds the queuesim command with its own flag and environment bindings
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "queuesim",
		Short: "Single-server queue simulator",
		Long: `A CLI tool that simulates a single-server queue with random arrivals
and service times, using next-event time advance.

Each line of output shows the simulated clock, the number of service
completions counted so far and the number of customers waiting (None
when the server is idle), observed before every step.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, v)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Path to configuration file (default is the built-in M/G/1 model)")
	cmd.Flags().IntP("steps", "n", config.DefaultSteps, "Number of events to simulate")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().Bool("chart", false, "Show a chart of customers in the system")
	cmd.Flags().BoolP("summary", "s", false, "Show event summary")
	cmd.Flags().String("metrics-file", "", "Write prometheus metrics for the run to this file")

	v.BindPFlags(cmd.Flags())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// loadConfig reads the configuration file if one is given and applies flag
// and environment overrides on top of it
func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg := config.Default()
	if path := v.GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v.IsSet("steps") {
		cfg.Steps = v.GetInt("steps")
	}
	if v.IsSet("seed") {
		cfg.Seed = v.GetUint64("seed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, v *viper.Viper) error {
	logger.SetOutput(cmd.ErrOrStderr())

	// Load configuration
	cfg, err := loadConfig(v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	runID := uuid.NewString()
	src, seed := distribution.NewSource(cfg.Seed)

	interArrival, err := distribution.New(cfg.InterArrival, src)
	if err != nil {
		return fmt.Errorf("invalid inter-arrival distribution: %w", err)
	}
	service, err := distribution.New(cfg.Service, src)
	if err != nil {
		return fmt.Errorf("invalid service distribution: %w", err)
	}

	InfoLog("run %s: seed=%d steps=%d interArrival=%s service=%s",
		runID, seed, cfg.Steps, cfg.InterArrival.Kind, cfg.Service.Kind)

	// Create and run simulation
	sim := simulation.New(interArrival, service)
	points := sim.Run(cfg.Steps)
	final := sim.Snapshot()

	out := cmd.OutOrStdout()
	if err := chart.WriteTable(out, points); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	chartGen := chart.NewGenerator()

	if v.GetBool("chart") {
		fmt.Fprintln(out, chartGen.GenerateOccupancyChart(points))
	}

	if v.GetBool("summary") {
		fmt.Fprintln(out, chartGen.GenerateEventSummary(points, final))
	}

	if path := v.GetString("metrics-file"); path != "" {
		recorder := metrics.NewRecorder(runID)
		recorder.Record(points, final)
		if err := recorder.WriteTextfile(path); err != nil {
			ErrorLog("run %s: %v", runID, err)
			return err
		}
		InfoLog("run %s: metrics written to %s", runID, path)
	}

	InfoLog("run %s: finished at clock %s with count %d", runID, chart.FormatClock(final.Clock), final.Departures)

	return nil
}
