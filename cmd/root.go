package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/checkout-sim/sim"
	"github.com/inference-sim/checkout-sim/sim/metrics"
	"github.com/inference-sim/checkout-sim/sim/trace"
	"github.com/inference-sim/checkout-sim/sim/workload"
)

var (
	// CLI flags for the run command
	configPath  string // Store config file (YAML or JSON)
	eventsPath  string // Event script to replay
	logLevel    string // Log verbosity level
	horizon     int64  // Last tick to simulate (0 = until the event queue drains)
	resultsPath string // Optional JSON output for the final stats
	traceLevel  string // Decision trace level
	metricsPath string // Optional Prometheus text dump

	// Root-level flags
	envFile string // .env file with CHECKOUT_* defaults
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "checkout-sim",
	Short: "Discrete-event simulator for multi-line store checkouts",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyEnvDefaults(cmd, envFile)
	},
}

// runOptions is the resolved configuration of a single run.
type runOptions struct {
	ConfigPath  string
	EventsPath  string
	Horizon     int64
	ResultsPath string
	TraceLevel  string
	MetricsPath string
}

// runSimulation loads the store and events, runs the simulation and writes
// the report to out.
func runSimulation(opts runOptions, out io.Writer) (*sim.Simulator, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("store config not provided (--config or CHECKOUT_CONFIG)")
	}
	if opts.EventsPath == "" {
		return nil, fmt.Errorf("event file not provided (--events or CHECKOUT_EVENTS)")
	}
	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return nil, fmt.Errorf("unknown trace level %q", opts.TraceLevel)
	}

	storeCfg, err := sim.LoadStoreConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	events, err := workload.LoadEvents(opts.EventsPath)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Starting simulation: %d regular, %d express, %d self-serve lines (capacity %d), %d events",
		storeCfg.RegularCount, storeCfg.ExpressCount, storeCfg.SelfServeCount, storeCfg.LineCapacity, len(events))

	metrics.Register()
	metrics.Reset()

	s, err := sim.NewSimulator(sim.SimConfig{
		Store:   storeCfg,
		Horizon: opts.Horizon,
		Trace:   trace.TraceConfig{Level: trace.TraceLevel(opts.TraceLevel)},
	})
	if err != nil {
		return nil, err
	}
	if err := s.ScheduleAll(events); err != nil {
		return nil, err
	}
	s.Run()

	s.Stats.Print(out)
	if s.Trace != nil {
		trace.Summarize(s.Trace).Print(out)
	}
	if opts.ResultsPath != "" {
		if err := s.Stats.SaveResults(opts.ResultsPath); err != nil {
			return nil, err
		}
	}
	if opts.MetricsPath != "" {
		f, err := os.Create(opts.MetricsPath)
		if err != nil {
			return nil, fmt.Errorf("creating metrics file: %w", err)
		}
		defer f.Close()
		if err := metrics.WriteText(f); err != nil {
			return nil, fmt.Errorf("writing metrics: %w", err)
		}
	}
	return s, nil
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay an event file against a store",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		_, err = runSimulation(runOptions{
			ConfigPath:  configPath,
			EventsPath:  eventsPath,
			Horizon:     horizon,
			ResultsPath: resultsPath,
			TraceLevel:  traceLevel,
			MetricsPath: metricsPath,
		}, os.Stdout)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "File with CHECKOUT_* defaults (ignored if missing)")

	runCmd.Flags().StringVar(&configPath, "config", "", "Store config file (YAML or JSON)")
	runCmd.Flags().StringVar(&eventsPath, "events", "", "Event file to replay")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Int64Var(&horizon, "horizon", 0, "Last tick to simulate (0 = run until no events remain)")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Write final stats as JSON to this file")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&metricsPath, "metrics-out", "", "Write Prometheus metrics in text format to this file")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
