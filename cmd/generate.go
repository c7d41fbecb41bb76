package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/checkout-sim/sim/workload"
)

var (
	// CLI flags for the generate command
	seed         int64   // Seed for random workload generation
	numCustomers int     // Number of customers
	rate         float64 // Customers arriving per tick
	process      string  // Arrival process
	arrivalCV    float64 // Burstiness of gamma arrivals
	minItems     int     // Smallest basket
	maxItems     int     // Largest basket
	minItemTime  int     // Shortest item duration
	maxItemTime  int     // Longest item duration
	closures     int     // Random line closures
	numLines     int     // Lines eligible for closure
	outPath      string  // Output event file ("-" = stdout)
)

// generateEvents writes a synthetic event script for cfg to w.
func generateEvents(cfg workload.GeneratorConfig, w io.Writer) error {
	events, err := workload.Generate(cfg)
	if err != nil {
		return err
	}
	logrus.Infof("Generated %d events (seed=%d)", len(events), cfg.Seed)
	return workload.WriteEvents(w, events)
}

// generateCmd writes a synthetic event file
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic event file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := workload.GeneratorConfig{
			Seed:        seed,
			Customers:   numCustomers,
			Rate:        rate,
			Process:     process,
			CV:          arrivalCV,
			MinItems:    minItems,
			MaxItems:    maxItems,
			MinItemTime: minItemTime,
			MaxItemTime: maxItemTime,
			Closures:    closures,
			NumLines:    numLines,
		}
		if outPath == "" || outPath == "-" {
			return generateEvents(cfg, os.Stdout)
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating event file: %w", err)
		}
		defer f.Close()
		return generateEvents(cfg, f)
	},
}

func init() {
	generateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random workload generation")
	generateCmd.Flags().IntVar(&numCustomers, "customers", 100, "Number of customers")
	generateCmd.Flags().Float64Var(&rate, "rate", 0.2, "Customers arriving per tick")
	generateCmd.Flags().StringVar(&process, "process", "poisson", "Arrival process (poisson, gamma, constant)")
	generateCmd.Flags().Float64Var(&arrivalCV, "cv", 1.0, "Coefficient of variation for gamma arrivals")
	generateCmd.Flags().IntVar(&minItems, "min-items", 1, "Smallest basket")
	generateCmd.Flags().IntVar(&maxItems, "max-items", 12, "Largest basket")
	generateCmd.Flags().IntVar(&minItemTime, "min-item-time", 1, "Shortest item duration (ticks)")
	generateCmd.Flags().IntVar(&maxItemTime, "max-item-time", 5, "Longest item duration (ticks)")
	generateCmd.Flags().IntVar(&closures, "closures", 0, "Number of random line closures")
	generateCmd.Flags().IntVar(&numLines, "lines", 0, "Number of lines in the target store (for closures)")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "-", "Output event file (- for stdout)")
}
