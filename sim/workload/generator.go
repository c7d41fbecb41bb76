package workload

import (
	"fmt"
	"sort"

	"github.com/inference-sim/checkout-sim/sim"
)

// catalogue supplies item names for generated baskets.
var catalogue = []string{
	"apples", "bananas", "bread", "cheese", "chips", "coffee", "eggs",
	"gum", "milk", "pasta", "rice", "soap", "tea", "yogurt",
}

// GeneratorConfig describes a synthetic workload.
type GeneratorConfig struct {
	Seed        int64
	Customers   int     // number of customers to generate
	Rate        float64 // customers per tick
	Process     string  // "poisson" (default), "gamma" or "constant"
	CV          float64 // burstiness for "gamma"; <= 0 means 1
	MinItems    int     // smallest basket (>= 1)
	MaxItems    int     // largest basket (>= MinItems)
	MinItemTime int     // shortest item duration (>= 0)
	MaxItemTime int     // longest item duration (>= MinItemTime)
	Closures    int     // number of random line closures
	NumLines    int     // lines available to close (required when Closures > 0)
}

// Validate checks parameter ranges.
func (c GeneratorConfig) Validate() error {
	if c.Customers < 0 {
		return fmt.Errorf("customers must be non-negative, got %d", c.Customers)
	}
	if c.MinItems < 1 || c.MaxItems < c.MinItems {
		return fmt.Errorf("basket size range [%d, %d] is invalid", c.MinItems, c.MaxItems)
	}
	if c.MinItemTime < 0 || c.MaxItemTime < c.MinItemTime {
		return fmt.Errorf("item time range [%d, %d] is invalid", c.MinItemTime, c.MaxItemTime)
	}
	if c.Closures < 0 {
		return fmt.Errorf("closures must be non-negative, got %d", c.Closures)
	}
	if c.Closures > 0 && c.NumLines <= 0 {
		return fmt.Errorf("closures need a positive line count, got %d", c.NumLines)
	}
	return nil
}

// Generate produces arrivals (and optional closures) sorted by time.
// The same config always yields the same events, and arrival times depend
// only on the seed, rate and process.
func Generate(cfg GeneratorConfig) ([]sim.Event, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sampler, err := NewArrivalSampler(cfg.Process, cfg.Rate, cfg.CV)
	if err != nil {
		return nil, err
	}
	rngs := NewPartitionedRNG(cfg.Seed)
	arrivals := rngs.ForSubsystem(SubsystemArrivals)
	baskets := rngs.ForSubsystem(SubsystemBaskets)
	closing := rngs.ForSubsystem(SubsystemClosures)

	events := make([]sim.Event, 0, cfg.Customers+cfg.Closures)
	var clock int64
	for i := 0; i < cfg.Customers; i++ {
		if i > 0 {
			clock += sampler.SampleIAT(arrivals)
		}
		n := cfg.MinItems + baskets.Intn(cfg.MaxItems-cfg.MinItems+1)
		items := make([]sim.Item, n)
		for j := range items {
			d := cfg.MinItemTime + baskets.Intn(cfg.MaxItemTime-cfg.MinItemTime+1)
			items[j] = sim.MustItem(catalogue[baskets.Intn(len(catalogue))], d)
		}
		c := sim.NewCustomer(fmt.Sprintf("customer_%d", i), items)
		events = append(events, sim.NewCustomerArrivalEvent(clock, c))
	}
	for i := 0; i < cfg.Closures; i++ {
		var t int64
		if clock > 0 {
			t = closing.Int63n(clock + 1)
		}
		events = append(events, sim.NewLineClosedEvent(t, closing.Intn(cfg.NumLines)))
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp() < events[j].Timestamp()
	})
	return events, nil
}
