// Package metrics exposes Prometheus collectors for store activity.
// Collectors live on a private registry so simulations never touch the global one.
package metrics

import (
	"io"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const subsystem = "checkout"

var (
	admittedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "customers_admitted_total",
			Help:      "Count of customers that joined a line, by line kind.",
		},
		[]string{"line_kind"},
	)
	rejectedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "customers_rejected_total",
			Help:      "Count of arrivals for which no line could accept the customer.",
		},
	)
	displacedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "customers_displaced_total",
			Help:      "Count of customers evicted from a line when it closed, by line kind.",
		},
		[]string{"line_kind"},
	)
	checkoutDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "duration_ticks",
			Help:      "Checkout duration in ticks, by line kind.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"line_kind"},
	)
	queueLength = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "queue_length",
			Help:      "Customers currently in each line.",
		},
		[]string{"line", "line_kind"},
	)
)

// Registry holds every collector in this package.
var Registry = prometheus.NewRegistry()

var registerMetrics sync.Once

// Register all metrics.
func Register() {
	registerMetrics.Do(func() {
		Registry.MustRegister(admittedCounter)
		Registry.MustRegister(rejectedCounter)
		Registry.MustRegister(displacedCounter)
		Registry.MustRegister(checkoutDuration)
		Registry.MustRegister(queueLength)
	})
}

// Reset clears every collector. Used between simulation runs and in tests.
func Reset() {
	Register()
	admittedCounter.Reset()
	displacedCounter.Reset()
	checkoutDuration.Reset()
	queueLength.Reset()
	// Counters without labels cannot be reset; swap in a fresh one.
	Registry.Unregister(rejectedCounter)
	rejectedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "customers_rejected_total",
		Help:      "Count of arrivals for which no line could accept the customer.",
	})
	Registry.MustRegister(rejectedCounter)
}

// RecordAdmitted records a customer joining a line of the given kind.
func RecordAdmitted(lineKind string) {
	admittedCounter.WithLabelValues(lineKind).Inc()
}

// RecordRejected records an arrival that found no line.
func RecordRejected() {
	rejectedCounter.Inc()
}

// RecordDisplaced records n customers evicted by closing a line.
func RecordDisplaced(lineKind string, n int) {
	if n <= 0 {
		return
	}
	displacedCounter.WithLabelValues(lineKind).Add(float64(n))
}

// RecordCheckoutDuration records the duration of a started checkout.
func RecordCheckoutDuration(lineKind string, ticks int) {
	checkoutDuration.WithLabelValues(lineKind).Observe(float64(ticks))
}

// SetQueueLength records the current length of a line.
func SetQueueLength(line int, lineKind string, n int) {
	queueLength.WithLabelValues(strconv.Itoa(line), lineKind).Set(float64(n))
}

// WriteText writes every registered metric in the Prometheus text format.
func WriteText(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
