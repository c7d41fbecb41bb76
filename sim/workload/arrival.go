package workload

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ArrivalSampler generates inter-arrival times between customers.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time in ticks.
	// Always returns a positive value (>= 1).
	SampleIAT(rng *rand.Rand) int64
}

// PoissonSampler generates exponentially-distributed inter-arrival times (CV=1).
type PoissonSampler struct {
	rate float64 // customers per tick
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) int64 {
	return atLeastOne(rng.ExpFloat64() / s.rate)
}

// GammaSampler generates Gamma-distributed inter-arrival times.
// CV > 1 produces rush-hour bursts separated by quiet spells.
type GammaSampler struct {
	shape float64 // 1/CV²
	scale float64 // CV²/rate in ticks
}

func (s *GammaSampler) SampleIAT(rng *rand.Rand) int64 {
	return atLeastOne(gammaRand(rng, s.shape, s.scale))
}

// gammaRand samples Gamma(shape, scale) with Marsaglia-Tsang.
// For shape < 1: Gamma(shape) = Gamma(shape+1) * U^(1/shape).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// ConstantSampler spaces customers evenly.
type ConstantSampler struct {
	interval int64
}

func (s *ConstantSampler) SampleIAT(_ *rand.Rand) int64 {
	return s.interval
}

func atLeastOne(x float64) int64 {
	iat := int64(x)
	if iat < 1 {
		return 1
	}
	return iat
}

// NewArrivalSampler creates a sampler by process name ("poisson", "gamma" or
// "constant"). rate is customers per tick and must be positive. cv is only
// read by "gamma"; a non-positive cv means 1.
func NewArrivalSampler(process string, rate, cv float64) (ArrivalSampler, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("arrival rate must be positive, got %f", rate)
	}
	switch process {
	case "", "poisson":
		return &PoissonSampler{rate: rate}, nil
	case "gamma":
		if cv <= 0 {
			cv = 1.0
		}
		shape := 1.0 / (cv * cv)
		if shape < 0.01 {
			logrus.Warnf("Gamma shape %.4f (CV=%.1f) is very small; falling back to Poisson", shape, cv)
			return &PoissonSampler{rate: rate}, nil
		}
		return &GammaSampler{shape: shape, scale: cv * cv / rate}, nil
	case "constant":
		interval := int64(1 / rate)
		if interval < 1 {
			interval = 1
		}
		return &ConstantSampler{interval: interval}, nil
	default:
		return nil, fmt.Errorf("unknown arrival process %q", process)
	}
}
