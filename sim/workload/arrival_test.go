package workload

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMany(s ArrivalSampler, seed int64, n int) []int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int64, n)
	for i := range out {
		out[i] = s.SampleIAT(rng)
	}
	return out
}

func meanAndCV(xs []int64) (float64, float64) {
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	mean := sum / float64(len(xs))
	var sq float64
	for _, x := range xs {
		d := float64(x) - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq/float64(len(xs))) / mean
}

func TestPoissonSampler_MeanIAT_MatchesRate(t *testing.T) {
	// GIVEN a Poisson sampler at one customer every 100 ticks
	s, err := NewArrivalSampler("poisson", 0.01, 0)
	require.NoError(t, err)

	// WHEN 10000 IATs are sampled
	mean, _ := meanAndCV(sampleMany(s, 42, 10000))

	// THEN the mean is within 5% of 1/rate
	assert.InDelta(t, 100.0, mean, 5.0)
}

func TestGammaSampler_HighCV_ProducesBurstierArrivals(t *testing.T) {
	// GIVEN Gamma (CV=3) and Poisson samplers at the same rate
	gamma, err := NewArrivalSampler("gamma", 0.01, 3)
	require.NoError(t, err)
	poisson, err := NewArrivalSampler("poisson", 0.01, 0)
	require.NoError(t, err)

	// WHEN sampled
	_, gammaCV := meanAndCV(sampleMany(gamma, 7, 20000))
	_, poissonCV := meanAndCV(sampleMany(poisson, 7, 20000))

	// THEN Gamma arrivals are markedly more variable
	assert.Greater(t, gammaCV, 2.0)
	assert.Less(t, poissonCV, 1.2)
}

func TestGammaSampler_UnitCV_MeanMatchesRate(t *testing.T) {
	s, err := NewArrivalSampler("gamma", 0.01, 0)
	require.NoError(t, err)
	require.IsType(t, &GammaSampler{}, s)

	mean, _ := meanAndCV(sampleMany(s, 3, 20000))
	assert.InDelta(t, 100.0, mean, 5.0)
}

func TestGammaSampler_ExtremeCV_FallsBackToPoisson(t *testing.T) {
	s, err := NewArrivalSampler("gamma", 0.01, 20)
	require.NoError(t, err)
	assert.IsType(t, &PoissonSampler{}, s)
}

func TestSamplers_AllPositive(t *testing.T) {
	for _, process := range []string{"poisson", "gamma", "constant"} {
		t.Run(process, func(t *testing.T) {
			// GIVEN a rate far above one customer per tick
			s, err := NewArrivalSampler(process, 50, 2)
			require.NoError(t, err)

			// THEN every IAT is still at least one tick
			for _, iat := range sampleMany(s, 1, 1000) {
				assert.GreaterOrEqual(t, iat, int64(1))
			}
		})
	}
}

func TestConstantSampler_ExactIntervals(t *testing.T) {
	s, err := NewArrivalSampler("constant", 0.25, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 4, 4}, sampleMany(s, 1, 3))
	assert.Equal(t, sampleMany(s, 1, 3), sampleMany(s, 99, 3))
}

func TestNewArrivalSampler_Errors(t *testing.T) {
	_, err := NewArrivalSampler("poisson", 0, 0)
	assert.Error(t, err)
	_, err = NewArrivalSampler("bursty", 1, 0)
	assert.Error(t, err)
}
