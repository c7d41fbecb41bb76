package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// GIVEN two PartitionedRNGs with the same seed
	a, b := NewPartitionedRNG(42), NewPartitionedRNG(42)

	// THEN each subsystem yields the same sequence
	for _, name := range []string{SubsystemArrivals, SubsystemBaskets, SubsystemClosures} {
		ra, rb := a.ForSubsystem(name), b.ForSubsystem(name)
		for i := 0; i < 10; i++ {
			assert.Equal(t, ra.Int63(), rb.Int63(), "subsystem %s draw %d", name, i)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// GIVEN one RNG whose baskets stream has been drained heavily
	p1 := NewPartitionedRNG(7)
	for i := 0; i < 1000; i++ {
		p1.ForSubsystem(SubsystemBaskets).Int63()
	}
	p2 := NewPartitionedRNG(7)

	// THEN the arrivals stream is unaffected
	assert.Equal(t, p2.ForSubsystem(SubsystemArrivals).Int63(), p1.ForSubsystem(SubsystemArrivals).Int63())
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	p := NewPartitionedRNG(1)
	assert.Same(t, p.ForSubsystem(SubsystemBaskets), p.ForSubsystem(SubsystemBaskets))
	assert.Equal(t, int64(1), p.Seed())
}

func TestFnv1a64_Deterministic(t *testing.T) {
	assert.Equal(t, fnv1a64("baskets"), fnv1a64("baskets"))
	assert.NotEqual(t, fnv1a64("baskets"), fnv1a64("closures"))
}
