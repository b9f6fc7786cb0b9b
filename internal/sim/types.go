package sim

import "github.com/san-kum/gravnet/internal/body"

// Config holds the run parameters of a simulation. Every field is fixed
// for the whole run; there is no adaptive timestep and no rebalancing.
type Config struct {
	TimePeriod    float64
	Dt            float64
	Softening     float64
	Workers       int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		TimePeriod:    10.0,
		Dt:            0.1,
		Softening:     100.0,
		Workers:       1,
		ValidateState: true,
	}
}

// Iterations is the fixed iteration count: floor(TimePeriod / Dt).
func (c Config) Iterations() int {
	return int(c.TimePeriod / c.Dt)
}

// Result is the coordinator's view of a completed run.
type Result struct {
	// Final is the authoritative snapshot after the last iteration.
	Final body.Snapshot

	// History holds one acceleration pair per body per iteration,
	// iteration-major then body-index-minor.
	History []body.Accel

	Iterations  int
	EnergyDrift float64
}

// Observer receives the authoritative snapshot after each iteration.
// Observers run on the coordinator between iterations; they may read
// the snapshot but must not retain or mutate it.
type Observer interface {
	OnIteration(iter, total int, snap body.Snapshot)
}
