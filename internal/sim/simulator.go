package sim

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/gravnet/internal/body"
	"github.com/san-kum/gravnet/internal/comm"
	"github.com/san-kum/gravnet/internal/metrics"
	"github.com/san-kum/gravnet/internal/partition"
	"github.com/san-kum/gravnet/internal/physics"
)

// Simulator drives the distributed iteration loop. Each run spawns
// cfg.Workers ranks that move in lockstep through a
// broadcast/compute/gather cycle; the coordinator (rank 0) then
// integrates every body and records its acceleration.
type Simulator struct {
	cfg       Config
	observers []Observer
}

func New(cfg Config) *Simulator {
	return &Simulator{cfg: cfg}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run executes the full simulation over the initial snapshot and
// returns the coordinator's result. The snapshot is advanced in place.
//
// The trajectory is deterministic for a fixed initial snapshot and
// worker count: every rank computes against the same broadcast copy in
// ascending source order, and gathered partials are reassembled in rank
// order.
func (s *Simulator) Run(ctx context.Context, bodies body.Snapshot) (*Result, error) {
	if err := s.validateConfig(len(bodies)); err != nil {
		return nil, err
	}

	iterations := s.cfg.Iterations()
	eps2 := s.cfg.Softening * s.cfg.Softening

	ranges, err := partition.Ranges(len(bodies), s.cfg.Workers)
	if err != nil {
		return nil, err
	}

	result := &Result{
		History:    make([]body.Accel, 0, iterations*len(bodies)),
		Iterations: iterations,
	}

	initialEnergy := metrics.Energy(bodies, s.cfg.Softening)

	c := comm.New(s.cfg.Workers)

	var wg sync.WaitGroup
	for rank := 1; rank < s.cfg.Workers; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			s.workerLoop(c, rank, ranges[rank], iterations, eps2)
		}(rank)
	}
	defer wg.Wait()

	for iter := 0; iter < iterations; iter++ {
		select {
		case <-ctx.Done():
			c.Abort()
			return nil, &SimError{Iteration: iter, Wrapped: ErrCanceled}
		default:
		}

		snap := c.Bcast(comm.Root, bodies)
		local := physics.AccumulateRange(snap, ranges[comm.Root], eps2)
		c.Gather(comm.Root, local, bodies)

		for i := range bodies {
			physics.Integrate(&bodies[i], s.cfg.Dt)
			result.History = append(result.History, body.Accel{AX: bodies[i].AX, AY: bodies[i].AY})
		}

		if s.cfg.ValidateState && !bodies.IsValid() {
			c.Abort()
			return nil, &SimError{Iteration: iter, Wrapped: ErrInvalidState}
		}

		for _, o := range s.observers {
			o.OnIteration(iter, iterations, bodies)
		}
	}

	result.Final = bodies

	finalEnergy := metrics.Energy(bodies, s.cfg.Softening)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	return result, nil
}

// workerLoop is one non-root rank. It never touches the authoritative
// snapshot: each iteration it computes on the private copy handed out
// by Bcast and ships its partial buffer back through Gather.
func (s *Simulator) workerLoop(c *comm.Comm, rank int, rng partition.Range, iterations int, eps2 float64) {
	for iter := 0; iter < iterations; iter++ {
		snap := c.Bcast(rank, nil)
		if snap == nil {
			return
		}
		local := physics.AccumulateRange(snap, rng, eps2)
		c.Gather(rank, local, nil)
	}
}

func (s *Simulator) validateConfig(bodyCount int) error {
	if s.cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", s.cfg.Dt)
	}
	if s.cfg.TimePeriod <= 0 {
		return fmt.Errorf("time period must be positive, got %f", s.cfg.TimePeriod)
	}
	if s.cfg.Softening < 0 {
		return fmt.Errorf("softening length must be non-negative, got %f", s.cfg.Softening)
	}
	return partition.Validate(bodyCount, s.cfg.Workers)
}
