package sim

import (
	"context"
	"testing"

	"github.com/san-kum/gravnet/internal/body"
	"github.com/san-kum/gravnet/internal/gen"
)

func testBodies(n int) body.Snapshot {
	return gen.Bodies(gen.Params{
		Bodies:      n,
		InitialMass: 10000,
		VelScale:    100,
		Seed:        42,
	})
}

func TestRun_IterationCount(t *testing.T) {
	cfg := Config{TimePeriod: 10, Dt: 2, Softening: 1, Workers: 2}
	bodies := testBodies(4)

	result, err := New(cfg).Run(context.Background(), bodies)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Iterations != 5 {
		t.Errorf("expected 5 iterations, got %d", result.Iterations)
	}
	if len(result.History) != 5*4 {
		t.Errorf("expected %d history entries, got %d", 5*4, len(result.History))
	}
}

func TestRun_Deterministic(t *testing.T) {
	cfg := Config{TimePeriod: 1, Dt: 0.01, Softening: 0.1, Workers: 4}

	a, err := New(cfg).Run(context.Background(), testBodies(8))
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := New(cfg).Run(context.Background(), testBodies(8))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if len(a.History) != len(b.History) {
		t.Fatalf("history lengths differ: %d vs %d", len(a.History), len(b.History))
	}
	for i := range a.History {
		if a.History[i] != b.History[i] {
			t.Fatalf("history entry %d differs: %+v vs %+v", i, a.History[i], b.History[i])
		}
	}
}

func TestRun_WorkerCountIndependent(t *testing.T) {
	// Per-body summation runs over the full snapshot in ascending source
	// order regardless of how ranges are assigned, so the trajectory is
	// bit-identical across worker counts.
	base := Config{TimePeriod: 1, Dt: 0.05, Softening: 0.1}

	var ref *Result
	for _, workers := range []int{1, 2, 4, 8} {
		cfg := base
		cfg.Workers = workers
		result, err := New(cfg).Run(context.Background(), testBodies(8))
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if ref == nil {
			ref = result
			continue
		}
		for i := range ref.History {
			if ref.History[i] != result.History[i] {
				t.Fatalf("workers=%d: history entry %d diverged", workers, i)
			}
		}
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		bodies int
	}{
		{"zero dt", Config{TimePeriod: 1, Dt: 0, Workers: 1}, 4},
		{"negative dt", Config{TimePeriod: 1, Dt: -0.1, Workers: 1}, 4},
		{"zero time period", Config{TimePeriod: 0, Dt: 0.1, Workers: 1}, 4},
		{"negative softening", Config{TimePeriod: 1, Dt: 0.1, Softening: -1, Workers: 1}, 4},
		{"uneven split", Config{TimePeriod: 1, Dt: 0.1, Workers: 3}, 4},
		{"zero workers", Config{TimePeriod: 1, Dt: 0.1, Workers: 0}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg).Run(context.Background(), testBodies(tt.bodies))
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{TimePeriod: 10, Dt: 0.01, Softening: 1, Workers: 2}
	_, err := New(cfg).Run(ctx, testBodies(4))
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestRun_AccelerationsRecomputedEachIteration(t *testing.T) {
	// Accelerations are transient per-iteration results. Seeding the
	// initial snapshot with garbage acceleration must not leak into the
	// history.
	bodies := testBodies(2)
	for i := range bodies {
		bodies[i].AX = 1e30
		bodies[i].AY = 1e30
	}

	cfg := Config{TimePeriod: 0.1, Dt: 0.1, Softening: 1, Workers: 1}
	result, err := New(cfg).Run(context.Background(), bodies)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i, a := range result.History {
		if a.AX >= 1e29 || a.AY >= 1e29 {
			t.Errorf("history entry %d kept stale acceleration: %+v", i, a)
		}
	}
}

type countingObserver struct {
	calls int
	last  int
}

func (o *countingObserver) OnIteration(iter, total int, snap body.Snapshot) {
	o.calls++
	o.last = iter
}

func TestRun_ObserverSeesEveryIteration(t *testing.T) {
	cfg := Config{TimePeriod: 1, Dt: 0.1, Softening: 1, Workers: 2}
	sim := New(cfg)
	obs := &countingObserver{}
	sim.AddObserver(obs)

	if _, err := sim.Run(context.Background(), testBodies(4)); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if obs.calls != 10 {
		t.Errorf("observer called %d times, want 10", obs.calls)
	}
	if obs.last != 9 {
		t.Errorf("last iteration was %d, want 9", obs.last)
	}
}

func TestConfig_Iterations(t *testing.T) {
	tests := []struct {
		period, dt float64
		want       int
	}{
		{10, 2, 5},
		{10, 3, 3},
		{1, 0.01, 100},
	}

	for _, tt := range tests {
		cfg := Config{TimePeriod: tt.period, Dt: tt.dt}
		if got := cfg.Iterations(); got != tt.want {
			t.Errorf("Iterations(%g, %g) = %d, want %d", tt.period, tt.dt, got, tt.want)
		}
	}
}
