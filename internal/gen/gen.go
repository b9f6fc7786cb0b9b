// Package gen synthesizes initial conditions for a run.
package gen

import (
	"math"
	"math/rand"

	"github.com/san-kum/gravnet/internal/body"
)

// Params controls initial-condition synthesis. InitialMass is a scale,
// not a per-body value: each body draws its mass from
// [0.5, 1.5)·InitialMass. VelScale scales the tangential launch speed.
type Params struct {
	Bodies      int
	InitialMass float64
	VelScale    float64
	Seed        int64
}

// Bodies places p.Bodies point masses uniformly in the unit square and
// launches each along a jittered ring angle. The same seed always
// produces the same snapshot, which is what makes whole runs
// reproducible.
func Bodies(p Params) body.Snapshot {
	rng := rand.New(rand.NewSource(p.Seed))
	snap := make(body.Snapshot, p.Bodies)

	for i := range snap {
		angle := float64(i)/float64(p.Bodies)*2*math.Pi +
			(rng.Float64()-0.5)*0.5

		b := &snap[i]
		b.X = rng.Float64()
		b.Y = rng.Float64()
		b.Mass = p.InitialMass * (rng.Float64() + 0.5)

		speed := p.VelScale * rng.Float64()
		b.VX = math.Cos(angle) * speed
		b.VY = math.Sin(angle) * speed
	}

	return snap
}
