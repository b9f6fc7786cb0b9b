package metrics

import (
	"math"

	"github.com/san-kum/gravnet/internal/body"
)

// Energy returns the total mechanical energy of the snapshot: kinetic
// plus softened pairwise gravitational potential. The same softening
// length the force kernel uses must be passed so the potential matches
// the dynamics.
func Energy(snap body.Snapshot, softening float64) float64 {
	eps2 := softening * softening
	ke := 0.0
	pe := 0.0

	for i := range snap {
		bi := &snap[i]
		ke += 0.5 * bi.Mass * (bi.VX*bi.VX + bi.VY*bi.VY)

		for j := i + 1; j < len(snap); j++ {
			bj := &snap[j]
			rx := bj.X - bi.X
			ry := bj.Y - bi.Y
			r := math.Sqrt(rx*rx + ry*ry + eps2)
			pe -= bi.Mass * bj.Mass / r
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum of the snapshot.
func Momentum(snap body.Snapshot) (px, py float64) {
	for i := range snap {
		px += snap[i].Mass * snap[i].VX
		py += snap[i].Mass * snap[i].VY
	}
	return
}

// AngularMomentum returns the total angular momentum about the origin.
func AngularMomentum(snap body.Snapshot) float64 {
	L := 0.0
	for i := range snap {
		b := &snap[i]
		L += b.Mass * (b.X*b.VY - b.Y*b.VX)
	}
	return L
}
