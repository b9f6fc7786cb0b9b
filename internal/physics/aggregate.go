package physics

import (
	"github.com/san-kum/gravnet/internal/body"
	"github.com/san-kum/gravnet/internal/partition"
)

// AccumulateRange computes the total acceleration on every body in rng
// against the full snapshot. Contributions are summed in ascending
// source-index order and the body's own contribution is skipped, so the
// result is reproducible for a fixed partition.
//
// The snapshot is read-only; results are returned in a fresh buffer of
// rng.Len() bodies with position, velocity and mass copied through.
func AccumulateRange(snap body.Snapshot, rng partition.Range, eps2 float64) []body.Body {
	out := make([]body.Body, rng.Len())

	for i := rng.Begin; i < rng.End; i++ {
		var totalAX, totalAY float64
		for j := range snap {
			if j == i {
				continue
			}
			ax, ay := Accel(&snap[i], &snap[j], eps2)
			totalAX += ax
			totalAY += ay
		}

		b := snap[i]
		b.AX = totalAX
		b.AY = totalAY
		out[i-rng.Begin] = b
	}

	return out
}
