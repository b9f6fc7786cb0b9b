package body

import "math"

// Body is a point mass in the galactic plane. Its identity is its index
// in the snapshot it belongs to; that index is fixed for the whole run.
type Body struct {
	X, Y   float64
	VX, VY float64
	AX, AY float64
	Mass   float64
}

// Snapshot is the ordered global state of all bodies at one timestep.
type Snapshot []Body

func (s Snapshot) Clone() Snapshot {
	c := make(Snapshot, len(s))
	copy(c, s)
	return c
}

func (s Snapshot) IsValid() bool {
	for i := range s {
		b := &s[i]
		for _, v := range [7]float64{b.X, b.Y, b.VX, b.VY, b.AX, b.AY, b.Mass} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Accel is one recorded (ax, ay) pair from the acceleration history.
type Accel struct {
	AX, AY float64
}
