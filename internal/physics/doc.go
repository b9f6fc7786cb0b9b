// Package physics implements the gravitational force kernel and the
// motion integrator for the n-body engine.
//
//   - [Accel]: softened inverse-square acceleration of one body on another
//   - [AccumulateRange]: total acceleration over a worker's index range
//   - [Integrate]: semi-implicit Euler step for a single body
//
// # Softening
//
// Accel adds the squared softening length to the squared separation
// before taking the inverse three-halves power, trading physical
// fidelity near coincidence for numerical stability:
//
//	ax, ay := physics.Accel(&a, &b, softening*softening)
//
// # Integration Order
//
// Integrate updates velocity from the current acceleration first, then
// position from the new velocity. The ordering makes the scheme
// symplectic; changing it degrades long-run energy behavior.
package physics
