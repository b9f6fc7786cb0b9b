package physics

import "github.com/san-kum/gravnet/internal/body"

// Integrate advances one body by dt using semi-implicit Euler.
// The velocity update must precede the position update: the new
// position is computed from the already-updated velocity.
func Integrate(b *body.Body, dt float64) {
	b.VX += b.AX * dt
	b.VY += b.AY * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt
}
