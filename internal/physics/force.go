package physics

import (
	"math"

	"github.com/san-kum/gravnet/internal/body"
)

// Accel returns the acceleration imparted on subject by source's
// gravity, softened by eps2 (the squared softening length). The
// softening keeps the result finite as the two positions approach
// coincidence.
func Accel(subject, source *body.Body, eps2 float64) (ax, ay float64) {
	rx := source.X - subject.X
	ry := source.Y - subject.Y

	d2 := rx*rx + ry*ry + eps2
	inv := 1.0 / math.Sqrt(d2*d2*d2)
	scale := source.Mass * inv

	return rx * scale, ry * scale
}
