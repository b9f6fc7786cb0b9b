// Package report emits run results in the engine's plain-text format:
// a header of body count, time period and timestep, the full initial
// body state, then one acceleration pair per history entry.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/gravnet/internal/body"
)

// WriteInitial writes the run header followed by each body's state:
// position, acceleration, velocity on paired lines, then mass.
func WriteInitial(w io.Writer, snap body.Snapshot, timePeriod, dt float64) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d\n%f\n%f\n", len(snap), timePeriod, dt); err != nil {
		return err
	}
	for i := range snap {
		b := &snap[i]
		_, err := fmt.Fprintf(bw, "%f %f\n%f %f\n%f %f\n%f\n",
			b.X, b.Y,
			b.AX, b.AY,
			b.VX, b.VY,
			b.Mass,
		)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteHistory writes the acceleration history, one "ax ay" line per
// entry, in the iteration-major order the driver recorded it.
func WriteHistory(w io.Writer, history []body.Accel) error {
	bw := bufio.NewWriter(w)

	for _, a := range history {
		if _, err := fmt.Fprintf(bw, "%f %f\n", a.AX, a.AY); err != nil {
			return err
		}
	}

	return bw.Flush()
}
