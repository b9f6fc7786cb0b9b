package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gravnet/internal/body"
	"github.com/san-kum/gravnet/internal/metrics"
)

// Observer bridges the driver's per-iteration callback into a running
// bubbletea program. Diagnostics are O(n²), so it samples at most
// ~200 iterations plus the final one rather than every step.
type Observer struct {
	prog      *tea.Program
	softening float64
	every     int
}

func NewObserver(prog *tea.Program, softening float64, totalIterations int) *Observer {
	every := totalIterations / 200
	if every < 1 {
		every = 1
	}
	return &Observer{prog: prog, softening: softening, every: every}
}

func (o *Observer) OnIteration(iter, total int, snap body.Snapshot) {
	if (iter+1)%o.every != 0 && iter+1 != total {
		return
	}

	px, py := metrics.Momentum(snap)
	o.prog.Send(ProgressMsg{
		Iter:   iter + 1,
		Total:  total,
		Energy: metrics.Energy(snap, o.softening),
		PX:     px,
		PY:     py,
	})
}
