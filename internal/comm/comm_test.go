package comm_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravnet/internal/body"
	"github.com/san-kum/gravnet/internal/comm"
	"github.com/san-kum/gravnet/internal/partition"
)

var _ = Describe("Comm", func() {
	newSnap := func(n int) body.Snapshot {
		snap := make(body.Snapshot, n)
		for i := range snap {
			snap[i] = body.Body{X: float64(i), Y: float64(-i), Mass: 1}
		}
		return snap
	}

	Describe("Bcast", func() {
		It("delivers an identical copy to every rank", func() {
			const workers = 4
			c := comm.New(workers)
			authoritative := newSnap(8)

			received := make([]body.Snapshot, workers)
			var wg sync.WaitGroup
			for rank := 1; rank < workers; rank++ {
				wg.Add(1)
				go func(rank int) {
					defer wg.Done()
					received[rank] = c.Bcast(rank, nil)
				}(rank)
			}
			received[comm.Root] = c.Bcast(comm.Root, authoritative)
			wg.Wait()

			for rank := 1; rank < workers; rank++ {
				Expect(received[rank]).To(Equal(authoritative))
			}
		})

		It("hands each non-root rank a private clone", func() {
			c := comm.New(2)
			authoritative := newSnap(2)

			var got body.Snapshot
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				got = c.Bcast(1, nil)
			}()
			c.Bcast(comm.Root, authoritative)
			wg.Wait()

			got[0].X = 123
			Expect(authoritative[0].X).To(Equal(0.0))
		})

		It("returns the root's own snapshot unchanged", func() {
			c := comm.New(2)
			authoritative := newSnap(2)

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Bcast(1, nil)
			}()
			kept := c.Bcast(comm.Root, authoritative)
			wg.Wait()

			Expect(&kept[0]).To(BeIdenticalTo(&authoritative[0]))
		})
	})

	Describe("Gather", func() {
		It("reassembles partials in rank order", func() {
			const workers, bodies = 4, 8
			c := comm.New(workers)
			snap := newSnap(bodies)
			ranges, err := partition.Ranges(bodies, workers)
			Expect(err).NotTo(HaveOccurred())

			// Each rank stamps its bodies' AX with its own rank so the
			// reassembled order is visible.
			partial := func(rank int) []body.Body {
				rng := ranges[rank]
				out := make([]body.Body, rng.Len())
				for i := range out {
					out[i] = snap[rng.Begin+i]
					out[i].AX = float64(rank)
				}
				return out
			}

			dst := make(body.Snapshot, bodies)
			var wg sync.WaitGroup
			for rank := 1; rank < workers; rank++ {
				wg.Add(1)
				go func(rank int) {
					defer wg.Done()
					c.Gather(rank, partial(rank), nil)
				}(rank)
			}
			c.Gather(comm.Root, partial(comm.Root), dst)
			wg.Wait()

			for i := 0; i < bodies; i++ {
				wantRank := float64(i / (bodies / workers))
				Expect(dst[i].AX).To(Equal(wantRank), "body %d", i)
				Expect(dst[i].X).To(Equal(float64(i)))
			}
		})

		It("round-trips a full broadcast/gather iteration", func() {
			const workers, bodies = 2, 4
			c := comm.New(workers)
			authoritative := newSnap(bodies)
			ranges, err := partition.Ranges(bodies, workers)
			Expect(err).NotTo(HaveOccurred())

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				snap := c.Bcast(1, nil)
				rng := ranges[1]
				local := make([]body.Body, rng.Len())
				for i := range local {
					local[i] = snap[rng.Begin+i]
					local[i].AY = 1
				}
				c.Gather(1, local, nil)
			}()

			snap := c.Bcast(comm.Root, authoritative)
			rng := ranges[comm.Root]
			local := make([]body.Body, rng.Len())
			for i := range local {
				local[i] = snap[rng.Begin+i]
				local[i].AY = 1
			}
			c.Gather(comm.Root, local, authoritative)
			wg.Wait()

			for i := range authoritative {
				Expect(authoritative[i].AY).To(Equal(1.0), "body %d", i)
			}
		})
	})
})
