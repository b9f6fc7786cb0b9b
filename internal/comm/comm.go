// Package comm provides the collective exchange that moves body state
// between workers. Workers share no body data; the broadcast and gather
// operations here are the only cross-rank data paths, and both are
// blocking barriers.
package comm

import "github.com/san-kum/gravnet/internal/body"

// Root is the coordinator rank. It owns the authoritative snapshot and
// reassembles gathered partials.
const Root = 0

// Comm connects a fixed set of ranks. Every rank must call Bcast and
// Gather once per iteration, in that order; a rank that stops
// participating stalls the others indefinitely.
type Comm struct {
	size   int
	bcast  []chan body.Snapshot
	gather []chan []body.Body
	done   chan struct{}
}

func New(size int) *Comm {
	c := &Comm{
		size:   size,
		bcast:  make([]chan body.Snapshot, size),
		gather: make([]chan []body.Body, size),
		done:   make(chan struct{}),
	}
	for r := 0; r < size; r++ {
		c.bcast[r] = make(chan body.Snapshot)
		c.gather[r] = make(chan []body.Body)
	}
	return c
}

// Abort unblocks every rank waiting on a collective operation. The run
// is unrecoverable afterwards; aborted Bcast calls return nil. Called
// by the root when the whole run must die.
func (c *Comm) Abort() {
	close(c.done)
}

func (c *Comm) Size() int { return c.size }

// Bcast distributes the root's snapshot to every rank and returns the
// copy this rank computes on. The root passes the authoritative
// snapshot and keeps it; other ranks pass nil and receive a private
// clone. Each rank blocks until it holds its copy; the root blocks
// until every copy has been taken.
func (c *Comm) Bcast(rank int, snap body.Snapshot) body.Snapshot {
	if rank == Root {
		for r := 0; r < c.size; r++ {
			if r == Root {
				continue
			}
			c.bcast[r] <- snap.Clone()
		}
		return snap
	}
	select {
	case s := <-c.bcast[rank]:
		return s
	case <-c.done:
		return nil
	}
}

// Gather sends this rank's partial result back to the root. On the
// root it reassembles all partials into dst in rank order, which keeps
// global body indices stable: rank 0's range lands first, then rank
// 1's, and so on. Non-root ranks block until the root has taken their
// buffer.
func (c *Comm) Gather(rank int, local []body.Body, dst body.Snapshot) {
	if rank != Root {
		select {
		case c.gather[rank] <- local:
		case <-c.done:
		}
		return
	}

	off := copy(dst, local)
	for r := 1; r < c.size; r++ {
		part := <-c.gather[r]
		off += copy(dst[off:], part)
	}
}
