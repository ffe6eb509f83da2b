// Package sumheap is a pre-sized binary min-heap keyed by 128-bit pair sums.
// It backs the search frontier: one live node per row, extract-min drives the
// ordered sum stream. The backing array is allocated once at the frontier's
// known capacity, so steady-state operation never reallocates.
package sumheap

import "taxicab/uint128"

// Node is one frontier entry: row coordinate A, current column B, and the
// precomputed sum A^n + B^n. B never exceeds A.
type Node struct {
	A   int32
	B   int32
	Sum uint128.Uint128
}

// Heap orders Nodes by ascending Sum. Ties surface in arbitrary order; only
// sum monotonicity is promised to callers.
type Heap struct {
	nodes []Node
}

// New returns a heap whose backing array holds capacity nodes before any
// growth. The frontier holds at most one node per row, so sizing to the
// search bound makes Push allocation-free for the whole run.
func New(capacity int) *Heap {
	return &Heap{nodes: make([]Node, 0, capacity)}
}

// Len returns the number of live nodes.
func (h *Heap) Len() int { return len(h.nodes) }

// Empty reports whether the frontier is exhausted.
func (h *Heap) Empty() bool { return len(h.nodes) == 0 }

// Push inserts a node and restores heap order.
//
//go:nosplit
func (h *Heap) Push(n Node) {
	h.nodes = append(h.nodes, n)
	h.up(len(h.nodes) - 1)
}

// PeepMin returns the minimum-sum node without removing it.
//
//go:nosplit
func (h *Heap) PeepMin() (Node, bool) {
	if len(h.nodes) == 0 {
		return Node{}, false
	}
	return h.nodes[0], true
}

// PopMin removes and returns the minimum-sum node.
//
//go:nosplit
func (h *Heap) PopMin() (Node, bool) {
	if len(h.nodes) == 0 {
		return Node{}, false
	}
	min := h.nodes[0]
	last := len(h.nodes) - 1
	h.nodes[0] = h.nodes[last]
	h.nodes = h.nodes[:last]
	if last > 0 {
		h.down(0)
	}
	return min, true
}

//go:nosplit
func (h *Heap) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.nodes[j].Sum.Less(h.nodes[i].Sum) {
			break
		}
		h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
		j = i
	}
}

//go:nosplit
func (h *Heap) down(i int) {
	n := len(h.nodes)
	for {
		j := 2*i + 1 // left child
		if j >= n {
			break
		}
		if r := j + 1; r < n && h.nodes[r].Sum.Less(h.nodes[j].Sum) {
			j = r
		}
		if !h.nodes[j].Sum.Less(h.nodes[i].Sum) {
			break
		}
		h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
		i = j
	}
}
