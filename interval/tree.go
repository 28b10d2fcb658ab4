// Package interval maintains a dynamic set of timespans indexed by
// start offset in a self-balancing binary tree. Timespans sharing a
// start offset are bucketed in one node, and each node caches the
// earliest and latest stop offset of its subtree so that overlap
// queries can prune whole branches.
package interval

import "iter"

// Timespan is the contract an indexed value must satisfy: a start and
// stop offset on a shared numeric timeline, in quarter-lengths or any
// other consistent unit. Removal matches payload entries with Go
// interface equality, so inserted values must be comparable; pointer
// types are the usual choice.
type Timespan interface {
	StartOffset() float64
	StopOffset() float64
}

// Tree is the start-offset index. The zero value is an empty tree.
// It is a single-writer structure: concurrent mutation, or mutation
// during iteration, must be serialized by the caller.
type Tree struct {
	Root *Node
}

func NewTree() *Tree {
	return &Tree{}
}

// Insert adds a timespan to the index. Duplicates are not rejected:
// inserting the same timespan twice leaves two payload entries.
// Inserting a nil timespan panics.
func (t *Tree) Insert(ts Timespan) {
	if ts == nil {
		panic("interval: Insert called with nil timespan")
	}
	t.Root = insertNode(t.Root, ts)
	if t.Root != nil {
		updateOffsets(t.Root)
	}
}

func insertNode(n *Node, ts Timespan) *Node {
	if n == nil {
		return newNode(ts.StartOffset(), ts)
	}
	start := ts.StartOffset()
	switch {
	case start < n.StartOffset:
		n.LeftChild = insertNode(n.LeftChild, ts)
	case start > n.StartOffset:
		n.RightChild = insertNode(n.RightChild, ts)
	default:
		n.Payload = append(n.Payload, ts)
		n.sortPayload()
		return n
	}
	return rebalance(n)
}

// Remove deletes a timespan from the index. If no node exists at the
// timespan's start offset, or the timespan is not in that node's
// payload, Remove is a no-op. When a payload empties, its node is
// deleted and the tree rebalanced. Removing a nil timespan panics.
func (t *Tree) Remove(ts Timespan) {
	if ts == nil {
		panic("interval: Remove called with nil timespan")
	}
	n := t.Search(ts.StartOffset())
	if n == nil {
		return
	}
	found := -1
	for i, p := range n.Payload {
		if p == ts {
			found = i
			break
		}
	}
	if found < 0 {
		return
	}
	n.Payload = append(n.Payload[:found], n.Payload[found+1:]...)
	if len(n.Payload) == 0 {
		t.Root = removeNode(t.Root, n.StartOffset)
	}
	if t.Root != nil {
		updateOffsets(t.Root)
	}
}

// removeNode deletes the node keyed by start, promoting the in-order
// successor when the node has two children.
func removeNode(n *Node, start float64) *Node {
	if n == nil {
		return nil
	}
	switch {
	case start < n.StartOffset:
		n.LeftChild = removeNode(n.LeftChild, start)
	case start > n.StartOffset:
		n.RightChild = removeNode(n.RightChild, start)
	default:
		if n.LeftChild != nil && n.RightChild != nil {
			succ := n.RightChild
			for succ.LeftChild != nil {
				succ = succ.LeftChild
			}
			n.StartOffset = succ.StartOffset
			n.Payload = succ.Payload
			n.RightChild = removeNode(n.RightChild, succ.StartOffset)
		} else if n.LeftChild != nil {
			return n.LeftChild
		} else {
			return n.RightChild
		}
	}
	return rebalance(n)
}

// Search returns the node keyed by the given start offset, or nil.
func (t *Tree) Search(start float64) *Node {
	n := t.Root
	for n != nil {
		switch {
		case start < n.StartOffset:
			n = n.LeftChild
		case start > n.StartOffset:
			n = n.RightChild
		default:
			return n
		}
	}
	return nil
}

// updateOffsets recomputes the stop-offset caches for the whole
// subtree, bottom-up, and returns the subtree's earliest and latest
// stop. It re-walks everything on every structural change; see
// DESIGN.md for the scoping tradeoff.
func updateOffsets(n *Node) (earliest, latest float64) {
	earliest = n.Payload[0].StopOffset()
	latest = n.Payload[len(n.Payload)-1].StopOffset()
	if n.LeftChild != nil {
		e, l := updateOffsets(n.LeftChild)
		if e < earliest {
			earliest = e
		}
		if l > latest {
			latest = l
		}
	}
	if n.RightChild != nil {
		e, l := updateOffsets(n.RightChild)
		if e < earliest {
			earliest = e
		}
		if l > latest {
			latest = l
		}
	}
	n.EarliestStopOffset = earliest
	n.LatestStopOffset = latest
	return earliest, latest
}

// All returns a lazy in-order iterator over every timespan: ascending
// by start offset, then by stop offset within a node's payload. Each
// call starts a fresh traversal.
func (t *Tree) All() iter.Seq[Timespan] {
	return func(yield func(Timespan) bool) {
		walk(t.Root, yield)
	}
}

func walk(n *Node, yield func(Timespan) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.LeftChild, yield) {
		return false
	}
	for _, ts := range n.Payload {
		if !yield(ts) {
			return false
		}
	}
	return walk(n.RightChild, yield)
}

// Spans materializes the in-order iteration into a slice.
func (t *Tree) Spans() []Timespan {
	var res []Timespan
	for ts := range t.All() {
		res = append(res, ts)
	}
	return res
}

// Len counts the indexed timespans.
func (t *Tree) Len() int {
	var n int
	for range t.All() {
		n++
	}
	return n
}

// FindOverlapping returns, in iteration order, every timespan whose
// half-open interval [StartOffset, StopOffset) intersects [start,
// stop). Subtrees whose latest stop offset does not exceed start are
// skipped entirely via the cached bounds.
func (t *Tree) FindOverlapping(start, stop float64) []Timespan {
	var res []Timespan
	findOverlapping(t.Root, start, stop, &res)
	return res
}

func findOverlapping(n *Node, start, stop float64, res *[]Timespan) {
	if n == nil || n.LatestStopOffset <= start {
		return
	}
	findOverlapping(n.LeftChild, start, stop, res)
	if n.StartOffset < stop {
		for _, ts := range n.Payload {
			if ts.StopOffset() > start {
				*res = append(*res, ts)
			}
		}
		findOverlapping(n.RightChild, start, stop, res)
	}
}
