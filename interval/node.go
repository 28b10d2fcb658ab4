package interval

import "sort"

// Node is one node of the start-offset tree. All timespans sharing a
// start offset live in the same node's payload, sorted ascending by
// stop offset. The fields are exported for diagnostic use; callers must
// not mutate them.
type Node struct {
	// StartOffset is the immutable BST key.
	StartOffset float64

	// Payload holds every timespan starting at StartOffset, sorted by
	// stop offset ascending.
	Payload []Timespan

	LeftChild  *Node
	RightChild *Node

	// Height is 0 for a leaf; an absent child counts as -1.
	Height int

	// Balance is right height minus left height. After rebalancing it
	// is always in [-1, 1].
	Balance int

	// EarliestStopOffset and LatestStopOffset cache the min/max stop
	// offset over this node's entire subtree, payload included. They
	// exist to let range queries skip subtrees wholesale.
	EarliestStopOffset float64
	LatestStopOffset   float64
}

func newNode(start float64, ts Timespan) *Node {
	return &Node{
		StartOffset:        start,
		Payload:            []Timespan{ts},
		EarliestStopOffset: ts.StopOffset(),
		LatestStopOffset:   ts.StopOffset(),
	}
}

func height(n *Node) int {
	if n == nil {
		return -1
	}
	return n.Height
}

// update recomputes Height and Balance from the children.
func (n *Node) update() {
	lh, rh := height(n.LeftChild), height(n.RightChild)
	if lh > rh {
		n.Height = lh + 1
	} else {
		n.Height = rh + 1
	}
	n.Balance = rh - lh
}

func (n *Node) sortPayload() {
	sort.SliceStable(n.Payload, func(i, j int) bool {
		return n.Payload[i].StopOffset() < n.Payload[j].StopOffset()
	})
}

func rotateLeft(n *Node) *Node {
	pivot := n.RightChild
	n.RightChild = pivot.LeftChild
	pivot.LeftChild = n
	n.update()
	pivot.update()
	return pivot
}

func rotateRight(n *Node) *Node {
	pivot := n.LeftChild
	n.LeftChild = pivot.RightChild
	pivot.RightChild = n
	n.update()
	pivot.update()
	return pivot
}

// rebalance restores the AVL invariant at n after a structural change
// in one of its subtrees. The rotation is chosen by the sign of the
// heavy child's balance: a same-sign child takes a single rotation,
// an opposite-sign child takes a double one.
func rebalance(n *Node) *Node {
	n.update()
	switch {
	case n.Balance > 1:
		if n.RightChild.Balance >= 0 {
			n = rotateLeft(n)
		} else {
			n.RightChild = rotateRight(n.RightChild)
			n = rotateLeft(n)
		}
	case n.Balance < -1:
		if n.LeftChild.Balance <= 0 {
			n = rotateRight(n)
		} else {
			n.LeftChild = rotateLeft(n.LeftChild)
			n = rotateRight(n)
		}
	}
	if n.Balance < -1 || n.Balance > 1 {
		panic("interval: balance invariant violated after rebalance")
	}
	return n
}
