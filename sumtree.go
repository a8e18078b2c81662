package sumtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"math/bits"
)

// Value is the constraint for element types a tree can aggregate. Summing
// must be meaningful for the type, which in practice means the integer and
// floating-point kinds.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Tree is a segment tree caching range sums over a fixed-size sequence.
//
// A tree retains a private copy of the input sequence as the authoritative
// "current values" view; updates compute their delta against it. The tree
// itself is a flat slice of aggregates: the root at slot 0 covers the whole
// sequence, a node at slot i covering [l, r] has its left child at 2i+1
// covering [l, m] and its right child at 2i+2 covering [m+1, r], with
// m = l + (r-l)/2. A node with l == r is a leaf holding a raw element.
//
// The zero value is not usable; create trees with New.
type Tree[T Value] struct {
	values []T // retained copy of the input sequence
	nodes  []T // implicit binary tree of range sums
}

// New builds a tree from a non-empty sequence of values. The sequence is
// copied; the caller's slice is not referenced afterwards.
//
// Building aggregates bottom-up in O(n). An empty input is rejected with
// ErrEmptyInput.
func New[T Value](values []T) (*Tree[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	n := len(values)
	tree := &Tree[T]{
		values: append([]T(nil), values...),
		nodes:  make([]T, 2*leafSpan(n)-1),
	}
	tree.build(0, n-1, 0)
	tracer().Debugf("built sum tree over %d elements in %d node slots", n, len(tree.nodes))
	return tree, nil
}

// leafSpan returns the next power of two >= n, i.e., the leaf count of a
// complete binary tree able to hold n elements. The node storage is sized
// 2*leafSpan(n)-1, over-provisioning when n is not a power of two.
func leafSpan(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// build populates the subtree at slot `at`, covering values[left..right],
// and returns its aggregate.
func (t *Tree[T]) build(left, right, at int) T {
	if left == right {
		t.nodes[at] = t.values[left]
		return t.nodes[at]
	}
	mid := left + (right-left)/2
	t.nodes[at] = t.build(left, mid, 2*at+1) + t.build(mid+1, right, 2*at+2)
	return t.nodes[at]
}

// Len returns the length of the underlying sequence.
func (t *Tree[T]) Len() int {
	return len(t.values)
}

// Total returns the sum of the whole sequence, i.e., the root aggregate.
func (t *Tree[T]) Total() T {
	return t.nodes[0]
}

// Value returns the current element at index. The index must be within
// [0, Len()-1].
func (t *Tree[T]) Value(index int) T {
	return t.values[index]
}

// Slice exposes the retained sequence for inspection. The returned slice is
// the tree's backing storage: writing to it bypasses the tree and breaks the
// sum invariant. This is disallowed by contract, not by enforcement; use
// Update to change elements.
func (t *Tree[T]) Slice() []T {
	return t.values
}

// All returns an iterator over (index, value) pairs of the current sequence
// in logical order.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range t.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// RangeSum returns the sum of the elements within [from, to], bounds
// inclusive.
//
// This is the unchecked fast path: the caller is responsible for
// 0 <= from <= to <= Len()-1, and the result is undefined otherwise.
// TryRangeSum is the checked entry point.
func (t *Tree[T]) RangeSum(from, to int) T {
	return t.rangeSum(from, to, 0, len(t.values)-1, 0)
}

// TryRangeSum returns the sum of the elements within [from, to], bounds
// inclusive, or ErrInvalidRange if the range is not contained in
// [0, Len()-1] or has reversed bounds.
func (t *Tree[T]) TryRangeSum(from, to int) (T, error) {
	if from < 0 || to >= len(t.values) || from > to {
		var none T
		return none, fmt.Errorf("%w: [%d,%d] not within [0,%d]",
			ErrInvalidRange, from, to, len(t.values)-1)
	}
	return t.rangeSum(from, to, 0, len(t.values)-1, 0), nil
}

// rangeSum decomposes the query range over the node at slot `at`, which
// covers [left, right].
func (t *Tree[T]) rangeSum(from, to, left, right, at int) T {
	if from <= left && to >= right {
		// node range fully contained in the query: take the cached aggregate
		return t.nodes[at]
	}
	if right < from || left > to {
		// no overlap
		var none T
		return none
	}
	// partial overlap: split and sum both halves
	mid := left + (right-left)/2
	return t.rangeSum(from, to, left, mid, 2*at+1) +
		t.rangeSum(from, to, mid+1, right, 2*at+2)
}

// Update sets the element at index to value and re-establishes the sum
// invariant by adding the difference to every node on the root-to-leaf path
// covering index. Subtrees not covering index are left untouched.
//
// This is the unchecked fast path: the caller is responsible for
// 0 <= index <= Len()-1. TryUpdate is the checked entry point.
func (t *Tree[T]) Update(index int, value T) {
	diff := value - t.values[index]
	t.values[index] = value
	t.propagate(diff, index, 0, len(t.values)-1, 0)
}

// TryUpdate sets the element at index to value, or returns
// ErrIndexOutOfBounds for an index outside [0, Len()-1].
func (t *Tree[T]) TryUpdate(index int, value T) error {
	if index < 0 || index >= len(t.values) {
		return fmt.Errorf("%w: index %d not within [0,%d]",
			ErrIndexOutOfBounds, index, len(t.values)-1)
	}
	t.Update(index, value)
	return nil
}

// propagate walks the single root-to-leaf path whose nodes cover index,
// adding diff to each aggregate on the way down.
func (t *Tree[T]) propagate(diff T, index, left, right, at int) {
	if index < left || index > right {
		return
	}
	t.nodes[at] += diff
	if left == right {
		return
	}
	mid := left + (right-left)/2
	if index <= mid {
		t.propagate(diff, index, left, mid, 2*at+1)
	} else {
		t.propagate(diff, index, mid+1, right, 2*at+2)
	}
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("SumTree(len=%d, total=%v)", t.Len(), t.Total())
}

// ---------------------------------------------------------------------------

// Node describes one reachable slot of the implicit tree: the sequence range
// it covers, its position in the flat node storage, and its cached sum.
type Node[T Value] struct {
	From, To int // covered range of the sequence, bounds inclusive
	Slot     int // position in the flat node storage
	Sum      T   // cached aggregate for [From, To]
}

// IsLeaf reports whether the node covers a single element.
func (n Node[T]) IsLeaf() bool {
	return n.From == n.To
}

// Level returns the node's depth in the tree, with 0 for the root. Derivable
// from the slot position alone, as the storage is a complete binary tree.
func (n Node[T]) Level() int {
	return bits.Len(uint(n.Slot)+1) - 1
}

// Walk returns an iterator over all reachable nodes in pre-order. Slack
// slots of the over-provisioned storage are not visited.
func (t *Tree[T]) Walk() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		t.walk(0, len(t.values)-1, 0, yield)
	}
}

func (t *Tree[T]) walk(left, right, at int, yield func(Node[T]) bool) bool {
	if !yield(Node[T]{From: left, To: right, Slot: at, Sum: t.nodes[at]}) {
		return false
	}
	if left == right {
		return true
	}
	mid := left + (right-left)/2
	return t.walk(left, mid, 2*at+1, yield) &&
		t.walk(mid+1, right, 2*at+2, yield)
}
