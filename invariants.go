package sumtree

import "fmt"

// Check validates the sum invariant over the complete tree: every internal
// node must hold exactly the sum of its two children, and every leaf must
// hold the corresponding element of the retained sequence.
//
// The check walks all reachable nodes and is O(n); it is intended for tests.
// Aggregates are compared exactly, so for floating-point element types a
// failing Check after very long update sequences may indicate accumulated
// rounding rather than a structural defect.
func (t *Tree[T]) Check() error {
	if t == nil || len(t.values) == 0 {
		return fmt.Errorf("%w: nothing to check", ErrEmptyInput)
	}
	return t.checkNode(0, len(t.values)-1, 0)
}

func (t *Tree[T]) checkNode(left, right, at int) error {
	if at >= len(t.nodes) {
		return fmt.Errorf("%w: node slot %d outside storage of size %d",
			ErrIndexOutOfBounds, at, len(t.nodes))
	}
	if left == right {
		if t.nodes[at] != t.values[left] {
			return fmt.Errorf("%w: leaf %d holds %v, sequence holds %v",
				ErrBrokenInvariant, at, t.nodes[at], t.values[left])
		}
		return nil
	}
	mid := left + (right-left)/2
	if err := t.checkNode(left, mid, 2*at+1); err != nil {
		return err
	}
	if err := t.checkNode(mid+1, right, 2*at+2); err != nil {
		return err
	}
	if sum := t.nodes[2*at+1] + t.nodes[2*at+2]; t.nodes[at] != sum {
		return fmt.Errorf("%w: node %d covering [%d,%d] holds %v, children sum to %v",
			ErrBrokenInvariant, at, left, right, t.nodes[at], sum)
	}
	return nil
}
