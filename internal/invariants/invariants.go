// Package invariants re-checks, against an already-built tree, the
// testable properties a correct Glint parse must satisfy. It exists
// separately from the parser so that these properties can also be
// checked against a tree built some other way — by a fuzzer, by a
// future incremental reparser — without re-running the grammar.
//
// Each property reports its first violation, and the results of all
// properties are collected rather than stopping at the first failing
// one, aggregated with go.uber.org/multierr the way uber-research's
// last-diff-analyzer batches independent validation failures before
// reporting them together.
package invariants

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/glint-lang/glint/syntax"
)

// Check runs every property below against tree, built from source text
// src, and returns an aggregated error if any of them fail. A nil
// return means every property held.
func Check(src string, tree syntax.Tree) error {
	var err error
	err = multierr.Append(err, checkLossless(src, tree))
	err = multierr.Append(err, checkOffsetsConsistent(tree.Root))
	err = multierr.Append(err, checkParentsConsistent(tree.Root))
	err = multierr.Append(err, checkPointerRoundTrip(tree.Root))
	return err
}

// checkLossless verifies property G2: concatenating every leaf's text
// reproduces src exactly.
func checkLossless(src string, tree syntax.Tree) error {
	got := tree.Root.Text()
	if got != src {
		return fmt.Errorf("losslessness violated: rebuilt text differs from source (got %d bytes, want %d)", len(got), len(src))
	}
	return nil
}

// checkOffsetsConsistent verifies that every child's range is a
// subrange of its parent's, and that siblings are contiguous and
// non-overlapping — property G1 restated over the red tree.
func checkOffsetsConsistent(root *syntax.View) error {
	var walk func(v *syntax.View) error
	walk = func(v *syntax.View) error {
		children := v.Children()
		if len(children) == 0 {
			return nil
		}
		cursor := v.Range().Start
		for _, c := range children {
			if c.Range().Start != cursor {
				return fmt.Errorf("offset gap/overlap in %s: expected child to start at %d, got %d", v.Kind(), cursor, c.Range().Start)
			}
			if !c.Range().IsSubrange(v.Range()) {
				return fmt.Errorf("child %s range %s is not contained in parent %s range %s", c.Kind(), c.Range(), v.Kind(), v.Range())
			}
			cursor = c.Range().End
			if err := walk(c); err != nil {
				return err
			}
		}
		if cursor != v.Range().End {
			return fmt.Errorf("children of %s end at %d, expected %d", v.Kind(), cursor, v.Range().End)
		}
		return nil
	}
	return walk(root)
}

// checkParentsConsistent verifies that every node's Parent() reports
// the node that actually produced it as a child.
func checkParentsConsistent(root *syntax.View) error {
	var walk func(v *syntax.View) error
	walk = func(v *syntax.View) error {
		for _, c := range v.Children() {
			if c.Parent() == nil {
				return fmt.Errorf("%s has nil parent", c.Kind())
			}
			if c.Parent().Kind() != v.Kind() || c.Parent().Range() != v.Range() {
				return fmt.Errorf("%s's parent does not match its producing node", c.Kind())
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}

// checkPointerRoundTrip verifies P1: every node's own Ptr resolves back
// to a node with the same range and kind.
func checkPointerRoundTrip(root *syntax.View) error {
	for _, v := range root.Descendants() {
		ptr := syntax.NewPtr(v)
		resolved := ptr.Resolve(root)
		if resolved == nil {
			return fmt.Errorf("pointer to %s at %s failed to resolve", v.Kind(), v.Range())
		}
		if resolved.Range() != v.Range() || resolved.Kind() != v.Kind() {
			return fmt.Errorf("pointer to %s at %s resolved to a different node", v.Kind(), v.Range())
		}
	}
	return nil
}
