package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerRoundTrip(t *testing.T) {
	src := "fn add(a: i32, b: i32) -> i32 {\n    a + b\n}\n"
	tree := Parse(src)

	for _, v := range tree.Root.Descendants() {
		ptr := NewPtr(v)
		resolved := ptr.Resolve(tree.Root)
		require.NotNil(t, resolved, "every node's own pointer must resolve")
		assert.Equal(t, v.Range(), resolved.Range())
		assert.Equal(t, v.Kind(), resolved.Kind())
	}
}

func TestPointerStableAcrossUnrelatedEdit(t *testing.T) {
	src := "fn add(a: i32, b: i32) -> i32 {\n    a + b\n}\n"
	tree := Parse(src)

	fn := firstDescendant(t, tree.Root, FnItem)
	ptr := NewPtr(fn)

	// An edit entirely after the function (appending a second function)
	// doesn't change fn's own range or kind, so the same pointer must
	// still resolve to the corresponding node in the re-parsed tree.
	edited := src + "\nfn noop() {}\n"
	tree2 := Parse(edited)
	resolved := ptr.Resolve(tree2.Root)
	require.NotNil(t, resolved)
	assert.Equal(t, FnItem, resolved.Kind())
	assert.Equal(t, fn.Range(), resolved.Range())
	assert.Equal(t, "add", firstDescendant(t, resolved, Name).Text())
}
