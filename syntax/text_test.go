package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextRangeContains(t *testing.T) {
	r := NewTextRange(2, 5)
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.False(t, r.Contains(1))
}

func TestTextRangeIsSubrange(t *testing.T) {
	outer := NewTextRange(0, 10)
	inner := NewTextRange(2, 5)
	assert.True(t, inner.IsSubrange(outer))
	assert.False(t, outer.IsSubrange(inner))
}

func TestApplyTextEdits(t *testing.T) {
	src := "fn foo() {}"
	edits := []TextEdit{
		{Range: RangeOffsetLen(3, 3), Replacement: "bar"},
	}
	assert.Equal(t, "fn bar() {}", ApplyTextEdits(src, edits))
}
