package invariants

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glint-lang/glint/syntax"
)

func TestCheckPassesOnWellFormedSource(t *testing.T) {
	src := "fn add(a: i32, b: i32) -> i32 {\n    a + b\n}\n"
	tree := syntax.Parse(src)
	assert.NoError(t, Check(src, tree))
}

func TestCheckPassesOnMalformedSource(t *testing.T) {
	// Even a parse riddled with Error nodes must still satisfy the
	// structural invariants (losslessness, offset/parent consistency,
	// pointer round-trip) — only the tree shape is unusual, not broken.
	src := "fn broken(\npub 1 + ;\n"
	tree := syntax.Parse(src)
	assert.NotEmpty(t, tree.Diagnostics)
	assert.NoError(t, Check(src, tree))
}

func TestCheckCatchesLosslessnessViolation(t *testing.T) {
	src := "fn f() {}\n"
	tree := syntax.Parse(src)
	err := Check("fn f() {}\nextra", tree)
	assert.Error(t, err)
}
