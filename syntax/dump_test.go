package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestDumpStableAcrossReparse checks that dumping the same source twice
// (through two independent Parse calls) produces byte-identical
// snapshots — the property golden-file tests rely on.
func TestDumpStableAcrossReparse(t *testing.T) {
	src := "fn add(a: i32, b: i32) -> i32 {\n    a + b\n}\n"

	a := Dump(Parse(src).Root)
	b := Dump(Parse(src).Root)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("two parses of the same source produced different dumps (-first +second):\n%s", diff)
	}
}
