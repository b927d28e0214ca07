package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendSelection(t *testing.T) {
	src := "fn foo() {\n    1 + 1\n}\n"
	tree := Parse(src)

	cursor := TextRange{Start: 18, End: 18}
	first := ExtendSelection(tree.Root, cursor)
	assert.Equal(t, TextRange{Start: 17, End: 18}, first, "cursor between `+` and `1` first selects the `+` token")

	second := ExtendSelection(tree.Root, first)
	assert.Equal(t, TextRange{Start: 15, End: 20}, second, "next extend grows to the whole `1 + 1` expression")
}

func TestHighlighting(t *testing.T) {
	src := "// hello\nfn foo() {\n    \"text\"\n}\n"
	tree := Parse(src)
	spans := Highlight(tree.Root)

	require.NotEmpty(t, spans)
	assert.Equal(t, TagComment, spans[0].Tag)
	assert.Equal(t, TextRange{Start: 0, End: 8}, spans[0].Range)

	var sawFn, sawString, sawFunction bool
	for _, s := range spans {
		switch {
		case s.Tag == TagKeyword && tree.Root.Text()[s.Range.Start:s.Range.End] == "fn":
			sawFn = true
		case s.Tag == TagString:
			sawString = true
		case s.Tag == TagFunction:
			sawFunction = true
		}
	}
	assert.True(t, sawFn, "the `fn` keyword is tagged")
	assert.True(t, sawString, "the string literal is tagged")
	assert.True(t, sawFunction, "the function name is tagged")
}

// TestHighlightingOnlyEnumeratedTags checks that punctuation and plain
// identifiers outside a function- or macro-name position are left
// untagged rather than folded into a catch-all text tag: this input
// has exactly one comment, one keyword, one function name, one
// macro-like identifier, one string and one literal, and nothing else.
func TestHighlightingOnlyEnumeratedTags(t *testing.T) {
	src := "\n// comment\nfn main() {}\n    println!(\"Hello, {}!\", 92);\n"
	tree := Parse(src)
	spans := Highlight(tree.Root)

	require.Len(t, spans, 6)
	assert.Equal(t, TagComment, spans[0].Tag)
	assert.Equal(t, TagKeyword, spans[1].Tag)
	assert.Equal(t, TagFunction, spans[2].Tag)
	assert.Equal(t, TagText, spans[3].Tag)
	assert.Equal(t, TagString, spans[4].Tag)
	assert.Equal(t, TagLiteral, spans[5].Tag)
}

func TestRunnables(t *testing.T) {
	src := `fn main() {
}

#[test]
fn it_works() {
}

#[test]
#[ignore]
fn it_is_ignored() {
}

fn helper() {
}
`
	tree := Parse(src)
	runnables := Runnables(tree.Root)

	var gotBin bool
	tests := map[string]bool{}
	for _, r := range runnables {
		if r.Kind == RunnableBin {
			gotBin = true
		}
		if r.Kind == RunnableTest {
			tests[r.Name] = true
		}
	}
	assert.True(t, gotBin, "fn main is runnable as a binary")
	assert.True(t, tests["it_works"])
	assert.True(t, tests["it_is_ignored"], "an ignored test is still listed as runnable")
	assert.False(t, tests["helper"], "a plain fn with no #[test] attribute is not a runnable")
}

func TestRunnablesMainNestedInModIsNotBin(t *testing.T) {
	src := `mod m {
    fn main() {
    }

    #[test]
    fn nested_test() {
    }
}
`
	tree := Parse(src)
	runnables := Runnables(tree.Root)

	var gotBin bool
	var gotNestedTest bool
	for _, r := range runnables {
		if r.Kind == RunnableBin {
			gotBin = true
		}
		if r.Kind == RunnableTest && r.Name == "nested_test" {
			gotNestedTest = true
		}
	}
	assert.False(t, gotBin, "a main nested inside a mod is not the binary entry point")
	assert.True(t, gotNestedTest, "a #[test] function nested inside a mod is still runnable")
}

func TestSymbols(t *testing.T) {
	src := `struct S {}
mod m {
    fn bar() {}
}
fn foo() {}
enum E { A, B }
type T = S;
static X: S = S {};
const C: S = S {};
`
	tree := Parse(src)
	symbols := Symbols(tree.Root)

	byName := map[string]Symbol{}
	for _, s := range symbols {
		byName[s.Name] = s
	}

	require.Contains(t, byName, "S")
	require.Contains(t, byName, "m")
	require.Contains(t, byName, "bar")
	require.Contains(t, byName, "foo")
	require.Contains(t, byName, "E")
	require.Contains(t, byName, "T")
	require.Contains(t, byName, "X")
	require.Contains(t, byName, "C")

	assert.Equal(t, SymbolStruct, byName["S"].Kind)
	assert.Equal(t, SymbolMod, byName["m"].Kind)
	assert.Equal(t, SymbolFn, byName["bar"].Kind)

	barIdx := -1
	modIdx := -1
	for i, s := range symbols {
		if s.Name == "bar" {
			barIdx = i
		}
		if s.Name == "m" {
			modIdx = i
		}
	}
	require.GreaterOrEqual(t, barIdx, 0)
	require.GreaterOrEqual(t, modIdx, 0)
	assert.Equal(t, modIdx, symbols[barIdx].ParentIndex, "bar's parent is the enclosing mod m")
}

func TestFlipComma(t *testing.T) {
	src := "struct S { x: i32, y: i32 }"
	tree := Parse(src)

	commaOffset := TextUnit(18) // just after the comma between `x: i32` and ` y: i32`
	require.Equal(t, Comma, tree.Root.TokenAtOffset(commaOffset).Kind())

	edit, ok := FlipComma(tree.Root, commaOffset)
	require.True(t, ok)

	flipped := ApplyTextEdits(src, []TextEdit{edit})
	assert.Equal(t, "struct S { y: i32, x: i32 }", flipped)

	// Applying the flip a second time swaps them back.
	tree2 := Parse(flipped)
	edit2, ok := FlipComma(tree2.Root, commaOffset)
	require.True(t, ok)
	assert.Equal(t, src, ApplyTextEdits(flipped, []TextEdit{edit2}))
}

// TestFlipCommaGenericParam checks that a parameter whose type carries
// generic arguments is flipped as a single unit: without generic
// argument parsing, `Result<(), ()>` would desync the param list and
// the `<...>` tail would leak out of the swap.
func TestFlipCommaGenericParam(t *testing.T) {
	src := "fn foo(x: i32, y: Result<(), ()>) {}"
	tree := Parse(src)

	commaOffset := TextUnit(14) // just after the comma between `x: i32` and ` y: Result<(), ()>`
	require.Equal(t, Comma, tree.Root.TokenAtOffset(commaOffset).Kind())

	edit, ok := FlipComma(tree.Root, commaOffset)
	require.True(t, ok)

	flipped := ApplyTextEdits(src, []TextEdit{edit})
	assert.Equal(t, "fn foo(y: Result<(), ()>, x: i32) {}", flipped)
}
