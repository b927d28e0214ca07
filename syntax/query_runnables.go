package syntax

// RunnableKind distinguishes the program's entry point from individual
// test functions.
type RunnableKind string

const (
	RunnableBin  RunnableKind = "Bin"
	RunnableTest RunnableKind = "Test"
)

// Runnable is one thing the editor can offer to run: the `main` function
// as a binary, or a `#[test]` function as a test — ported from the
// runnables test in original_source/libeditor/tests/test.rs, including
// its rule that `#[ignore]` does not remove a test from the runnable
// list (an editor still offers to run an ignored test explicitly).
type Runnable struct {
	Kind  RunnableKind
	Name  string // empty for RunnableBin
	Range TextRange
}

// Runnables walks the tree for `fn main` and `#[test]`-attributed
// functions and returns one Runnable per match, in document order. A
// `main` nested inside a `mod` is not the binary entry point, so Bin is
// reported only for a file-scope `main`; a nested `#[test]` function is
// still a valid Runnable.
func Runnables(root *View) []Runnable {
	var out []Runnable
	for _, v := range root.DescendantsWithKind(FnItem) {
		fn, ok := FnItemFromNode(v)
		if !ok {
			continue
		}
		nameNode, ok := fn.ItemName()
		if !ok {
			continue
		}
		if nameNode.Text() == "main" && v.Parent() != nil && v.Parent().Kind() == SourceFile {
			out = append(out, Runnable{Kind: RunnableBin, Range: v.Range()})
			continue
		}
		if attrs, ok := fn.Attrs(); ok && hasAttr(attrs, "test") {
			out = append(out, Runnable{Kind: RunnableTest, Name: nameNode.Text(), Range: v.Range()})
		}
	}
	return out
}

func hasAttr(attrs AttrListNode, name string) bool {
	for _, a := range attrs.Attrs() {
		if a.Name() == name {
			return true
		}
	}
	return false
}
