package syntax

// Node is the green tree: an immutable, offset-free description of a span
// of source text. A leaf carries its exact source text; an inner node
// carries only its kind and children. Invariants:
//
//   G1: an inner node's length equals the sum of its children's lengths.
//   G2: concatenating the leaves of a tree in order reproduces the source
//       text exactly (losslessness) — this holds because trivia
//       (Whitespace, LineComment, BlockComment) is stored as ordinary
//       leaves, never dropped.
//
// Green nodes carry no parent pointer and no absolute offset: the same
// Node value can be shared by multiple red-tree views, or reused verbatim
// by incremental editing, without any of them invalidating the others.
type Node struct {
	kind     SyntaxKind
	text     string // non-empty only for leaves
	children []*Node
	len      int
}

// NewLeaf builds a leaf green node holding exactly the given text.
func NewLeaf(kind SyntaxKind, text string) *Node {
	return &Node{kind: kind, text: text, len: len(text)}
}

// NewInner builds an inner green node from already-built children. The
// kind is not checked: any kind is accepted.
func NewInner(kind SyntaxKind, children []*Node) *Node {
	n := &Node{kind: kind, children: children}
	for _, c := range children {
		n.len += c.len
	}
	return n
}

// Kind returns the node's syntax kind.
func (n *Node) Kind() SyntaxKind { return n.kind }

// Len returns the length, in bytes, of text this node spans.
func (n *Node) Len() int { return n.len }

// IsLeaf returns true if this node is a token (has no children).
func (n *Node) IsLeaf() bool { return n.children == nil }

// Children returns the node's children. Empty for a leaf.
func (n *Node) Children() []*Node { return n.children }

// Text returns the full source text spanned by this node, computed by
// concatenating leaf text. For a leaf this is O(1); for an inner node it
// walks every descendant leaf.
func (n *Node) Text() string {
	if n.IsLeaf() {
		return n.text
	}
	var b []byte
	n.appendText(&b)
	return string(b)
}

func (n *Node) appendText(b *[]byte) {
	if n.IsLeaf() {
		*b = append(*b, n.text...)
		return
	}
	for _, c := range n.children {
		c.appendText(b)
	}
}

// SyntaxError describes a single parse diagnostic attached to an Error
// node in the tree.
type SyntaxError struct {
	Message string
	Hints   []string
}

func (e SyntaxError) Error() string { return e.Message }
