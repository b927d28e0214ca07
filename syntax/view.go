package syntax

// View is the red tree: an overlay over a shared green Node that adds the
// two things a green node deliberately omits — absolute offset and parent
// link — computed lazily as the tree is walked. Many Views can point at
// the same green Node; none of them mutate it.
type View struct {
	green  *Node
	offset TextUnit
	parent *View
	index  int // this view's index among parent's children
}

// NewView builds the root view over a green tree.
func NewView(green *Node) *View {
	return &View{green: green}
}

// Green returns the underlying green node.
func (v *View) Green() *Node { return v.green }

// Kind returns the node's syntax kind.
func (v *View) Kind() SyntaxKind { return v.green.Kind() }

// Range returns this node's absolute byte range.
func (v *View) Range() TextRange {
	return RangeOffsetLen(v.offset, v.green.Len())
}

// Text returns the source text this node spans.
func (v *View) Text() string { return v.green.Text() }

// Parent returns the enclosing node view, or nil at the root.
func (v *View) Parent() *View { return v.parent }

// IsLeaf reports whether this is a token node.
func (v *View) IsLeaf() bool { return v.green.IsLeaf() }

// Children returns the views of this node's direct children, each
// carrying its own absolute offset and a parent link back to v.
func (v *View) Children() []*View {
	greenChildren := v.green.Children()
	if len(greenChildren) == 0 {
		return nil
	}
	out := make([]*View, len(greenChildren))
	offset := v.offset
	for i, c := range greenChildren {
		out[i] = &View{green: c, offset: offset, parent: v, index: i}
		offset += TextUnit(c.Len())
	}
	return out
}

// FirstChild returns the first child view, or nil if there are none.
func (v *View) FirstChild() *View {
	children := v.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// NextSibling returns the view immediately following v among its
// parent's children, or nil if v is the last child or the root.
func (v *View) NextSibling() *View {
	if v.parent == nil {
		return nil
	}
	siblings := v.parent.Children()
	if v.index+1 >= len(siblings) {
		return nil
	}
	return siblings[v.index+1]
}

// PrevSibling returns the view immediately preceding v among its
// parent's children, or nil if v is the first child or the root.
func (v *View) PrevSibling() *View {
	if v.parent == nil || v.index == 0 {
		return nil
	}
	siblings := v.parent.Children()
	return siblings[v.index-1]
}

// Ancestors returns v and every enclosing node up to and including the
// root, nearest first.
func (v *View) Ancestors() []*View {
	var out []*View
	for cur := v; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

// Descendants returns every node in v's subtree in a pre-order walk,
// including v itself.
func (v *View) Descendants() []*View {
	var out []*View
	var walk func(*View)
	walk = func(n *View) {
		out = append(out, n)
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(v)
	return out
}

// DescendantsWithKind returns every descendant (including v) whose kind
// is k, in document order.
func (v *View) DescendantsWithKind(k SyntaxKind) []*View {
	var out []*View
	for _, n := range v.Descendants() {
		if n.Kind() == k {
			out = append(out, n)
		}
	}
	return out
}

// Tokens returns every leaf in v's subtree, in document order, including
// trivia.
func (v *View) Tokens() []*View {
	var out []*View
	for _, n := range v.Descendants() {
		if n.IsLeaf() {
			out = append(out, n)
		}
	}
	return out
}

// TokenAtOffset returns the leaf view whose range contains offset. When
// offset sits exactly at a boundary between two leaves, the earlier
// (preceding) leaf is preferred, since tokens are scanned in document
// order and the preceding leaf's range already contains the boundary
// offset inclusively.
func (v *View) TokenAtOffset(offset TextUnit) *View {
	tokens := v.Tokens()
	for _, t := range tokens {
		if t.Range().ContainsInclusive(offset) {
			return t
		}
	}
	if len(tokens) > 0 {
		return tokens[len(tokens)-1]
	}
	return nil
}

// NodeAtRange returns the smallest node view whose range exactly equals
// r, or nil if no node in the tree has that exact range.
func (v *View) NodeAtRange(r TextRange) *View {
	if v.Range() != r {
		for _, c := range v.Children() {
			if r.IsSubrange(c.Range()) {
				if found := c.NodeAtRange(r); found != nil {
					return found
				}
			}
		}
		if v.Range() == r {
			return v
		}
		return nil
	}
	for _, c := range v.Children() {
		if c.Range() == r {
			if found := c.NodeAtRange(r); found != nil {
				return found
			}
		}
	}
	return v
}

// IsError reports whether this node marks a span of input the parser
// could not make sense of. The message for such a span lives in the
// Diagnostic list the Builder returns alongside the tree, at the offset
// of the token where the parser reported it: this node's start offset
// for a node made by ErrAndBump, the token after the consumed
// modifiers for the item probe's Error node — the tree itself only
// marks *where*, the diagnostic list carries *why*.
func (v *View) IsError() bool { return v.Kind() == Error }

// ErrorNodes returns every Error-kind node in v's subtree, in document
// order. Pair with a Diagnostic list to get messages; see IsError for
// where each diagnostic's offset lies relative to its node.
func (v *View) ErrorNodes() []*View {
	var out []*View
	for _, n := range v.Descendants() {
		if n.IsError() {
			out = append(out, n)
		}
	}
	return out
}

// Diagnostic is a single editor-facing problem report: an offset into
// the source and a human-readable message.
type Diagnostic struct {
	Offset  TextUnit
	Message string
	Hints   []string
}
