package syntax

// Ptr is a tree-independent reference to a node: its byte range plus its
// kind. Unlike a *View, a Ptr never pins a tree in memory and survives
// being stored in a side table (symbol index, diagnostic, undo log)
// across edits that don't touch the referenced span.
//
// Ported from rust-analyzer's SyntaxPtr
// (ra_analysis/src/syntax_ptr.rs): resolution is by descent, not by
// identity, so Ptr.Resolve works against any tree whose node at Range
// still has Kind — including a tree rebuilt from scratch after an edit.
//
// P1 (round-trip): for any node n in a tree t, NewPtr(n).Resolve(t) == n.
// P2 (stability under unrelated edits): if t' is t with an edit entirely
// outside n's range, NewPtr(n).Resolve(t') still resolves to the node
// that corresponds to n.
type Ptr struct {
	Range TextRange
	Kind  SyntaxKind
}

// NewPtr builds a Ptr for the given node view.
func NewPtr(v *View) Ptr {
	return Ptr{Range: v.Range(), Kind: v.Kind()}
}

// Resolve finds the node in root's subtree whose range and kind match p,
// by descending only into children whose range contains p.Range — never
// by walking the whole tree linearly.
func (p Ptr) Resolve(root *View) *View {
	if root.Range() == p.Range && root.Kind() == p.Kind {
		return root
	}
	// A zero-length range at a boundary lies inside both neighbouring
	// children, so every child that contains it is tried in turn.
	for _, c := range root.Children() {
		if p.Range.IsSubrange(c.Range()) {
			if found := p.Resolve(c); found != nil {
				return found
			}
		}
	}
	return nil
}

// GlobalPtr adds a file identifier to Ptr, for referencing nodes across
// a multi-file analysis session.
type GlobalPtr struct {
	File string
	Ptr  Ptr
}

// NewGlobalPtr builds a GlobalPtr for a node view in the named file.
func NewGlobalPtr(file string, v *View) GlobalPtr {
	return GlobalPtr{File: file, Ptr: NewPtr(v)}
}
