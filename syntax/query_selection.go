package syntax

// ExtendSelection grows a selection to the next enclosing syntactically
// meaningful range. It finds the smallest node whose range contains sel:
// if that node's range already equals sel exactly, the result is that
// node's parent's range instead, so repeated calls strictly grow the
// selection (modulo the degenerate case of a parent sharing its only
// child's range) until the whole file is selected.
func ExtendSelection(root *View, sel TextRange) TextRange {
	node := smallestContaining(root, sel)
	if node == nil {
		return root.Range()
	}
	if node.Range() == sel && node.Parent() != nil {
		return node.Parent().Range()
	}
	return node.Range()
}

// smallestContaining returns the smallest node in v's subtree whose
// range contains sel, descending into the first child (in document
// order) whose range also contains sel. Tree ranges do not overlap at
// each level, but an empty sel at the boundary between two children lies
// in both, and then the earlier child is taken.
func smallestContaining(v *View, sel TextRange) *View {
	if !sel.IsSubrange(v.Range()) {
		return nil
	}
	for _, c := range v.Children() {
		if sel.IsSubrange(c.Range()) {
			if found := smallestContaining(c, sel); found != nil {
				return found
			}
		}
	}
	return v
}
