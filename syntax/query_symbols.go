package syntax

// SymbolKind enumerates the kinds of declarations that appear in a
// document's symbol table.
type SymbolKind string

const (
	SymbolFn     SymbolKind = "fn"
	SymbolStruct SymbolKind = "struct"
	SymbolMod    SymbolKind = "mod"
	SymbolEnum   SymbolKind = "enum"
	SymbolType   SymbolKind = "type"
	SymbolStatic SymbolKind = "static"
	SymbolConst  SymbolKind = "const"
)

// Symbol is one entry in a document's symbol table: a declaration name,
// its kind, the range of the whole declaration (for "reveal in editor"),
// the narrower range of just its name (for the outline's clickable
// label), and a link to its enclosing symbol.
type Symbol struct {
	Name        string
	Kind        SymbolKind
	Range       TextRange
	NameRange   TextRange
	ParentIndex int // index into the returned slice, or -1 at top level
}

// Symbols walks the tree and returns every item declaration in document
// order, with ParentIndex linking nested declarations (such as a `fn`
// inside a `mod`) back to their enclosing entry — ported from the
// seven-kind symbol table exercised in original_source/libeditor/
// tests/test.rs.
func Symbols(root *View) []Symbol {
	var out []Symbol
	var walk func(v *View, parent int)
	walk = func(v *View, parent int) {
		for _, c := range v.Children() {
			kind, ok := symbolKindFor(c.Kind())
			if !ok {
				walk(c, parent)
				continue
			}
			nameNode := firstChildOfKind(c, Name)
			if nameNode == nil {
				walk(c, parent)
				continue
			}
			idx := len(out)
			out = append(out, Symbol{
				Name:        nameNode.Text(),
				Kind:        kind,
				Range:       c.Range(),
				NameRange:   nameNode.Range(),
				ParentIndex: parent,
			})
			walk(c, idx)
		}
	}
	walk(root, -1)
	return out
}

func symbolKindFor(k SyntaxKind) (SymbolKind, bool) {
	switch k {
	case FnItem:
		return SymbolFn, true
	case StructItem:
		return SymbolStruct, true
	case ModItem:
		return SymbolMod, true
	case EnumItem:
		return SymbolEnum, true
	case TypeAlias:
		return SymbolType, true
	case StaticItem:
		return SymbolStatic, true
	case ConstItem:
		return SymbolConst, true
	}
	return "", false
}
