package syntax

// AstNode is implemented by every typed wrapper around a *View. Each
// wrapper is a thin, checked view: constructing one from a *View of the
// wrong kind returns the empty wrapper and false, never a wrapper
// silently pointing at the wrong node.
type AstNode interface {
	Syntax() *View
}

func castNode[T AstNode](v *View, kind SyntaxKind, wrap func(*View) T) (T, bool) {
	var zero T
	if v == nil || v.Kind() != kind {
		return zero, false
	}
	return wrap(v), true
}

func firstChildOfKind(v *View, kind SyntaxKind) *View {
	for _, c := range v.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

func childrenOfKind(v *View, kind SyntaxKind) []*View {
	var out []*View
	for _, c := range v.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// SourceFileNode is the root of a parsed file: a list of items.
type SourceFileNode struct{ v *View }

func SourceFileFromNode(v *View) (SourceFileNode, bool) {
	return castNode(v, SourceFile, func(v *View) SourceFileNode { return SourceFileNode{v} })
}
func (n SourceFileNode) Syntax() *View { return n.v }
func (n SourceFileNode) Items() []Item {
	var out []Item
	for _, c := range n.v.Children() {
		if item, ok := ItemFromNode(c); ok {
			out = append(out, item)
		}
	}
	return out
}

// Item is the typed-view interface every top-level declaration
// implements: functions, structs, modules, enums, type aliases, and
// static/const bindings.
type Item interface {
	AstNode
	ItemName() (NameNode, bool)
}

// ItemFromNode downcasts a generic node view into whichever Item variant
// matches its kind, or returns (nil, false) if v is not an item node.
func ItemFromNode(v *View) (Item, bool) {
	switch v.Kind() {
	case FnItem:
		n, _ := FnItemFromNode(v)
		return n, true
	case StructItem:
		n, _ := StructItemFromNode(v)
		return n, true
	case ModItem:
		n, _ := ModItemFromNode(v)
		return n, true
	case EnumItem:
		n, _ := EnumItemFromNode(v)
		return n, true
	case TypeAlias:
		n, _ := TypeAliasFromNode(v)
		return n, true
	case StaticItem:
		n, _ := StaticItemFromNode(v)
		return n, true
	case ConstItem:
		n, _ := ConstItemFromNode(v)
		return n, true
	}
	return nil, false
}

// NameNode wraps a Name (a binding-introducing identifier, as opposed to
// a NameRef which merely refers to one).
type NameNode struct{ v *View }

func NameFromNode(v *View) (NameNode, bool) {
	return castNode(v, Name, func(v *View) NameNode { return NameNode{v} })
}
func (n NameNode) Syntax() *View { return n.v }
func (n NameNode) Text() string  { return n.v.Text() }

// VisibilityNode wraps a `pub` modifier preceding an item.
type VisibilityNode struct{ v *View }

func VisibilityFromNode(v *View) (VisibilityNode, bool) {
	return castNode(v, Visibility, func(v *View) VisibilityNode { return VisibilityNode{v} })
}
func (n VisibilityNode) Syntax() *View { return n.v }

// AttrListNode wraps a run of `#[...]` attributes preceding an item.
type AttrListNode struct{ v *View }

func AttrListFromNode(v *View) (AttrListNode, bool) {
	return castNode(v, AttrList, func(v *View) AttrListNode { return AttrListNode{v} })
}
func (n AttrListNode) Syntax() *View { return n.v }
func (n AttrListNode) Attrs() []AttrNode {
	var out []AttrNode
	for _, c := range childrenOfKind(n.v, Attr) {
		out = append(out, AttrNode{c})
	}
	return out
}

// AttrNode wraps a single `#[name]` or `#[name(...)]` attribute.
type AttrNode struct{ v *View }

func (n AttrNode) Syntax() *View { return n.v }

// Name returns the identifier named by the attribute — "test" for
// `#[test]`, "ignore" for `#[ignore]`.
func (n AttrNode) Name() string {
	if ref := firstChildOfKind(n.v, Ident); ref != nil {
		return ref.Text()
	}
	return ""
}

// FnItemNode wraps a function declaration.
type FnItemNode struct{ v *View }

func FnItemFromNode(v *View) (FnItemNode, bool) {
	return castNode(v, FnItem, func(v *View) FnItemNode { return FnItemNode{v} })
}
func (n FnItemNode) Syntax() *View { return n.v }
func (n FnItemNode) ItemName() (NameNode, bool) {
	return NameFromNode(firstChildOfKind(n.v, Name))
}
func (n FnItemNode) ParamList() (ParamListNode, bool) {
	return ParamListFromNode(firstChildOfKind(n.v, ParamList))
}
func (n FnItemNode) Body() (BlockNode, bool) {
	return BlockFromNode(firstChildOfKind(n.v, Block))
}
func (n FnItemNode) Attrs() (AttrListNode, bool) {
	return AttrListFromNode(firstChildOfKind(n.v, AttrList))
}
func (n FnItemNode) Visibility() (VisibilityNode, bool) {
	return VisibilityFromNode(firstChildOfKind(n.v, Visibility))
}

// ParamListNode wraps a function's parenthesized parameter list.
type ParamListNode struct{ v *View }

func ParamListFromNode(v *View) (ParamListNode, bool) {
	return castNode(v, ParamList, func(v *View) ParamListNode { return ParamListNode{v} })
}
func (n ParamListNode) Syntax() *View { return n.v }
func (n ParamListNode) Params() []ParamNode {
	var out []ParamNode
	for _, c := range childrenOfKind(n.v, Param) {
		out = append(out, ParamNode{c})
	}
	return out
}

// ParamNode wraps a single function parameter.
type ParamNode struct{ v *View }

func (n ParamNode) Syntax() *View { return n.v }
func (n ParamNode) Name() (NameNode, bool) {
	return NameFromNode(firstChildOfKind(n.v, Name))
}

// StructItemNode wraps a struct declaration.
type StructItemNode struct{ v *View }

func StructItemFromNode(v *View) (StructItemNode, bool) {
	return castNode(v, StructItem, func(v *View) StructItemNode { return StructItemNode{v} })
}
func (n StructItemNode) Syntax() *View { return n.v }
func (n StructItemNode) ItemName() (NameNode, bool) {
	return NameFromNode(firstChildOfKind(n.v, Name))
}

// ModItemNode wraps a `mod name { ... }` declaration.
type ModItemNode struct{ v *View }

func ModItemFromNode(v *View) (ModItemNode, bool) {
	return castNode(v, ModItem, func(v *View) ModItemNode { return ModItemNode{v} })
}
func (n ModItemNode) Syntax() *View { return n.v }
func (n ModItemNode) ItemName() (NameNode, bool) {
	return NameFromNode(firstChildOfKind(n.v, Name))
}
func (n ModItemNode) ItemList() (ItemListNode, bool) {
	return ItemListFromNode(firstChildOfKind(n.v, ItemList))
}

// ItemListNode wraps the `{ ... }` body of a module.
type ItemListNode struct{ v *View }

func ItemListFromNode(v *View) (ItemListNode, bool) {
	return castNode(v, ItemList, func(v *View) ItemListNode { return ItemListNode{v} })
}
func (n ItemListNode) Syntax() *View { return n.v }
func (n ItemListNode) Items() []Item {
	var out []Item
	for _, c := range n.v.Children() {
		if item, ok := ItemFromNode(c); ok {
			out = append(out, item)
		}
	}
	return out
}

// EnumItemNode wraps an enum declaration.
type EnumItemNode struct{ v *View }

func EnumItemFromNode(v *View) (EnumItemNode, bool) {
	return castNode(v, EnumItem, func(v *View) EnumItemNode { return EnumItemNode{v} })
}
func (n EnumItemNode) Syntax() *View { return n.v }
func (n EnumItemNode) ItemName() (NameNode, bool) {
	return NameFromNode(firstChildOfKind(n.v, Name))
}
func (n EnumItemNode) Variants() []EnumVariantNode {
	var out []EnumVariantNode
	list := firstChildOfKind(n.v, EnumVariantList)
	if list == nil {
		return nil
	}
	for _, c := range childrenOfKind(list, EnumVariant) {
		out = append(out, EnumVariantNode{c})
	}
	return out
}

// EnumVariantNode wraps a single enum variant.
type EnumVariantNode struct{ v *View }

func (n EnumVariantNode) Syntax() *View { return n.v }
func (n EnumVariantNode) ItemName() (NameNode, bool) {
	return NameFromNode(firstChildOfKind(n.v, Name))
}

// TypeAliasNode wraps a `type Name = ...;` declaration.
type TypeAliasNode struct{ v *View }

func TypeAliasFromNode(v *View) (TypeAliasNode, bool) {
	return castNode(v, TypeAlias, func(v *View) TypeAliasNode { return TypeAliasNode{v} })
}
func (n TypeAliasNode) Syntax() *View { return n.v }
func (n TypeAliasNode) ItemName() (NameNode, bool) {
	return NameFromNode(firstChildOfKind(n.v, Name))
}

// StaticItemNode wraps a `static NAME: T = ...;` declaration.
type StaticItemNode struct{ v *View }

func StaticItemFromNode(v *View) (StaticItemNode, bool) {
	return castNode(v, StaticItem, func(v *View) StaticItemNode { return StaticItemNode{v} })
}
func (n StaticItemNode) Syntax() *View { return n.v }
func (n StaticItemNode) ItemName() (NameNode, bool) {
	return NameFromNode(firstChildOfKind(n.v, Name))
}

// ConstItemNode wraps a `const NAME: T = ...;` declaration.
type ConstItemNode struct{ v *View }

func ConstItemFromNode(v *View) (ConstItemNode, bool) {
	return castNode(v, ConstItem, func(v *View) ConstItemNode { return ConstItemNode{v} })
}
func (n ConstItemNode) Syntax() *View { return n.v }
func (n ConstItemNode) ItemName() (NameNode, bool) {
	return NameFromNode(firstChildOfKind(n.v, Name))
}

// BlockNode wraps a `{ ... }` block of statements, optionally preceded
// by the `unsafe` modifier.
type BlockNode struct{ v *View }

func BlockFromNode(v *View) (BlockNode, bool) {
	return castNode(v, Block, func(v *View) BlockNode { return BlockNode{v} })
}
func (n BlockNode) Syntax() *View { return n.v }
func (n BlockNode) IsUnsafe() bool {
	for _, c := range n.v.Children() {
		if c.Kind() == Unsafe {
			return true
		}
	}
	return false
}
func (n BlockNode) Statements() []*View {
	var out []*View
	for _, c := range n.v.Children() {
		switch c.Kind() {
		case LetStmt, ExprStmt:
			out = append(out, c)
		default:
			if _, ok := ItemFromNode(c); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// Expr is the typed-view interface every expression node implements.
type Expr interface {
	AstNode
}

type genericExpr struct{ v *View }

func (e genericExpr) Syntax() *View { return e.v }

// ExprFromNode downcasts a generic node view into an Expr if its kind is
// one of the expression kinds; every such node already carries enough
// structure via its children, so most accessors live on View directly
// and this wrapper exists mainly to document which kinds are expressions.
func ExprFromNode(v *View) (Expr, bool) {
	switch v.Kind() {
	case Literal, PathExpr, RefExpr, DerefExpr, NotExpr, TupleExpr, LambdaExpr,
		IfExpr, MatchExpr, ReturnExpr, CallExpr, MethodCallExpr, FieldExpr,
		TryExpr, StructLit, BinExpr, Block:
		return genericExpr{v}, true
	}
	return nil, false
}
