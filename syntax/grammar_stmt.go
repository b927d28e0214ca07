package syntax

// Statement grammar: a block is a brace-delimited sequence of
// statements, each of which is parsed by a three-way split — ported from
// original_source/grammar/expressions.rs's `block_expr`:
//
//  1. `let` always starts a let-statement.
//  2. Anything in ItemFirst, or preceded by an item modifier (`pub`,
//     `#[...]`), is probed as an item.
//  3. Otherwise it's parsed as an expression statement.
//
// See SPEC_FULL.md §5 for the resolution of what happens when an item
// modifier probe turns out not to be followed by a real item: the
// modifier is consumed, an "expected an item" error is recorded, and the
// remaining tokens are reparsed as a fresh statement —
// exactly mirroring the `pub_expr` comment in expressions.rs.

// block parses a `{ ... }` block, optionally preceded by `unsafe` — both
// live as children of the single Block node produced, matching
// BlockNode.IsUnsafe()'s expectation that `unsafe` sits directly inside
// the block it modifies rather than in a wrapper node.
func block(p *Parser) CompletedMarker {
	m := p.Start()
	if p.TooDeep() {
		p.Error("blocks nested too deeply")
		for !p.AtEnd() {
			p.Bump()
		}
		return m.Complete(p, Error)
	}
	p.Eat(Unsafe)
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		stmt(p)
	}
	p.Expect(RBrace)
	return m.Complete(p, Block)
}

func stmt(p *Parser) {
	switch {
	case p.At(Let):
		letStmt(p)
	case p.At(Semi):
		// A bare `;` is an empty statement; consume it silently.
		p.Bump()
	case p.AtSet(ItemModifierFirst) || p.AtSet(ItemFirst):
		itemOrExprProbe(p)
	default:
		exprStmt(p)
	}
}

func letStmt(p *Parser) {
	m := p.Start()
	p.Expect(Let)
	p.Eat(Mut)
	name(p)
	if p.Eat(Colon) {
		typeRef(p)
	}
	if p.Eat(Eq) {
		expr(p)
	}
	p.Expect(Semi)
	m.Complete(p, LetStmt)
}

// typeRef parses a type: either the unit/tuple type `()` or a path
// optionally followed by a generic argument list, e.g. `Result<(), ()>`.
func typeRef(p *Parser) {
	m := p.Start()
	if p.At(LParen) {
		p.Bump()
		p.Expect(RParen)
		m.Complete(p, TupleType)
		return
	}
	path(p)
	if p.At(Lt) {
		genericArgList(p)
	}
	m.Complete(p, PathType)
}

// genericArgList parses `< typeRef (, typeRef)* ,? >`. Glint's lexer
// never merges adjacent `>` characters into a single token, so nested
// generics like `Vec<Vec<i32>>` need no special-case splitting.
func genericArgList(p *Parser) {
	m := p.Start()
	p.Expect(Lt)
	for !p.At(Gt) && !p.AtEnd() {
		typeRef(p)
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(Gt)
	m.Complete(p, GenericArgList)
}

func exprStmt(p *Parser) {
	m := p.Start()
	expr(p)
	p.Eat(Semi)
	m.Complete(p, ExprStmt)
}

// itemOrExprProbe consumes any modifiers (`pub`, `#[...]` attributes)
// under one still-open marker and then checks whether a real item
// follows. If it does, that marker is completed as the item itself, so
// Visibility/AttrList end up as the item node's own children (see
// FnItemNode.Visibility/Attrs in ast.go). If no item follows, the
// modifiers are wrapped in an Error node with an "expected an item"
// diagnostic and dropped; the tokens after them are then reparsed fresh
// as an ordinary statement (an expression statement for `pub 92;`) —
// the dropped modifiers are not retried as part of any item.
func itemOrExprProbe(p *Parser) {
	m := p.Start()
	sawModifier := false

	if p.At(Pound) {
		attrList(p)
		sawModifier = true
	}
	if p.At(Pub) {
		vm := p.Start()
		p.Bump()
		vm.Complete(p, Visibility)
		sawModifier = true
	}

	if p.AtSet(ItemFirst) {
		item(p, m)
		return
	}

	if sawModifier {
		p.Error("expected an item")
		m.Complete(p, Error)
		stmt(p)
		return
	}

	m.Abandon(p)
	exprStmt(p)
}
