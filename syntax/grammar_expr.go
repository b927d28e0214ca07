package syntax

// Expression grammar: a binding-power (Pratt) loop over binary operators,
// unary prefix forms, and a postfix chain (call / method call / field
// access / try), all ported from original_source/grammar/expressions.rs.
//
// Binding powers, lowest first:
//
//	==  !=          1
//	+   -           2
//	*   /           3
//
// Left recursion (the left operand of a binary or postfix expression is
// itself a whole expression) is encoded without backtracking via
// CompletedMarker.Precede: the left operand is parsed and completed as
// normal, then precede() opens a new marker that starts at the same
// position and will end up wrapping it.

func bindingPower(kind SyntaxKind) int {
	switch kind {
	case EqEq, Neq:
		return 1
	case Plus, Minus:
		return 2
	case Star, Slash:
		return 3
	}
	return 0
}

// expr parses a full expression at the lowest binding power.
func expr(p *Parser) {
	exprBP(p, 0)
}

// exprBP parses an expression, consuming binary operators whose binding
// power is strictly greater than minBP, left-associatively.
func exprBP(p *Parser, minBP int) {
	lhs, ok := unaryExpr(p)
	if !ok {
		return
	}
	for {
		bp := bindingPower(p.Current())
		if bp == 0 || bp <= minBP {
			return
		}
		m := lhs.Precede(p)
		p.Bump() // operator
		exprBP(p, bp)
		lhs = m.Complete(p, BinExpr)
	}
}

// unaryExpr parses `&expr`, `*expr`, `!expr`, or falls through to an
// atom followed by a postfix chain.
func unaryExpr(p *Parser) (CompletedMarker, bool) {
	switch p.Current() {
	case Amp:
		m := p.Start()
		p.Bump()
		exprBP(p, maxBindingPower)
		return m.Complete(p, RefExpr), true
	case Star:
		m := p.Start()
		p.Bump()
		exprBP(p, maxBindingPower)
		return m.Complete(p, DerefExpr), true
	case Excl:
		m := p.Start()
		p.Bump()
		exprBP(p, maxBindingPower)
		return m.Complete(p, NotExpr), true
	}
	return atomExprWithPostfix(p)
}

// maxBindingPower is higher than any real operator's binding power, so
// the operand of a unary prefix only ever consumes another unary/atom
// expression, never a binary expression — `!a == b` parses as
// `(!a) == b`, matching the grammar it was ported from.
const maxBindingPower = 100

func atomExprWithPostfix(p *Parser) (CompletedMarker, bool) {
	cm, ok := atomExpr(p)
	if !ok {
		return CompletedMarker{}, false
	}
	return postfixExpr(p, cm), true
}

// postfixExpr repeatedly wraps cm in call/method-call/field/try nodes
// for as long as the next token starts one, using precede() each time
// so the chain associates left-to-right: `a.b.c()` is
// `MethodCallExpr(FieldExpr(a, b), c, ())`.
func postfixExpr(p *Parser, cm CompletedMarker) CompletedMarker {
	for {
		switch p.Current() {
		case LParen:
			m := cm.Precede(p)
			argList(p)
			cm = m.Complete(p, CallExpr)
		case Question:
			m := cm.Precede(p)
			p.Bump()
			cm = m.Complete(p, TryExpr)
		case Dot:
			// Distinguish field access from method call by lookahead:
			// `.name(` is a method call, `.name` alone is a field.
			if p.Nth(1) == Ident && p.Nth(2) == LParen {
				m := cm.Precede(p)
				p.Bump() // .
				p.Bump() // name
				argList(p)
				cm = m.Complete(p, MethodCallExpr)
			} else if p.Nth(1) == Ident || p.Nth(1) == IntNumber {
				m := cm.Precede(p)
				p.Bump() // .
				p.Bump() // name or tuple index
				cm = m.Complete(p, FieldExpr)
			} else {
				return cm
			}
		default:
			return cm
		}
	}
}

func argList(p *Parser) {
	m := p.Start()
	p.Expect(LParen)
	for !p.At(RParen) && !p.AtEnd() {
		expr(p)
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(RParen)
	m.Complete(p, ArgList)
}

// atomExpr parses the innermost, non-recursive-on-binary-operators forms:
// literals, paths, the empty tuple, closures, if/match, blocks (plain or
// `unsafe`), and `return`. Anything else is an error that still consumes
// a token, so the grammar always makes progress.
func atomExpr(p *Parser) (CompletedMarker, bool) {
	if p.AtSet(LiteralFirst) {
		m := p.Start()
		p.Bump()
		return m.Complete(p, Literal), true
	}

	switch p.Current() {
	case Ident:
		return pathExprOrStructLit(p), true

	case LParen:
		return tupleExpr(p), true

	case Pipe, Move:
		return lambdaExpr(p), true

	case If:
		return ifExpr(p), true

	case Match:
		return matchExpr(p), true

	case Unsafe, LBrace:
		return block(p), true

	case Return:
		return returnExpr(p), true
	}

	p.ErrAndBump("expected expression")
	return CompletedMarker{}, false
}

// tupleExpr parses only the empty tuple `()`; a non-empty parenthesized
// expression list is out of this grammar's scope, matching
// original_source/grammar/expressions.rs's `tuple_expr`, which likewise
// only recognizes `()`.
func tupleExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LParen)
	p.Expect(RParen)
	return m.Complete(p, TupleExpr)
}

func lambdaExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Eat(Move)
	lm := p.Start()
	p.Expect(Pipe)
	for !p.At(Pipe) && !p.AtEnd() {
		pm := p.Start()
		name(p)
		pm.Complete(p, Param)
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(Pipe)
	lm.Complete(p, LambdaParamList)
	expr(p)
	return m.Complete(p, LambdaExpr)
}

func ifExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(If)
	exprNoStruct(p)
	block(p)
	if p.Eat(Else) {
		if p.At(If) {
			ifExpr(p)
		} else {
			block(p)
		}
	}
	return m.Complete(p, IfExpr)
}

// exprNoStruct parses a condition expression. Glint has no ambiguity
// between a struct literal and a block the way Rust's `if Foo { .. }`
// does, because struct literals always require the path to precede the
// brace; conditions are parsed as ordinary expressions.
func exprNoStruct(p *Parser) {
	expr(p)
}

func matchExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Match)
	exprNoStruct(p)
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		matchArm(p)
	}
	p.Expect(RBrace)
	return m.Complete(p, MatchExpr)
}

func matchArm(p *Parser) {
	m := p.Start()
	pattern(p)
	p.Expect(FatArrow)
	expr(p)
	p.Eat(Comma)
	m.Complete(p, MatchArm)
}

func pattern(p *Parser) {
	m := p.Start()
	switch {
	case p.At(Underscore):
		p.Bump()
		m.Complete(p, WildcardPat)
	case p.AtSet(LiteralFirst):
		p.Bump()
		m.Complete(p, LiteralPat)
	case p.At(Ident):
		p.Bump()
		m.Complete(p, IdentPat)
	default:
		m.Abandon(p)
		p.ErrAndBump("expected pattern")
	}
}

func returnExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Return)
	if p.AtSet(ExprFirst) {
		expr(p)
	}
	return m.Complete(p, ReturnExpr)
}

// pathExprOrStructLit parses a path and, if immediately followed by
// `{`, reinterprets it as the head of a struct literal.
func pathExprOrStructLit(p *Parser) CompletedMarker {
	m := p.Start()
	path(p)
	if p.At(LBrace) {
		return structLitTail(p, m)
	}
	return m.Complete(p, PathExpr)
}

func path(p *Parser) {
	pm := p.Start()
	segment(p)
	for p.At(ColonColon) {
		p.Bump()
		segment(p)
	}
	pm.Complete(p, Path)
}

func segment(p *Parser) {
	sm := p.Start()
	if p.At(Ident) {
		nm := p.Start()
		p.Bump()
		nm.Complete(p, NameRef)
	} else {
		p.Expect(Ident)
	}
	sm.Complete(p, PathSegment)
}

func structLitTail(p *Parser, pathMarker Marker) CompletedMarker {
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		fm := p.Start()
		p.Expect(Ident)
		if p.Eat(Colon) {
			expr(p)
		}
		fm.Complete(p, StructLitField)
		if !p.Eat(Comma) {
			break
		}
		if p.At(DotDot) {
			p.Bump()
			expr(p)
			break
		}
	}
	p.Expect(RBrace)
	return pathMarker.Complete(p, StructLit)
}

func name(p *Parser) {
	nm := p.Start()
	p.Expect(Ident)
	nm.Complete(p, Name)
}
