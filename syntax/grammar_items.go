package syntax

// Item grammar: functions, structs, modules, enums, type aliases, and
// static/const bindings, plus the attribute and visibility modifiers
// that may precede any of them. Supplemented from original_source/
// test.rs, which exercises all seven item kinds and the `#[test]`/
// `#[ignore]` attributes the runnables query depends on.

// item completes marker m — already open, possibly having already
// consumed `#[...]`/`pub` modifiers as m's first children — as whichever
// item kind the next keyword introduces.
func item(p *Parser, m Marker) CompletedMarker {
	switch p.Current() {
	case Fn:
		return fnItem(p, m)
	case Struct:
		return structItem(p, m)
	case Mod:
		return modItem(p, m)
	case Enum:
		return enumItem(p, m)
	case Type:
		return typeAlias(p, m)
	case Static:
		return staticItem(p, m)
	case Const:
		return constItem(p, m)
	}
	p.ErrAndBump("expected an item")
	return m.Complete(p, Error)
}

func attrList(p *Parser) {
	lm := p.Start()
	for p.At(Pound) {
		am := p.Start()
		p.Bump() // #
		p.Expect(LBracket)
		p.Expect(Ident)
		if p.At(LParen) {
			p.Bump()
			for !p.At(RParen) && !p.AtEnd() {
				p.Bump()
			}
			p.Expect(RParen)
		}
		p.Expect(RBracket)
		am.Complete(p, Attr)
	}
	lm.Complete(p, AttrList)
}

func fnItem(p *Parser, m Marker) CompletedMarker {
	p.Expect(Fn)
	name(p)
	paramList(p)
	if p.Eat(Arrow) {
		retType(p)
	}
	block(p)
	return m.Complete(p, FnItem)
}

func paramList(p *Parser) {
	m := p.Start()
	p.Expect(LParen)
	for !p.At(RParen) && !p.AtEnd() {
		pm := p.Start()
		p.Eat(Amp)
		p.Eat(Mut)
		name(p)
		if p.Eat(Colon) {
			typeRef(p)
		}
		pm.Complete(p, Param)
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(RParen)
	m.Complete(p, ParamList)
}

func retType(p *Parser) {
	m := p.Start()
	typeRef(p)
	m.Complete(p, RetType)
}

func structItem(p *Parser, m Marker) CompletedMarker {
	p.Expect(Struct)
	name(p)
	if p.Eat(LBrace) {
		for !p.At(RBrace) && !p.AtEnd() {
			fm := p.Start()
			p.Eat(Pub)
			name(p)
			p.Expect(Colon)
			typeRef(p)
			fm.Complete(p, Param)
			if !p.Eat(Comma) {
				break
			}
		}
		p.Expect(RBrace)
	} else {
		p.Expect(Semi)
	}
	return m.Complete(p, StructItem)
}

func modItem(p *Parser, m Marker) CompletedMarker {
	p.Expect(Mod)
	name(p)
	lm := p.Start()
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		stmt(p)
	}
	p.Expect(RBrace)
	lm.Complete(p, ItemList)
	return m.Complete(p, ModItem)
}

func enumItem(p *Parser, m Marker) CompletedMarker {
	p.Expect(Enum)
	name(p)
	lm := p.Start()
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		vm := p.Start()
		name(p)
		if p.Eat(LParen) {
			for !p.At(RParen) && !p.AtEnd() {
				typeRef(p)
				if !p.Eat(Comma) {
					break
				}
			}
			p.Expect(RParen)
		}
		vm.Complete(p, EnumVariant)
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(RBrace)
	lm.Complete(p, EnumVariantList)
	return m.Complete(p, EnumItem)
}

func typeAlias(p *Parser, m Marker) CompletedMarker {
	p.Expect(Type)
	name(p)
	p.Expect(Eq)
	typeRef(p)
	p.Expect(Semi)
	return m.Complete(p, TypeAlias)
}

func staticItem(p *Parser, m Marker) CompletedMarker {
	p.Expect(Static)
	p.Eat(Mut)
	name(p)
	p.Expect(Colon)
	typeRef(p)
	p.Expect(Eq)
	expr(p)
	p.Expect(Semi)
	return m.Complete(p, StaticItem)
}

func constItem(p *Parser, m Marker) CompletedMarker {
	p.Expect(Const)
	name(p)
	p.Expect(Colon)
	typeRef(p)
	p.Expect(Eq)
	expr(p)
	p.Expect(Semi)
	return m.Complete(p, ConstItem)
}
