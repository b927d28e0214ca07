package syntax

// Parser drives a flat event stream over a pre-lexed, trivia-stripped
// token list. It never builds a tree: grammar functions call Start/
// Bump/Expect/Error and get back Markers and CompletedMarkers, and the
// Builder turns the resulting event list into a green tree afterwards.
//
// Every grammar entry point must either consume at least one token or
// call ErrAndBump, which both records an error and consumes a token —
// this is the progress guarantee that makes infinite loops on malformed
// input impossible; the fuel counter in Nth panics if a rule keeps
// looking ahead without consuming anything.
type Parser struct {
	tokens []Token // non-trivia tokens only
	trivia map[int][]Token // trivia immediately preceding tokens[i]; key len(tokens) holds trailing trivia
	pos    int
	events []event
	fuel   int // guards against accidental non-terminating grammar bugs

	depth    int // current Start/Complete nesting, used for the recursion guard
	maxDepth int
}

const parserFuel = 1 << 20

// defaultMaxParseDepth is the nesting limit used when a caller doesn't
// supply its own, e.g. via NewParserWithDepth / config.Analyzer.
const defaultMaxParseDepth = 128

// NewParser lexes text and builds a Parser ready to run a grammar entry
// point over it. Trivia tokens are pulled out of the lookahead stream
// (the grammar never needs to see them) but kept alongside so the
// Builder can re-attach them to the finished tree.
func NewParser(text string) *Parser {
	return NewParserWithDepth(text, defaultMaxParseDepth)
}

// NewParserWithDepth is NewParser with an explicit nesting limit, plumbed
// through from an analyzer config's MaxParseDepth.
func NewParserWithDepth(text string, maxDepth int) *Parser {
	all := Tokenize(text)
	p := &Parser{trivia: make(map[int][]Token), fuel: parserFuel, maxDepth: maxDepth}
	var pending []Token
	for _, t := range all {
		if t.Kind.IsTrivia() {
			pending = append(pending, t)
			continue
		}
		if len(pending) > 0 {
			p.trivia[len(p.tokens)] = pending
			pending = nil
		}
		p.tokens = append(p.tokens, t)
	}
	if len(pending) > 0 {
		p.trivia[len(p.tokens)] = pending
	}
	return p
}

// TooDeep reports whether the parser has nested past its configured
// limit. The grammar checks it only at block boundaries (`{{{{...}}}}`),
// turning deeply nested blocks into a diagnostic instead of a stack
// overflow; other recursive productions, such as chained prefix
// operators (`!!!!a`), do not consult it.
func (p *Parser) TooDeep() bool { return p.depth > p.maxDepth }

// Marker references a not-yet-completed Start event.
type Marker struct {
	pos int // index into p.events
}

// CompletedMarker references a Start event that has been completed with
// a kind via Marker.Complete.
type CompletedMarker struct {
	pos  int
	kind SyntaxKind
}

// Current returns the kind of the next non-trivia token, or End past the
// end of input.
func (p *Parser) Current() SyntaxKind { return p.Nth(0) }

// Nth returns the kind of the non-trivia token k ahead of the cursor, or
// End if that is past the end of input.
func (p *Parser) Nth(k int) SyntaxKind {
	p.fuel--
	if p.fuel == 0 {
		panic("syntax: parser ran out of fuel — grammar rule is not making progress")
	}
	i := p.pos + k
	if i >= len(p.tokens) {
		return End
	}
	return p.tokens[i].Kind
}

// NthText returns the source text of the token k ahead of the cursor.
func (p *Parser) NthText(k int) string {
	i := p.pos + k
	if i >= len(p.tokens) {
		return ""
	}
	return p.tokens[i].Text
}

// At reports whether the next token has the given kind.
func (p *Parser) At(kind SyntaxKind) bool { return p.Current() == kind }

// AtSet reports whether the next token's kind is in set.
func (p *Parser) AtSet(set SyntaxSet) bool { return set.Contains(p.Current()) }

// AtEnd reports whether the parser has consumed every token.
func (p *Parser) AtEnd() bool { return p.Current() == End }

// Start opens a new, not-yet-typed node and returns a Marker for it.
func (p *Parser) Start() Marker {
	p.depth++
	p.events = append(p.events, event{kind: evStart, nodeKind: tombstone, forwardParent: -1})
	return Marker{pos: len(p.events) - 1}
}

// Bump unconditionally consumes the next token, whatever its kind, and
// emits it as a Token event.
func (p *Parser) Bump() {
	p.fuel = parserFuel
	if p.pos >= len(p.tokens) {
		return
	}
	t := p.tokens[p.pos]
	p.events = append(p.events, event{kind: evToken, tokenKind: t.Kind, tokenText: t.Text})
	p.pos++
}

// BumpRemap consumes the next token but records it under a different
// kind — used for contextual keywords lexed generically as Ident.
func (p *Parser) BumpRemap(kind SyntaxKind) {
	p.fuel = parserFuel
	if p.pos >= len(p.tokens) {
		return
	}
	t := p.tokens[p.pos]
	p.events = append(p.events, event{kind: evToken, tokenKind: kind, tokenText: t.Text})
	p.pos++
}

// Eat consumes the next token and returns true if it has the given
// kind; otherwise it leaves the cursor untouched and returns false.
func (p *Parser) Eat(kind SyntaxKind) bool {
	if !p.At(kind) {
		return false
	}
	p.Bump()
	return true
}

// Expect consumes the next token if it has the given kind; otherwise it
// records an error without consuming anything, so the caller's grammar
// rule can decide how to recover.
func (p *Parser) Expect(kind SyntaxKind) bool {
	if p.Eat(kind) {
		return true
	}
	p.Error("expected " + kind.Name())
	return false
}

// Error records a diagnostic at the current position without consuming
// any token.
func (p *Parser) Error(message string) {
	p.events = append(p.events, event{kind: evError, message: message})
}

// ErrAndBump records an error and unconditionally consumes one token,
// wrapping it in an Error node. This is the standard recovery move: it
// guarantees forward progress even when nothing in the grammar's first
// sets matches.
func (p *Parser) ErrAndBump(message string) {
	m := p.Start()
	p.Error(message)
	p.Bump()
	m.Complete(p, Error)
}

// Complete closes the node opened by m, assigning it kind. Returns a
// CompletedMarker that later grammar rules can use as the left operand
// of precede, to retroactively wrap it in an enclosing node.
func (m Marker) Complete(p *Parser, kind SyntaxKind) CompletedMarker {
	p.depth--
	p.events[m.pos].nodeKind = kind
	p.events = append(p.events, event{kind: evFinish})
	return CompletedMarker{pos: m.pos, kind: kind}
}

// Abandon discards the node opened by m without emitting it: the Start
// event is left as a tombstone, which the Builder skips entirely, and
// any tokens already bumped under it simply attach to whatever encloses
// m once that is completed.
func (m Marker) Abandon(p *Parser) {
	p.depth--
	if m.pos == len(p.events)-1 {
		p.events = p.events[:m.pos]
	}
}

// Precede opens a new node that starts before cm and will end up
// enclosing it — the standard way to turn an already-completed node
// into the left child of a bigger one, used for left-recursive
// productions like binary expressions and postfix chains.
//
// `2 + 3` is parsed by first completing `2` as a Literal, then calling
// Precede on that marker to open a BinExpr that starts at the same
// position as the Literal and will end after `3`.
func (cm CompletedMarker) Precede(p *Parser) Marker {
	newM := p.Start()
	p.events[cm.pos].forwardParent = newM.pos
	return newM
}

// Kind returns the syntax kind assigned to this completed node.
func (cm CompletedMarker) Kind() SyntaxKind { return cm.kind }
