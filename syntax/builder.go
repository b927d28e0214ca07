package syntax

// Builder turns a Parser's flat event stream into a green tree. It runs
// as a second pass after parsing finishes, so it can resolve forward
// parents (which point at events recorded earlier in the stream but
// logically enclose them) before building anything.
//
// Trivia attachment policy: the trivia immediately preceding a node is
// split into two parts on the Whitespace token holding its last
// newline. The part up to and including that token attaches backward,
// as trailing trivia of whatever node was most recently closed; the
// part after it (comments on the next line, and whatever follows them)
// attaches forward, as leading trivia of the node about to be opened.
// The lexer emits a newline and the next line's indentation as one
// Whitespace token, so that indentation goes backward with the newline.
// Trivia right before a token is attached forward as a whole, and
// trivia at the end of input becomes the last children of the root. A trivia run
// containing a blank line (two or more newlines) always attaches
// forward in its entirety — a blank line reads as "separates from what
// came before", never as a trailing comment on the previous node.
//
// This mirrors the convention rust-analyzer's tree builder uses so that
// a trailing line comment (`let x = 1; // why`) stays attached to the
// statement it follows, while a comment that introduces the next item
// attaches to that item instead.
type Builder struct {
	p *Parser
}

// NewBuilder creates a Builder for the events recorded by p. Call after
// the grammar entry point has returned (and ideally after AtEnd is
// true).
func NewBuilder(p *Parser) *Builder {
	return &Builder{p: p}
}

// Build resolves the event stream into a green tree together with the
// diagnostics recorded by Parser.Error along the way.
func (b *Builder) Build() (*Node, []Diagnostic) {
	resolved := resolveForwardParents(b.p.events)
	bld := &treeBuilder{p: b.p, tokenStart: tokenStartOffsets(b.p)}
	bld.run(resolved)
	return bld.root, bld.errs
}

// tokenStartOffsets computes, once and before any trivia is consumed by
// the build walk, the absolute byte offset of the start of every token
// (i.e. right after its own leading trivia), plus a trailing entry for
// end-of-input. treeBuilder.run deletes from p.trivia as it flushes each
// run, so this snapshot — not a live re-read of p.trivia — is what
// offsetOfToken must consult.
func tokenStartOffsets(p *Parser) []TextUnit {
	starts := make([]TextUnit, len(p.tokens)+1)
	off := 0
	for i := 0; i < len(p.tokens); i++ {
		off += triviaLen(p.trivia[i])
		starts[i] = TextUnit(off)
		off += len(p.tokens[i].Text)
	}
	off += triviaLen(p.trivia[len(p.tokens)])
	starts[len(p.tokens)] = TextUnit(off)
	return starts
}

// resolveForwardParents rewrites the event stream so that every Start
// event appears in proper nesting order: when event i has a forward
// parent j (CompletedMarker.Precede was called on i's completed node to
// open j), j's Start must be emitted immediately before i's in the
// output, even though the parser recorded j strictly after i. Forward
// parent chains may be longer than one link; we resolve the whole chain
// before emitting i.
//
// Finish events never move: the parser always closes nodes in strictly
// nested order, so their original positions already describe the
// correct tree shape once Starts are reordered.
func resolveForwardParents(events []event) []event {
	n := len(events)
	isForwardTarget := make([]bool, n)
	for _, e := range events {
		if e.kind == evStart && e.forwardParent >= 0 {
			isForwardTarget[e.forwardParent] = true
		}
	}

	out := make([]event, 0, n)
	emitted := make([]bool, n)

	var emitChain func(i int)
	emitChain = func(i int) {
		if emitted[i] {
			return
		}
		if events[i].forwardParent >= 0 {
			emitChain(events[i].forwardParent)
		}
		emitted[i] = true
		out = append(out, event{kind: evStart, nodeKind: events[i].nodeKind})
	}

	for i, e := range events {
		switch e.kind {
		case evStart:
			if isForwardTarget[i] {
				// Spliced in by emitChain when its dependent is reached.
				continue
			}
			emitChain(i)
		default:
			out = append(out, e)
		}
	}
	return out
}

type treeBuilder struct {
	p    *Parser
	root *Node
	errs []Diagnostic

	stack      []*nodeBuilder
	tokenIx    int
	tokenStart []TextUnit
}

type nodeBuilder struct {
	kind     SyntaxKind
	children []*Node
}

func (b *treeBuilder) run(events []event) {
	for _, e := range events {
		switch e.kind {
		case evStart:
			if e.nodeKind == tombstone {
				continue
			}
			b.flushTrivia(false)
			b.stack = append(b.stack, &nodeBuilder{kind: e.nodeKind})
		case evToken:
			b.flushTrivia(true)
			top := b.stack[len(b.stack)-1]
			top.children = append(top.children, NewLeaf(e.tokenKind, e.tokenText))
			b.tokenIx++
		case evFinish:
			if len(b.stack) == 1 {
				b.flushTrailing()
			}
			top := b.stack[len(b.stack)-1]
			b.stack = b.stack[:len(b.stack)-1]
			node := NewInner(top.kind, top.children)
			if len(b.stack) == 0 {
				b.root = node
			} else {
				parent := b.stack[len(b.stack)-1]
				parent.children = append(parent.children, node)
			}
		case evError:
			b.errs = append(b.errs, Diagnostic{Offset: b.offsetOfToken(b.tokenIx), Message: e.message, Hints: e.hints})
		}
	}
}

// offsetOfToken returns the absolute byte offset of the start of token
// index i, from the snapshot taken before the build walk started
// mutating p.trivia.
func (b *treeBuilder) offsetOfToken(i int) TextUnit {
	if i >= len(b.tokenStart) {
		return b.tokenStart[len(b.tokenStart)-1]
	}
	return b.tokenStart[i]
}

// triviaLen sums the byte length of a trivia run, for offset math only.
func triviaLen(trivia []Token) int {
	n := 0
	for _, t := range trivia {
		n += len(t.Text)
	}
	return n
}

// flushTrivia attaches the trivia immediately preceding token b.tokenIx.
// aboutToBumpToken is true right before a Token event (leading trivia
// of an about-to-be-consumed token always attaches forward); it is
// false at a Start boundary, where the backward/forward split
// documented on Builder applies. While no node is open yet, the trivia
// is left in place for the next event to attach.
func (b *treeBuilder) flushTrivia(aboutToBumpToken bool) {
	trivia := b.p.trivia[b.tokenIx]
	if len(trivia) == 0 || len(b.stack) == 0 {
		return
	}
	delete(b.p.trivia, b.tokenIx)

	if aboutToBumpToken || len(b.stack) == 0 {
		b.attachForward(trivia)
		return
	}

	back, forward, hasBlankLine := splitTrivia(trivia)
	if hasBlankLine || len(back) == 0 {
		b.attachForward(trivia)
		return
	}
	b.attachBackward(back)
	if len(forward) > 0 {
		b.attachForward(forward)
	}
}

func (b *treeBuilder) flushTrailing() {
	trivia := b.p.trivia[len(b.p.tokens)]
	if len(trivia) == 0 {
		return
	}
	delete(b.p.trivia, len(b.p.tokens))
	b.attachForward(trivia)
}

// attachForward appends trivia as the next children of whatever node is
// currently open — i.e. leading trivia of the thing about to follow.
func (b *treeBuilder) attachForward(trivia []Token) {
	if len(b.stack) == 0 {
		return
	}
	top := b.stack[len(b.stack)-1]
	for _, t := range trivia {
		top.children = append(top.children, NewLeaf(t.Kind, t.Text))
	}
}

// attachBackward appends trivia as trailing children of the
// most-recently-closed node, by rebuilding that inner node with the
// trivia added after its own children. When the most recent child is a
// token leaf, the trivia is appended right after it as further children
// of the open node, leaving the leaf itself unchanged.
func (b *treeBuilder) attachBackward(trivia []Token) {
	if len(b.stack) == 0 {
		return
	}
	top := b.stack[len(b.stack)-1]
	if len(top.children) == 0 {
		b.attachForward(trivia)
		return
	}
	last := top.children[len(top.children)-1]
	leaves := make([]*Node, 0, len(trivia))
	for _, t := range trivia {
		leaves = append(leaves, NewLeaf(t.Kind, t.Text))
	}
	if last.IsLeaf() {
		top.children = append(top.children, leaves...)
		return
	}
	merged := append(append([]*Node{}, last.Children()...), leaves...)
	top.children[len(top.children)-1] = NewInner(last.Kind(), merged)
}

// splitTrivia divides a trivia run into a "back" portion (everything up
// to and including the Whitespace token holding the last newline) and a
// "forward" portion (the tokens after it), and reports whether the run contains a
// blank line (two or more newlines within one Whitespace token, which is
// how the lexer represents a run of blank lines).
func splitTrivia(trivia []Token) (back, forward []Token, hasBlankLine bool) {
	lastNewlineTok := -1
	for i, t := range trivia {
		if t.Kind == Whitespace && containsNewline(t.Text) {
			lastNewlineTok = i
			if countNewlines(t.Text) >= 2 {
				hasBlankLine = true
			}
		}
	}
	if lastNewlineTok == -1 {
		return nil, trivia, false
	}
	return trivia[:lastNewlineTok+1], trivia[lastNewlineTok+1:], hasBlankLine
}

func containsNewline(s string) bool {
	for _, r := range s {
		if IsNewline(r) {
			return true
		}
	}
	return false
}

func countNewlines(s string) int {
	n := 0
	for _, r := range s {
		if IsNewline(r) {
			n++
		}
	}
	return n
}
