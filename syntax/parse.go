package syntax

// Tree is the result of parsing a source file: the green tree wrapped in
// a root View, plus whatever diagnostics the parser recorded along the
// way.
type Tree struct {
	Root        *View
	Diagnostics []Diagnostic
}

// Parse lexes and parses a complete Glint source file. It never returns
// an error: malformed input is represented as Error nodes inside the
// tree plus entries in Diagnostics, per the lossless-parsing invariant
// every query in this package relies on.
func Parse(text string) Tree {
	return ParseWithDepth(text, defaultMaxParseDepth)
}

// ParseWithDepth is Parse with an explicit block-nesting limit, plumbed
// through from an analyzer config's MaxParseDepth.
func ParseWithDepth(text string, maxDepth int) Tree {
	p := NewParserWithDepth(text, maxDepth)
	sourceFile(p)
	green, diags := NewBuilder(p).Build()
	return Tree{Root: NewView(green), Diagnostics: diags}
}

func sourceFile(p *Parser) {
	m := p.Start()
	for !p.AtEnd() {
		stmt(p)
	}
	m.Complete(p, SourceFile)
}
