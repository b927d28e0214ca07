package syntax

// HighlightTag classifies a span of source text for editor syntax
// highlighting.
type HighlightTag string

const (
	TagComment  HighlightTag = "comment"
	TagKeyword  HighlightTag = "keyword"
	TagFunction HighlightTag = "function"
	TagText     HighlightTag = "text"
	TagString   HighlightTag = "string"
	TagLiteral  HighlightTag = "literal"
)

// HighlightRange is one tagged span for the editor to colorize.
type HighlightRange struct {
	Range TextRange
	Tag   HighlightTag
}

// Highlight walks every token in the tree and assigns it a tag,
// skipping anything outside the enumerated tag set. Ranges are
// returned in document order and never overlap — every byte of the
// file maps to at most one HighlightRange, but most bytes (whitespace,
// punctuation, plain identifiers) map to none at all.
func Highlight(root *View) []HighlightRange {
	var out []HighlightRange
	tokens := root.Tokens()
	for i, t := range tokens {
		tag, ok := highlightTag(t, tokens, i)
		if !ok {
			continue
		}
		out = append(out, HighlightRange{Range: t.Range(), Tag: tag})
	}
	return out
}

func highlightTag(t *View, tokens []*View, i int) (HighlightTag, bool) {
	k := t.Kind()
	switch {
	case k == LineComment || k == BlockComment:
		return TagComment, true
	case k == Whitespace:
		return "", false
	case k.IsKeyword():
		return TagKeyword, true
	case k == Str || k == RawStr || k == ByteStr || k == RawByteStr || k == Char || k == Byte:
		return TagString, true
	case k == IntNumber || k == FloatNumber:
		return TagLiteral, true
	case k == Ident:
		if isFunctionNamePosition(t, tokens, i) {
			return TagFunction, true
		}
		if isMacroNamePosition(t, tokens, i) {
			return TagText, true
		}
		return "", false
	default:
		return "", false
	}
}

// isMacroNamePosition reports whether token i is an identifier
// immediately followed by `!`, the one other position the text tag
// covers: Glint has no macro-invocation grammar, so `name!(...)` parses
// as a plain path expression followed by stray tokens, but an editor
// still wants the macro name itself highlighted as something.
func isMacroNamePosition(t *View, tokens []*View, i int) bool {
	next := nextNonTrivia(tokens, i+1)
	return next != nil && next.Kind() == Excl
}

// isFunctionNamePosition reports whether token i is the name in a `fn
// name` declaration or the callee identifier immediately before `(` in
// a call expression — the two positions the function tag covers.
func isFunctionNamePosition(t *View, tokens []*View, i int) bool {
	if i+1 < len(tokens) && nextNonTrivia(tokens, i+1) != nil && nextNonTrivia(tokens, i+1).Kind() == LParen {
		return true
	}
	p := t.Parent()
	if p != nil && p.Kind() == Name {
		gp := p.Parent()
		if gp != nil && gp.Kind() == FnItem {
			return true
		}
	}
	return false
}

func nextNonTrivia(tokens []*View, i int) *View {
	for j := i; j < len(tokens); j++ {
		if !tokens[j].Kind().IsTrivia() {
			return tokens[j]
		}
	}
	return nil
}
