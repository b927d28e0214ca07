package syntax

// Token is a single lexed (kind, text) pair. The lexer produces every
// byte of the source as some token, including whitespace and comments:
// there is no "skip trivia" step before this, only after, in the parser.
type Token struct {
	Kind SyntaxKind
	Text string
}

// Lexer wraps a Scanner and turns Glint source text into a flat token
// list. It never fails: unrecognized bytes become single-byte Error
// tokens, so the tokenizer — like the parser above it — describes the
// input rather than rejecting it.
type Lexer struct {
	s *Scanner
}

// NewLexer creates a lexer for the given source text.
func NewLexer(text string) *Lexer {
	return &Lexer{s: NewScanner(text)}
}

var keywords = map[string]SyntaxKind{
	"let":    Let,
	"fn":     Fn,
	"if":     If,
	"else":   Else,
	"match":  Match,
	"return": Return,
	"pub":    Pub,
	"mut":    Mut,
	"move":   Move,
	"unsafe": Unsafe,
	"struct": Struct,
	"mod":    Mod,
	"enum":   Enum,
	"type":   Type,
	"static": Static,
	"const":  Const,
	"true":   True,
	"false":  False,
}

// Tokenize lexes the entire source and returns its tokens, in order,
// covering every byte of text.
func Tokenize(text string) []Token {
	lx := NewLexer(text)
	var out []Token
	for {
		tok, ok := lx.next()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out
}

func (l *Lexer) next() (Token, bool) {
	if l.s.Done() {
		return Token{}, false
	}
	start := l.s.Cursor()
	c := l.s.Peek()

	switch {
	case c == ' ' || c == '\t' || IsNewline(c):
		l.s.EatWhile(func(r rune) bool { return r == ' ' || r == '\t' || IsNewline(r) })
		return Token{Kind: Whitespace, Text: l.s.From(start)}, true

	case l.s.At("//"):
		l.s.EatUntil(IsNewline)
		return Token{Kind: LineComment, Text: l.s.From(start)}, true

	case l.s.At("/*"):
		l.s.Advance(2)
		depth := 1
		for !l.s.Done() && depth > 0 {
			switch {
			case l.s.At("/*"):
				l.s.Advance(2)
				depth++
			case l.s.At("*/"):
				l.s.Advance(2)
				depth--
			default:
				l.s.Eat()
			}
		}
		return Token{Kind: BlockComment, Text: l.s.From(start)}, true

	case c == '"':
		l.lexString()
		return Token{Kind: Str, Text: l.s.From(start)}, true

	case c == '\'':
		return Token{Kind: l.lexCharOrLabel(), Text: l.s.From(start)}, true

	case IsIDStart(c):
		word := l.s.EatWhile(IsIDContinue)
		if word == "_" {
			return Token{Kind: Underscore, Text: word}, true
		}
		if kw, ok := keywords[word]; ok {
			return Token{Kind: kw, Text: word}, true
		}
		return Token{Kind: Ident, Text: word}, true

	case c >= '0' && c <= '9':
		return Token{Kind: l.lexNumber(), Text: l.s.From(start)}, true

	default:
		return l.lexPunct(start)
	}
}

func (l *Lexer) lexString() {
	l.s.Eat() // opening quote
	for !l.s.Done() {
		if l.s.EatIf('\\') {
			if !l.s.Done() {
				l.s.Eat()
			}
			continue
		}
		if l.s.EatIf('"') {
			return
		}
		l.s.Eat()
	}
}

// lexCharOrLabel disambiguates a leading `'` between a char literal
// (`'a'`) and, failing that, an error token for a stray quote.
func (l *Lexer) lexCharOrLabel() SyntaxKind {
	l.s.Eat() // opening quote
	if l.s.EatIf('\\') {
		if !l.s.Done() {
			l.s.Eat()
		}
	} else if !l.s.Done() {
		l.s.Eat()
	}
	if l.s.EatIf('\'') {
		return Char
	}
	return Error
}

func (l *Lexer) lexNumber() SyntaxKind {
	l.s.EatWhile(func(r rune) bool { return r >= '0' && r <= '9' || r == '_' })
	kind := IntNumber
	if l.s.At(".") && l.s.Scout(1) >= '0' && l.s.Scout(1) <= '9' {
		l.s.Eat()
		l.s.EatWhile(func(r rune) bool { return r >= '0' && r <= '9' || r == '_' })
		kind = FloatNumber
	}
	if l.s.AtAny('e', 'E') {
		save := l.s.Cursor()
		l.s.Eat()
		if !l.s.EatIf('+') {
			l.s.EatIf('-')
		}
		digits := l.s.EatWhile(func(r rune) bool { return r >= '0' && r <= '9' })
		if digits == "" {
			l.s.Jump(save)
		} else {
			kind = FloatNumber
		}
	}
	return kind
}

func (l *Lexer) lexPunct(start int) (Token, bool) {
	two := func(k SyntaxKind) (Token, bool) {
		l.s.Advance(2)
		return Token{Kind: k, Text: l.s.From(start)}, true
	}
	one := func(k SyntaxKind) (Token, bool) {
		l.s.Advance(1)
		return Token{Kind: k, Text: l.s.From(start)}, true
	}
	switch {
	case l.s.At("::"):
		return two(ColonColon)
	case l.s.At("=="):
		return two(EqEq)
	case l.s.At("!="):
		return two(Neq)
	case l.s.At("<="):
		return two(LtEq)
	case l.s.At(">="):
		return two(GtEq)
	case l.s.At("=>"):
		return two(FatArrow)
	case l.s.At("->"):
		return two(Arrow)
	case l.s.At(".."):
		return two(DotDot)
	case l.s.At("&"):
		return one(Amp)
	case l.s.At("*"):
		return one(Star)
	case l.s.At("!"):
		return one(Excl)
	case l.s.At("?"):
		return one(Question)
	case l.s.At("."):
		return one(Dot)
	case l.s.At(","):
		return one(Comma)
	case l.s.At(";"):
		return one(Semi)
	case l.s.At(":"):
		return one(Colon)
	case l.s.At("="):
		return one(Eq)
	case l.s.At("<"):
		return one(Lt)
	case l.s.At(">"):
		return one(Gt)
	case l.s.At("-"):
		return one(Minus)
	case l.s.At("+"):
		return one(Plus)
	case l.s.At("/"):
		return one(Slash)
	case l.s.At("|"):
		return one(Pipe)
	case l.s.At("("):
		return one(LParen)
	case l.s.At(")"):
		return one(RParen)
	case l.s.At("{"):
		return one(LBrace)
	case l.s.At("}"):
		return one(RBrace)
	case l.s.At("["):
		return one(LBracket)
	case l.s.At("]"):
		return one(RBracket)
	case l.s.At("#"):
		return one(Pound)
	case l.s.At("_"):
		return one(Underscore)
	default:
		return one(Error)
	}
}
