package syntax

import "unicode"

// IsNewline returns true if the character is a newline character.
func IsNewline(c rune) bool {
	switch c {
	// Line Feed, Vertical Tab, Form Feed, Carriage Return.
	case '\n', '\x0B', '\x0C', '\r':
		return true
	// Next Line, Line Separator, Paragraph Separator.
	case '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// IsIDStart returns true if the character can start an identifier. This
// uses Unicode XID_Start plus underscore.
func IsIDStart(c rune) bool {
	return unicode.Is(unicode.L, c) || // Letters
		unicode.Is(unicode.Nl, c) || // Letter numbers
		c == '_'
}

// IsIDContinue returns true if the character can continue an identifier.
// This uses Unicode XID_Continue plus underscore.
func IsIDContinue(c rune) bool {
	return unicode.Is(unicode.L, c) || // Letters
		unicode.Is(unicode.Nl, c) || // Letter numbers
		unicode.Is(unicode.Mn, c) || // Nonspacing marks
		unicode.Is(unicode.Mc, c) || // Spacing combining marks
		unicode.Is(unicode.Nd, c) || // Decimal digits
		unicode.Is(unicode.Pc, c) || // Connector punctuation
		c == '_'
}

// IsIdent returns true if the string is a valid Glint identifier.
func IsIdent(s string) bool {
	if len(s) == 0 {
		return false
	}
	runes := []rune(s)
	if !IsIDStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !IsIDContinue(r) {
			return false
		}
	}
	return true
}
