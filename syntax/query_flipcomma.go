package syntax

// FlipComma finds the comma nearest the cursor offset (the token the
// cursor sits immediately before or after) and, if it separates two
// list elements (struct literal fields, parameters, arguments, enum
// variants, ...), returns the TextEdit that swaps the element before it
// with the element after it — applying the same edit twice is
// idempotent, since it simply swaps the two ranges back.
func FlipComma(root *View, cursor TextUnit) (TextEdit, bool) {
	comma := findComma(root, cursor)
	if comma == nil {
		return TextEdit{}, false
	}
	before := comma.PrevSibling()
	after := comma.NextSibling()
	for after != nil && after.Kind().IsTrivia() {
		after = after.NextSibling()
	}
	for before != nil && before.Kind().IsTrivia() {
		before = before.PrevSibling()
	}
	if before == nil || after == nil {
		return TextEdit{}, false
	}

	beforeText := before.Text()
	afterText := after.Text()
	lo := before.Range().Start
	hi := after.Range().End
	combined := root.Text()[lo:hi]

	replacement := afterText + combined[before.Range().Len():len(combined)-after.Range().Len()] + beforeText
	return TextEdit{
		Range:       TextRange{Start: lo, End: hi},
		Replacement: replacement,
	}, true
}

// findComma returns the Comma token immediately before or after cursor,
// preferring the earlier one when the cursor sits between two adjacent
// commas, or nil if no comma touches cursor.
func findComma(root *View, cursor TextUnit) *View {
	tokens := root.Tokens()
	for _, t := range tokens {
		if t.Kind() != Comma {
			continue
		}
		if t.Range().ContainsInclusive(cursor) {
			return t
		}
	}
	return nil
}
