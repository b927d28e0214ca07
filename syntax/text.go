package syntax

import "fmt"

// TextUnit is a byte offset into a source buffer.
type TextUnit uint32

// TextRange is a half-open byte range [Start, End) into a source buffer.
// All offsets are byte offsets; the core never decodes characters.
type TextRange struct {
	Start TextUnit
	End   TextUnit
}

// NewTextRange builds a range, panicking if start > end.
func NewTextRange(start, end TextUnit) TextRange {
	if start > end {
		panic("syntax: TextRange start > end")
	}
	return TextRange{Start: start, End: end}
}

// RangeOffsetLen builds a range from an offset and a length.
func RangeOffsetLen(offset TextUnit, length int) TextRange {
	return NewTextRange(offset, offset+TextUnit(length))
}

// Len returns the length of the range in bytes.
func (r TextRange) Len() int {
	return int(r.End - r.Start)
}

// IsEmpty returns true if the range has zero length.
func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the range contains the given offset (End is
// exclusive).
func (r TextRange) Contains(offset TextUnit) bool {
	return r.Start <= offset && offset < r.End
}

// ContainsInclusive returns true if the range contains the given offset,
// treating End as inclusive — used for cursor positions that may sit
// directly after the range.
func (r TextRange) ContainsInclusive(offset TextUnit) bool {
	return r.Start <= offset && offset <= r.End
}

// IsSubrange returns true if r is fully contained within other.
func (r TextRange) IsSubrange(other TextRange) bool {
	return other.Start <= r.Start && r.End <= other.End
}

// Intersect returns the overlap between r and other, and whether they
// overlap at all.
func (r TextRange) Intersect(other TextRange) (TextRange, bool) {
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	if start > end {
		return TextRange{}, false
	}
	return TextRange{Start: start, End: end}, true
}

// Translate shifts the range by a (possibly negative, as delta) amount.
func (r TextRange) Translate(delta int) TextRange {
	return TextRange{
		Start: TextUnit(int(r.Start) + delta),
		End:   TextUnit(int(r.End) + delta),
	}
}

// String implements fmt.Stringer.
func (r TextRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// TextEdit is one replacement within an ordered, non-overlapping list of
// edits applied to a source string.
type TextEdit struct {
	Range       TextRange
	Replacement string
}

// ApplyTextEdits applies an ordered, non-overlapping list of edits to text,
// returning the new string. Edits must be sorted by Range.Start ascending.
func ApplyTextEdits(text string, edits []TextEdit) string {
	var out []byte
	cursor := TextUnit(0)
	for _, e := range edits {
		out = append(out, text[cursor:e.Range.Start]...)
		out = append(out, e.Replacement...)
		cursor = e.Range.End
	}
	out = append(out, text[cursor:]...)
	return string(out)
}
