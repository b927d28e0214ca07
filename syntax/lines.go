package syntax

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Position is a 1-based line and a 0-based UTF-16 column, the shape LSP
// clients expect.
type Position struct {
	Line     int
	UTF16Col int
}

// Lines indexes a source string's line-start byte offsets once so that
// byte-offset ⇄ Position conversions don't rescan the whole file on
// every call — ported from the teacher's source.go Lines type, retargeted
// from Typst's markup positions to Glint's plain UTF-8 text.
type Lines struct {
	text       string
	lineStarts []TextUnit
}

// NewLines indexes text.
func NewLines(text string) *Lines {
	starts := []TextUnit{0}
	for i, r := range text {
		if IsNewline(r) {
			starts = append(starts, TextUnit(i+len(string(r))))
		}
	}
	return &Lines{text: text, lineStarts: starts}
}

// Position converts a byte offset into a 1-based line and a UTF-16
// column on that line. Column counting walks grapheme clusters via
// uniseg and adds up the UTF-16 code units of each cluster's runes, so
// the column equals the UTF-16 code unit count of the line's text
// before offset.
func (l *Lines) Position(offset TextUnit) Position {
	line := l.lineIndex(offset)
	lineStart := l.lineStarts[line]
	lineText := l.text[lineStart:offset]

	col := 0
	state := -1
	remainder := lineText
	for len(remainder) > 0 {
		var cluster string
		cluster, remainder, _, state = uniseg.FirstGraphemeClusterInString(remainder, state)
		col += utf16Len(cluster)
	}
	return Position{Line: line + 1, UTF16Col: col}
}

// Offset converts a Position back to a byte offset. If the position's
// column is past the end of its line, the offset just past the line's
// newline (the start of the next line, or the end of the text on the
// last line) is returned.
func (l *Lines) Offset(pos Position) TextUnit {
	line := pos.Line - 1
	if line < 0 {
		line = 0
	}
	if line >= len(l.lineStarts) {
		return TextUnit(len(l.text))
	}
	lineStart := l.lineStarts[line]
	lineEnd := TextUnit(len(l.text))
	if line+1 < len(l.lineStarts) {
		lineEnd = l.lineStarts[line+1]
	}
	remainder := l.text[lineStart:lineEnd]

	col := 0
	state := -1
	offset := lineStart
	for len(remainder) > 0 && col < pos.UTF16Col {
		var cluster string
		cluster, remainder, _, state = uniseg.FirstGraphemeClusterInString(remainder, state)
		col += utf16Len(cluster)
		offset += TextUnit(len(cluster))
	}
	return offset
}

func (l *Lines) lineIndex(offset TextUnit) int {
	lo, hi := 0, len(l.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// LineText returns the text of the given 1-based line, without its
// trailing newline.
func (l *Lines) LineText(line int) string {
	idx := line - 1
	if idx < 0 || idx >= len(l.lineStarts) {
		return ""
	}
	start := l.lineStarts[idx]
	end := TextUnit(len(l.text))
	if idx+1 < len(l.lineStarts) {
		end = l.lineStarts[idx+1]
	}
	return strings.TrimRight(l.text[start:end], "\r\n")
}
