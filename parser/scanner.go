// Package parser turns script source text into a tree of [ast.ParsedExpr]
// nodes, collecting a diagnostic for every malformed command or argument it
// encounters along the way rather than stopping at the first one.
package parser

import (
	"unicode/utf8"

	"github.com/sullyy9/gallivant/report"
)

// scanner is a byte-cursor reader over one script's source text. It never
// panics on malformed UTF-8: a bad byte is treated as a single-byte rune so
// the parser can still report a span for it.
type scanner struct {
	file *report.File
	src  string
	pos  int
}

func newScanner(file *report.File) *scanner {
	return &scanner{file: file, src: file.Text}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() (rune, int) {
	if s.eof() {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, size
}

func (s *scanner) advance() rune {
	r, size := s.peek()
	s.pos += size
	return r
}

// span returns the span from start to the scanner's current position.
func (s *scanner) span(start int) report.Span {
	return report.Span{File: s.file, Start: start, End: s.pos}
}

// isInlineSpace reports whether r is whitespace that is not a line break:
// the grammar treats newlines specially, as item separators, rather than as
// ordinary padding.
func isInlineSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r':
		return true
	default:
		return false
	}
}

// skipInlineSpace consumes a run of inline whitespace.
func (s *scanner) skipInlineSpace() {
	for {
		r, size := s.peek()
		if size == 0 || !isInlineSpace(r) {
			return
		}
		s.pos += size
	}
}

// skipSeparators consumes any mix of inline whitespace and newlines between
// top-level items.
func (s *scanner) skipSeparators() {
	for {
		r, size := s.peek()
		if size == 0 || !(isInlineSpace(r) || r == '\n') {
			return
		}
		s.pos += size
	}
}

func isDigit(r rune, radix int) bool {
	switch {
	case radix == 10:
		return r >= '0' && r <= '9'
	case radix == 16:
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	default:
		return false
	}
}

// scanDigits consumes one or more digits of the given radix, returning the
// text scanned and whether at least one digit was found.
func (s *scanner) scanDigits(radix int) (string, bool) {
	start := s.pos
	for {
		r, size := s.peek()
		if size == 0 || !isDigit(r, radix) {
			break
		}
		s.pos += size
	}
	if s.pos == start {
		return "", false
	}
	return s.src[start:s.pos], true
}

// isIdentChar reports whether r can appear in (or immediately follow) a
// bare keyword. It's used to enforce keyword word-boundaries: "HPMODE" must
// not match a prefix of "HPMODEX".
func isIdentChar(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// peekKeyword reports whether the exact keyword kw begins at the current
// position and is not immediately followed by another identifier
// character. It does not consume anything.
func (s *scanner) peekKeyword(kw string) bool {
	if s.pos+len(kw) > len(s.src) {
		return false
	}
	if s.src[s.pos:s.pos+len(kw)] != kw {
		return false
	}
	if s.pos+len(kw) < len(s.src) {
		r, _ := utf8.DecodeRuneInString(s.src[s.pos+len(kw):])
		if isIdentChar(r) {
			return false
		}
	}
	return true
}
