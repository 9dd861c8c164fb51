// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report implements structured diagnostics: source spans, labelled
// annotations, and a renderer that turns them into a human-readable report.
package report

import (
	"fmt"
	"strings"
)

// File is a source file involved in a diagnostic.
type File struct {
	// Path is the filesystem path for this file. It doesn't need to be a
	// real path; it is used only to label spans in rendered output.
	Path string

	// Text is the complete source text.
	Text string

	lineStarts []int
}

// NewFile indexes a file's line-start offsets so that spans can be resolved
// to line/column locations in O(log n).
func NewFile(path, text string) *File {
	f := &File{Path: path, Text: text}
	f.lineStarts = []int{0}
	for i, b := range []byte(text) {
		if b == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// Location is a 1-indexed line/column pair.
type Location struct {
	Line, Column int
}

// Search returns the location of the given byte offset within f.
func (f *File) Search(offset int) Location {
	// Binary search for the last line start <= offset.
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Location{Line: lo + 1, Column: offset - f.lineStarts[lo] + 1}
}

// Line returns the text of the given 1-indexed line, without its trailing
// newline.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[n-1]
	end := len(f.Text)
	if n < len(f.lineStarts) {
		end = f.lineStarts[n] - 1
	}
	return strings.TrimRight(f.Text[start:end], "\r")
}

// Span is a half-open byte range within a [File].
//
// The zero Span refers to no file and is only meaningful as a placeholder
// (e.g. for expressions synthesized in tests, which do not carry real source
// positions). Two spans compare equal by file and offsets only.
type Span struct {
	File       *File
	Start, End int
}

// Spanner is any value with a span, e.g. an AST node.
type Spanner interface {
	Span() Span
}

// Text returns the source text covered by this span.
func (s Span) Text() string {
	if s.File == nil {
		return ""
	}
	return s.File.Text[s.Start:s.End]
}

// StartLoc returns the start location for this span.
func (s Span) StartLoc() Location {
	return s.File.Search(s.Start)
}

// EndLoc returns the end location for this span.
func (s Span) EndLoc() Location {
	return s.File.Search(s.End)
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.File == nil {
		return fmt.Sprintf("<synthetic>[%d:%d]", s.Start, s.End)
	}
	return fmt.Sprintf("%s[%d:%d]", s.File.Path, s.Start, s.End)
}
