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

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Renderer renders diagnostics to a human-readable report.
//
// The zero Renderer is ready to use.
type Renderer struct {
	// Colorize enables ANSI color escapes in the rendered output.
	Colorize bool
}

// Render writes a rendering of every diagnostic in diags to out, in order,
// separated by a blank line. It returns the number of diagnostics rendered.
func (r Renderer) Render(out io.Writer, diags []*Diagnostic) (int, error) {
	for i, d := range diags {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return i, err
			}
		}
		if err := r.renderOne(out, d); err != nil {
			return i, err
		}
	}
	return len(diags), nil
}

func (r Renderer) renderOne(out io.Writer, d *Diagnostic) error {
	bold, reset, red := "", "", ""
	if r.Colorize {
		bold, reset, red = "\x1b[1m", "\x1b[0m", "\x1b[31m"
	}

	if _, err := fmt.Fprintf(out, "%serror%s: %s%s\n", bold+red, reset, bold, d.Reason.Message()); err != nil {
		return err
	}
	if _, err := fmt.Fprint(out, reset); err != nil {
		return err
	}

	labels := append([]Annotation(nil), d.Reason.Labels()...)
	sort.SliceStable(labels, func(i, j int) bool { return labels[i].Priority > labels[j].Priority })

	// Group labels that land on the same source line so their carets can
	// share one snippet.
	byLine := map[int][]Annotation{}
	var order []int
	for _, lbl := range labels {
		if lbl.Span.File == nil {
			continue
		}
		line := lbl.Span.StartLoc().Line
		if _, ok := byLine[line]; !ok {
			order = append(order, line)
		}
		byLine[line] = append(byLine[line], lbl)
	}

	for _, line := range order {
		lbls := byLine[line]
		file := lbls[0].Span.File
		if _, err := fmt.Fprintf(out, "  --> %s:%d:%d\n", file.Path, line, lbls[0].Span.StartLoc().Column); err != nil {
			return err
		}

		text := file.Line(line)
		if _, err := fmt.Fprintf(out, "   | %s\n", text); err != nil {
			return err
		}

		// Render one caret row per label, in decreasing priority, so the
		// highest-priority caret row appears nearest the source line.
		for i := 0; i < len(lbls); i++ {
			lbl := lbls[i]
			start := lbl.Span.StartLoc()
			end := lbl.Span.EndLoc()
			col := columnWidth(text, start.Column-1)
			width := columnWidth(text, end.Column-1) - col
			if end.Line != start.Line || width <= 0 {
				width = 1
			}

			caret := strings.Repeat(" ", col) + strings.Repeat("^", width)
			if _, err := fmt.Fprintf(out, "   | %s %s\n", caret, lbl.Message); err != nil {
				return err
			}
		}
	}

	for _, rem := range d.Remarks {
		prefix := "note"
		if rem.Kind == Help {
			prefix = "help"
		}
		if _, err := fmt.Fprintf(out, "  = %s: %s\n", prefix, rem.Text); err != nil {
			return err
		}
	}

	return nil
}

// columnWidth returns the rendered terminal-cell width of text up to the
// given byte offset (a [Location] column minus one), accounting for
// multi-codepoint grapheme clusters (e.g. combining marks) via uniseg so
// carets line up under wide or multi-byte characters the same way a real
// terminal would draw them.
func columnWidth(text string, offset int) int {
	width := 0
	count := 0
	gr := uniseg.NewGraphemes(text)
	for count < offset && gr.Next() {
		width += gr.Width()
		count += len(gr.Str())
	}
	return width
}
