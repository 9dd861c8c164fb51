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

import "fmt"

// Annotation is a labelled source span attached to a diagnostic.
//
// When two annotations overlap in the rendered output, Priority breaks the
// tie: the annotation with the higher priority is drawn on top.
type Annotation struct {
	Span
	Message  string
	Priority int
}

// Reason is a closed sum of diagnosable failure causes. It is sealed by the
// unexported isReason method so that external packages cannot introduce new
// variants; report.Diagnostic's rendering logic can therefore switch over the
// concrete type exhaustively.
type Reason interface {
	// Message is the diagnostic's one-line summary.
	Message() string
	// Labels returns the annotated spans explaining this reason, ordered by
	// decreasing Priority.
	Labels() []Annotation

	isReason()
}

// NoteKind distinguishes a plain clarifying note from an actionable
// suggestion.
type NoteKind int

const (
	// Note is a clarifying remark.
	Note NoteKind = iota
	// Help is an actionable suggestion ("try removing the quotes").
	Help
)

// Remark is a single note or help message attached to a diagnostic.
type Remark struct {
	Kind NoteKind
	Text string
}

// Diagnostic is a single reported problem: a reason plus an ordered list of
// supplementary notes and help messages.
type Diagnostic struct {
	Reason  Reason
	Remarks []Remark
}

// New builds a diagnostic from a reason.
func New(reason Reason) *Diagnostic {
	return &Diagnostic{Reason: reason}
}

// WithNote appends a plain clarifying note.
func (d *Diagnostic) WithNote(format string, args ...any) *Diagnostic {
	d.Remarks = append(d.Remarks, Remark{Kind: Note, Text: fmt.Sprintf(format, args...)})
	return d
}

// WithHelp appends an actionable suggestion.
func (d *Diagnostic) WithHelp(format string, args ...any) *Diagnostic {
	d.Remarks = append(d.Remarks, Remark{Kind: Help, Text: fmt.Sprintf(format, args...)})
	return d
}

// Error implements the error interface, so a *Diagnostic can be handled by
// code that only cares about a plain error, not rendering.
func (d *Diagnostic) Error() string {
	return d.Reason.Message()
}
