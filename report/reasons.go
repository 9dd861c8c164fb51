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

// Unexpected diagnoses a token that did not match any of the grammar's
// alternatives at the point it was encountered.
type Unexpected struct {
	Span     Span
	Expected []string // Human descriptions, e.g. "','" or "end of input".
	Found    string
}

func (Unexpected) isReason() {}

// Message implements [Reason].
func (Unexpected) Message() string { return "unexpected token" }

// Labels implements [Reason].
func (u Unexpected) Labels() []Annotation {
	expectedStr := "expected nothing"
	switch len(u.Expected) {
	case 0:
	case 1:
		expectedStr = "expected " + u.Expected[0]
	default:
		expectedStr = "expected one of "
		for i, e := range u.Expected {
			if i > 0 {
				expectedStr += ", "
			}
			expectedStr += e
		}
	}

	return []Annotation{
		{Span: u.Span, Message: expectedStr, Priority: 10},
		{Span: u.Span, Message: "found " + u.Found, Priority: 9},
	}
}

// UnrecognisedCommand diagnoses a keyword that is not one of the script
// language's commands.
type UnrecognisedCommand struct {
	Span Span
}

func (UnrecognisedCommand) isReason() {}

// Message implements [Reason].
func (UnrecognisedCommand) Message() string { return "unrecognised command" }

// Labels implements [Reason].
func (u UnrecognisedCommand) Labels() []Annotation {
	return []Annotation{
		{Span: u.Span, Message: "unrecognised command", Priority: 10},
	}
}

// ArgType diagnoses an argument of the wrong kind (string where a uint was
// required, or vice versa).
type ArgType struct {
	Span     Span
	Expected []string // e.g. []string{"String"} or []string{"Unsigned Integer"}.
	Found    string
}

func (ArgType) isReason() {}

// Message implements [Reason].
func (ArgType) Message() string { return "invalid argument type" }

// Labels implements [Reason].
func (a ArgType) Labels() []Annotation {
	expectedStr := "expected none"
	switch len(a.Expected) {
	case 0:
	case 1:
		expectedStr = fmt.Sprintf("expected %q", a.Expected[0])
	default:
		expectedStr = "expected one of "
		for i, e := range a.Expected {
			if i > 0 {
				expectedStr += ", "
			}
			expectedStr += fmt.Sprintf("%q", e)
		}
	}

	return []Annotation{
		{Span: a.Span, Message: expectedStr, Priority: 10},
		{Span: a.Span, Message: fmt.Sprintf("found %q", a.Found), Priority: 9},
	}
}

// ArgValue diagnoses an argument value that parsed fine but falls outside
// the limits the command requires (e.g. a byte argument greater than 255).
type ArgValue struct {
	Span   Span
	Value  uint32
	Min    uint32
	Max    uint32
}

func (ArgValue) isReason() {}

// Message implements [Reason].
func (ArgValue) Message() string { return "argument value exceeds limits" }

// Labels implements [Reason].
func (a ArgValue) Labels() []Annotation {
	return []Annotation{
		{Span: a.Span, Message: fmt.Sprintf("argument has value %d", a.Value), Priority: 10},
		{Span: a.Span, Message: fmt.Sprintf("argument must be between %d and %d", a.Min, a.Max), Priority: 9},
	}
}

// TestFailure diagnoses a measurement that remained out of range after all
// retries were exhausted.
type TestFailure struct {
	// Expression is the span of the whole *TEST command; ArgSpan is the span
	// of the specific min/max argument that the measurement violated.
	Expression  Span
	ArgSpan     Span
	Measurement uint32
	Min, Max    uint32
	Message     string
}

func (TestFailure) isReason() {}

// Message implements [Reason].
func (TestFailure) Message() string { return "measurement test failed" }

// Labels implements [Reason].
func (t TestFailure) Labels() []Annotation {
	violated := "maximum"
	if t.Measurement < t.Min {
		violated = "minimum"
	}

	return []Annotation{
		{
			Span:     t.Expression,
			Message:  fmt.Sprintf("measured %d, expected between %d and %d", t.Measurement, t.Min, t.Max),
			Priority: 10,
		},
		{
			Span:     t.ArgSpan,
			Message:  fmt.Sprintf("violated %s here", violated),
			Priority: 9,
		},
	}
}

// IOError diagnoses a transaction-level failure: an echo mismatch or an
// unparseable measurement.
type IOError struct {
	Expression Span
	Underlying error
}

func (IOError) isReason() {}

// Message implements [Reason].
func (i IOError) Message() string { return i.Underlying.Error() }

// Labels implements [Reason].
func (i IOError) Labels() []Annotation {
	return []Annotation{
		{Span: i.Expression, Message: i.Underlying.Error(), Priority: 10},
	}
}
