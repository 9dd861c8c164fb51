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

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sullyy9/gallivant/report"
)

func TestRenderArgValue(t *testing.T) {
	file := report.NewFile("script.gv", "TCUCLOSE 256")
	span := report.Span{File: file, Start: 9, End: 12}

	diag := report.New(report.ArgValue{Span: span, Value: 256, Min: 0, Max: 255}).
		WithHelp("use a value between 0 and 255")

	var out strings.Builder
	n, err := report.Renderer{}.Render(&out, []*report.Diagnostic{diag})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	rendered := out.String()
	require.Contains(t, rendered, "argument value exceeds limits")
	require.Contains(t, rendered, "script.gv:1:10")
	require.Contains(t, rendered, "TCUCLOSE 256")
	require.Contains(t, rendered, "help: use a value between 0 and 255")
}

func TestFileLineAndSearch(t *testing.T) {
	file := report.NewFile("x", "AAA\nBBB\nCCC")
	require.Equal(t, "BBB", file.Line(2))
	loc := file.Search(5)
	require.Equal(t, report.Location{Line: 2, Column: 2}, loc)
}
