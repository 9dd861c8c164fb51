package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/parser"
	"github.com/sullyy9/gallivant/report"
)

func mustParse(t *testing.T, src string) []ast.ParsedExpr {
	t.Helper()
	exprs, diags := parser.Parse("script.gv", src)
	if len(diags) > 0 {
		var out []string
		for _, d := range diags {
			out = append(out, d.Error())
		}
		require.Fail(t, "parser returned diagnostics", out)
	}
	return exprs
}

func TestParseCommands(t *testing.T) {
	script := `
HPMODE
COMMENT "Test"
WAIT 1234
OPENDIALOG "Hello"
WAITDIALOG "PLEASE WAIT"
FLUSH
PROTOCOL
PRINT "print me"
SETTIMEFORMAT $A6
SETTIME
SETOPTION 4, 6
TCUCLOSE 4
TCUOPEN $F
TCUTEST 5, 12000, 56000, 0, "error"
PRINTERSET 1
PRINTERTEST 4,133, 987,5,"error message"
USBOPEN
USBCLOSE
USBPRINT "Look at me I can print"
USBSETTIMEFORMAT 5
USBSETTIME
USBSETOPTION 5, 9
USBPRINTERSET 6
USBPRINTERTEST 4, 133, 987, 5, "error message"
`

	tree := ast.NewTree()
	expected := []ast.ParsedExpr{
		tree.New(ast.HPMode{}, report.Span{}),
		tree.New(ast.Comment{Arg: ast.FromStringDefault("Test")}, report.Span{}),
		tree.New(ast.Wait{Arg: ast.FromUintDefault(1234)}, report.Span{}),
		tree.New(ast.OpenDialog{Arg: ast.FromStringDefault("Hello")}, report.Span{}),
		tree.New(ast.WaitDialog{Arg: ast.FromStringDefault("PLEASE WAIT")}, report.Span{}),
		tree.New(ast.Flush{}, report.Span{}),
		tree.New(ast.Protocol{}, report.Span{}),
		tree.New(ast.Print{Args: []ast.ParsedExpr{ast.FromStringDefault("print me")}}, report.Span{}),
		tree.New(ast.SetTimeFormat{Arg: ast.FromUintDefault(0xA6)}, report.Span{}),
		tree.New(ast.SetTime{}, report.Span{}),
		tree.New(ast.SetOption{Option: ast.FromUintDefault(4), Setting: ast.FromUintDefault(6)}, report.Span{}),
		tree.New(ast.TCUClose{Arg: ast.FromUintDefault(4)}, report.Span{}),
		tree.New(ast.TCUOpen{Arg: ast.FromUintDefault(0xF)}, report.Span{}),
		tree.New(ast.TCUTest{
			Channel: ast.FromUintDefault(5), Min: ast.FromUintDefault(12000), Max: ast.FromUintDefault(56000),
			Retries: ast.FromUintDefault(0), Message: ast.FromStringDefault("error"),
		}, report.Span{}),
		tree.New(ast.PrinterSet{Arg: ast.FromUintDefault(1)}, report.Span{}),
		tree.New(ast.PrinterTest{
			Channel: ast.FromUintDefault(4), Min: ast.FromUintDefault(133), Max: ast.FromUintDefault(987),
			Retries: ast.FromUintDefault(5), Message: ast.FromStringDefault("error message"),
		}, report.Span{}),
		tree.New(ast.USBOpen{}, report.Span{}),
		tree.New(ast.USBClose{}, report.Span{}),
		tree.New(ast.USBPrint{Args: []ast.ParsedExpr{ast.FromStringDefault("Look at me I can print")}}, report.Span{}),
		tree.New(ast.USBSetTimeFormat{Arg: ast.FromUintDefault(5)}, report.Span{}),
		tree.New(ast.USBSetTime{}, report.Span{}),
		tree.New(ast.USBSetOption{Option: ast.FromUintDefault(5), Setting: ast.FromUintDefault(9)}, report.Span{}),
		tree.New(ast.USBPrinterSet{Arg: ast.FromUintDefault(6)}, report.Span{}),
		tree.New(ast.USBPrinterTest{
			Channel: ast.FromUintDefault(4), Min: ast.FromUintDefault(133), Max: ast.FromUintDefault(987),
			Retries: ast.FromUintDefault(5), Message: ast.FromStringDefault("error message"),
		}, report.Span{}),
	}

	actual := mustParse(t, script)
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Truef(t, expected[i].Equal(actual[i]), "at expression %d: got %#v", i, actual[i].Expression())
	}

	// cmp.Diff picks up ast.ParsedExpr's Equal method automatically, so this
	// is equivalent to the per-element loop above but reports a readable
	// diff on the first mismatch instead of just an index.
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("parsed script mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSingleCommand(t *testing.T) {
	exprs := mustParse(t, `COMMENT "This is a comment 1234"`)
	require.Len(t, exprs, 1)
	assert.Equal(t, ast.KindComment, exprs[0].Kind())
	assert.Equal(t, "This is a comment 1234", exprs[0].Expression().(ast.Comment).Arg.Expression().(ast.StringLit).Value)
}

func TestParseHexArgLeadingZeroes(t *testing.T) {
	exprs := mustParse(t, `TCUOPEN $00C`)
	require.Len(t, exprs, 1)
	assert.Equal(t, uint32(0x0C), exprs[0].Expression().(ast.TCUOpen).Arg.Expression().(ast.UintLit).Value)
}

func TestParseHexArgZero(t *testing.T) {
	exprs := mustParse(t, `TCUOPEN $00`)
	require.Len(t, exprs, 1)
	assert.Equal(t, uint32(0), exprs[0].Expression().(ast.TCUOpen).Arg.Expression().(ast.UintLit).Value)
}

func TestParseDecArgZero(t *testing.T) {
	exprs := mustParse(t, `TCUOPEN 0`)
	require.Len(t, exprs, 1)
	assert.Equal(t, uint32(0), exprs[0].Expression().(ast.TCUOpen).Arg.Expression().(ast.UintLit).Value)
}

func TestParseInvalidStringTypeArg(t *testing.T) {
	_, diags := parser.Parse("script.gv", `COMMENT 1234`)
	require.Len(t, diags, 1)
	_, ok := diags[0].Reason.(report.ArgType)
	assert.True(t, ok)
}

func TestParseInvalidUintTypeArg(t *testing.T) {
	_, diags := parser.Parse("script.gv", `WAIT "$F54A"`)
	require.Len(t, diags, 1)
	_, ok := diags[0].Reason.(report.ArgType)
	assert.True(t, ok)
}

func TestParseInvalidUintValueArg(t *testing.T) {
	_, diags := parser.Parse("script.gv", `TCUCLOSE 256`)
	require.Len(t, diags, 1)
	_, ok := diags[0].Reason.(report.ArgValue)
	assert.True(t, ok)
}

func TestParseCommentOwnLine(t *testing.T) {
	exprs := mustParse(t, `;Test comment`)
	require.Len(t, exprs, 1)
	assert.Equal(t, "Test comment", exprs[0].Expression().(ast.ScriptComment).Text)
}

func TestParseCommentAroundCommand(t *testing.T) {
	script := "\n;Comment\nPRINT \"test\" ; Comment\n;Comment\n"
	exprs := mustParse(t, script)
	require.Len(t, exprs, 4)

	assert.Equal(t, "Comment", exprs[0].Expression().(ast.ScriptComment).Text)
	assert.Equal(t, "test", exprs[1].Expression().(ast.Print).Args[0].Expression().(ast.StringLit).Value)
	assert.Equal(t, " Comment", exprs[2].Expression().(ast.ScriptComment).Text)
	assert.Equal(t, "Comment", exprs[3].Expression().(ast.ScriptComment).Text)
}

func TestParseCommentRepeated(t *testing.T) {
	script := "\n;;;;;;Comment\n; Comment ;;;; Comment ;;;\n;;;;Comment;;;\n"
	exprs := mustParse(t, script)
	require.Len(t, exprs, 3)

	assert.Equal(t, ";;;;;Comment", exprs[0].Expression().(ast.ScriptComment).Text)
	assert.Equal(t, " Comment ;;;; Comment ;;;", exprs[1].Expression().(ast.ScriptComment).Text)
	assert.Equal(t, ";;;Comment;;;", exprs[2].Expression().(ast.ScriptComment).Text)
}

func TestParseCommentedOutCommand(t *testing.T) {
	exprs := mustParse(t, `; PRINT "test"`)
	require.Len(t, exprs, 1)
	assert.Equal(t, ` PRINT "test"`, exprs[0].Expression().(ast.ScriptComment).Text)
}

func TestParseUnrecognisedCommand(t *testing.T) {
	_, diags := parser.Parse("script.gv", `FROBNICATE 1`)
	require.Len(t, diags, 1)
	_, ok := diags[0].Reason.(report.UnrecognisedCommand)
	assert.True(t, ok)
}
