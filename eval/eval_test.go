package eval

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/parser"
	"github.com/sullyy9/gallivant/report"
	"github.com/sullyy9/gallivant/request"
)

func evalOne(t *testing.T, src string, state *ast.EvalState) request.Request {
	t.Helper()
	exprs, diags := parser.Parse("script.gv", src)
	require.Empty(t, diags)
	require.Len(t, exprs, 1)

	req, err := Evaluate(exprs[0], state)
	require.NoError(t, err)
	return req
}

func TestEvaluatePrintEncodesHexFrame(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `PRINT "t", 123, $F3`, state)

	tx, ok := req.(request.TCUTransact)
	require.True(t, ok)
	assert.Equal(t, []byte("P06747BF3\r"), tx.Tx.Bytes())
}

func TestEvaluateSetTimeFormatDefault(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `SETTIMEFORMAT 5`, state)

	tx, ok := req.(request.TCUTransact)
	require.True(t, ok)
	assert.Equal(t, []byte("P051B746605\r"), tx.Tx.Bytes())
}

func TestEvaluateSetTimeFormatHPMode(t *testing.T) {
	state := &ast.EvalState{HPMode: true}
	req := evalOne(t, `SETTIMEFORMAT $A6`, state)

	tx, ok := req.(request.TCUTransact)
	require.True(t, ok)
	assert.Equal(t, []byte("P051B007466A6\r"), tx.Tx.Bytes())
}

func TestEvaluateHPModeToggles(t *testing.T) {
	state := &ast.EvalState{}
	exprs, diags := parser.Parse("script.gv", "HPMODE\nHPMODE\nHPMODE\n")
	require.Empty(t, diags)
	require.Len(t, exprs, 3)

	for i, want := range []bool{true, false, true} {
		req, err := Evaluate(exprs[i], state)
		require.NoError(t, err)
		assert.Equal(t, request.None{}, req)
		assert.Equal(t, want, state.HPMode)
	}
}

func TestEvaluateTCUClose(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `TCUCLOSE 4`, state)

	tx, ok := req.(request.TCUTransact)
	require.True(t, ok)
	assert.Equal(t, []byte("C04\r"), tx.Tx.Bytes())
}

func TestEvaluateTCUOpenHex(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `TCUOPEN $F`, state)

	tx, ok := req.(request.TCUTransact)
	require.True(t, ok)
	assert.Equal(t, []byte("O0F\r"), tx.Tx.Bytes())
}

func TestEvaluateTCUTestBuildsMeasurementTest(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `TCUTEST 5, 12000, 56000, 2, "error"`, state)

	tx, ok := req.(request.TCUTransact)
	require.True(t, ok)
	assert.Equal(t, []byte("M05\r"), tx.Tx.Bytes())
}

func TestEvaluatePrinterTest(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `PRINTERTEST 4, 133, 987, 5, "error message"`, state)

	tx, ok := req.(request.TCUTransact)
	require.True(t, ok)
	assert.Equal(t, []byte("W051B004D04\r"), tx.Tx.Bytes())
}

func TestEvaluatePrinterTestHPMode(t *testing.T) {
	state := &ast.EvalState{HPMode: true}
	req := evalOne(t, `PRINTERTEST 4, 133, 987, 5, "error message"`, state)

	tx, ok := req.(request.TCUTransact)
	require.True(t, ok)
	assert.Equal(t, []byte("W051B00004D04\r"), tx.Tx.Bytes())
}

func TestEvaluateUSBPrintIsRawNotHexEncoded(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `USBPRINT "AB", 1`, state)

	tx, ok := req.(request.PrinterTransact)
	require.True(t, ok)
	assert.Equal(t, []byte{'A', 'B', 1}, tx.Tx.Bytes())
}

func TestEvaluateUSBSetTimeFormatDefault(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `USBSETTIMEFORMAT 5`, state)

	tx, ok := req.(request.PrinterTransact)
	require.True(t, ok)
	assert.Equal(t, []byte{0x1B, 't', 'f', 5}, tx.Tx.Bytes())
}

func TestEvaluateUSBSetOptionHPMode(t *testing.T) {
	state := &ast.EvalState{HPMode: true}
	req := evalOne(t, `USBSETOPTION 5, 9`, state)

	tx, ok := req.(request.PrinterTransact)
	require.True(t, ok)
	assert.Equal(t, []byte{0x1B, 0x00, 0x00, 'O', 5, 9}, tx.Tx.Bytes())
}

func TestEvaluateUSBPrinterSetDefault(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `USBPRINTERSET 6`, state)

	tx, ok := req.(request.PrinterTransact)
	require.True(t, ok)
	assert.Equal(t, []byte{0x1B, 0x00, 'S', 6}, tx.Tx.Bytes())
}

func TestEvaluateUSBPrinterTestBuildsPrinterTransaction(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `USBPRINTERTEST 4, 133, 987, 5, "error message"`, state)

	tx, ok := req.(request.PrinterTransact)
	require.True(t, ok)
	assert.Equal(t, []byte{0x1B, 0x00, 'M', 4}, tx.Tx.Bytes())
}

func TestEvaluateSetTimeUsesInjectedClock(t *testing.T) {
	old := now
	defer func() { now = old }()
	now = func() time.Time { return time.Date(2024, time.March, 7, 13, 5, 9, 0, time.UTC) }

	state := &ast.EvalState{}
	req := evalOne(t, `SETTIME`, state)

	tx, ok := req.(request.TCUTransact)
	require.True(t, ok)

	encoded := hexEncodeASCII([]byte("13:05:09,07/03/24"))
	want := append([]byte("P151B7473"), encoded...)
	want = append(want, '\r')
	assert.Equal(t, want, tx.Tx.Bytes())
}

func TestEvaluateUSBSetTimeUsesInjectedClock(t *testing.T) {
	old := now
	defer func() { now = old }()
	now = func() time.Time { return time.Date(2024, time.March, 7, 13, 5, 9, 0, time.UTC) }

	state := &ast.EvalState{}
	req := evalOne(t, `USBSETTIME`, state)

	tx, ok := req.(request.PrinterTransact)
	require.True(t, ok)
	want := append([]byte{0x1B, 't', 's'}, "13:05:09,07/03/24"...)
	assert.Equal(t, want, tx.Tx.Bytes())
}

func TestEvaluateCommentProducesGUIPrint(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `COMMENT "Hello"`, state)
	assert.Equal(t, request.GUIPrint{Message: "Hello"}, req)
}

func TestEvaluateWaitConvertsMillisecondsToDuration(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `WAIT 1234`, state)
	assert.Equal(t, request.Wait{Duration: 1234 * time.Millisecond}, req)
}

func TestEvaluateOpenDialogIsNonBlocking(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `OPENDIALOG "Hello"`, state)
	assert.Equal(t, request.GUIDialogue{Kind: request.Notification, Message: "Hello"}, req)
}

func TestEvaluateWaitDialogBlocks(t *testing.T) {
	state := &ast.EvalState{}
	req := evalOne(t, `WAITDIALOG "Hello"`, state)
	assert.Equal(t, request.GUIDialogue{Kind: request.ManualInput, Message: "Hello"}, req)
}

func TestEvaluateNoOpCommandsProduceNone(t *testing.T) {
	state := &ast.EvalState{}
	for _, src := range []string{`PROTOCOL`, `ISSUETEST 1`, `TESTRESULT 0, 100, "ok"`} {
		req := evalOne(t, src, state)
		assert.Equal(t, request.None{}, req, "source: %s", src)
	}
}

func TestEvaluateFlushAndUSBOpenClose(t *testing.T) {
	state := &ast.EvalState{}
	assert.Equal(t, request.TCUFlush{}, evalOne(t, `FLUSH`, state))
	assert.Equal(t, request.PrinterOpen{}, evalOne(t, `USBOPEN`, state))
	assert.Equal(t, request.PrinterClose{}, evalOne(t, `USBCLOSE`, state))
}

func TestEvaluatePrintTooLongIsAnError(t *testing.T) {
	state := &ast.EvalState{}
	tree := ast.NewTree()
	var args []ast.ParsedExpr
	for i := 0; i < 200; i++ {
		args = append(args, ast.FromStringDefault("x"))
	}
	expr := tree.New(ast.Print{Args: args}, report.Span{})

	_, err := Evaluate(expr, state)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "255-byte frame limit"))
}
