// Package transact implements the resumable request/response state machine
// that owns one exchange with the TCU or the printer: sending the command
// bytes, validating any echo, parsing a measurement, and applying retry
// policy — all without blocking, so a single-threaded event loop can drive
// many transactions' worth of I/O a few bytes at a time.
package transact

import (
	"bytes"
	"errors"
	"os"
	"strconv"

	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/report"
	"github.com/sullyy9/gallivant/serialio"
)

// Device identifies which serial link a [Transaction] runs over. The two
// devices speak different wire conventions: the TCU always echoes the
// command it received before anything else, the printer never does.
type Device int

const (
	DeviceTCU Device = iota
	DevicePrinter
)

// MeasurementTest is the pass/fail/retry policy attached to a transaction
// that expects a measurement back. Min and Max carry both the numeric
// bound and the original argument's span, so a failure report can point at
// exactly the bound it violated.
type MeasurementTest struct {
	Min, Max ast.ParsedExpr // ast.UintLit leaves
	Retries  uint32
	Message  string
}

func (t MeasurementTest) min() uint32 { return t.Min.Expression().(ast.UintLit).Value }
func (t MeasurementTest) max() uint32 { return t.Max.Expression().(ast.UintLit).Value }

// Status reports a [Transaction]'s progress after one call to Process.
type Status int

const (
	// Ongoing means the transaction needs more calls to Process before it
	// resolves; the caller must keep the same *Transaction and call Process
	// on it again once more bytes might be available.
	Ongoing Status = iota
	// Success means the transaction completed and needs no further calls.
	Success
)

// Transaction is one in-flight exchange with a device. The zero value is
// not valid; construct one with [NewTCU] or [NewPrinter].
type Transaction struct {
	expression ast.ParsedExpr
	txBytes    []byte
	txComplete bool
	device     Device
	response   []byte
	test       *MeasurementTest
}

// NewTCU returns a transaction that sends txBytes over the TCU link.
// test may be nil for commands that expect only an echo.
func NewTCU(expression ast.ParsedExpr, txBytes []byte, test *MeasurementTest) *Transaction {
	return &Transaction{expression: expression, txBytes: txBytes, device: DeviceTCU, test: test}
}

// NewPrinter returns a transaction that sends txBytes directly to the
// printer, bypassing the TCU. test may be nil for commands that expect no
// reply at all.
func NewPrinter(expression ast.ParsedExpr, txBytes []byte, test *MeasurementTest) *Transaction {
	return &Transaction{expression: expression, txBytes: txBytes, device: DevicePrinter, test: test}
}

// Bytes returns the command bytes this transaction sends (or resends, on a
// measurement retry).
func (t *Transaction) Bytes() []byte {
	return t.txBytes
}

// Process drives the transaction one step: on the first call it writes the
// command bytes, on every call after that it drains whatever the device
// has sent and checks whether the exchange is complete. The caller is
// expected to call Process again, later, whenever more bytes might have
// arrived, until it returns Success or a non-nil error.
func (t *Transaction) Process(port serialio.Port) (Status, error) {
	if !t.txComplete {
		if _, err := port.Write(t.txBytes); err != nil {
			return Ongoing, report.New(report.IOError{Expression: t.expression.Span(), Underlying: err})
		}
		t.txComplete = true

		if t.device == DevicePrinter && t.test == nil {
			return Success, nil
		}
		return Ongoing, nil
	}

	buf := make([]byte, 64)
	for {
		n, err := port.Read(buf)
		if n > 0 {
			t.response = append(t.response, buf[:n]...)
		}
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				break
			}
			return Ongoing, report.New(report.IOError{Expression: t.expression.Span(), Underlying: err})
		}
		if n == 0 {
			break
		}
	}

	return t.evaluateResponse()
}

func (t *Transaction) evaluateResponse() (Status, error) {
	echoExpected := t.device == DeviceTCU

	var expectedEndings int
	switch {
	case t.test != nil && echoExpected:
		expectedEndings = 2
	case t.test != nil || echoExpected:
		expectedEndings = 1
	default:
		expectedEndings = 0
	}

	if expectedEndings == 0 {
		return Success, nil
	}

	parts := splitInclusive(t.response, '\r')
	if bytes.Count(t.response, []byte{'\r'}) < expectedEndings {
		return Ongoing, nil
	}

	var echo, measurement []byte
	if echoExpected {
		echo, measurement = parts[0], parts[1]
	} else {
		measurement = parts[0]
	}

	if echoExpected && !bytes.Equal(echo, t.txBytes) {
		return Ongoing, report.New(report.IOError{
			Expression: t.expression.Span(),
			Underlying: errEchoMismatch(t.txBytes, echo),
		})
	}

	if t.test != nil {
		status, err := t.evaluateMeasurement(measurement)
		if status != Success || err != nil {
			return status, err
		}
	}

	return Success, nil
}

func (t *Transaction) evaluateMeasurement(measurement []byte) (Status, error) {
	text := measurement
	if i := bytes.IndexByte(text, '\r'); i >= 0 {
		text = text[:i]
	}

	value, err := strconv.ParseUint(string(text), 16, 32)
	if err != nil {
		return Ongoing, report.New(report.IOError{
			Expression: t.expression.Span(),
			Underlying: errMeasurementParse(string(text)),
		})
	}

	measured := uint32(value)
	test := *t.test
	if measured >= test.min() && measured <= test.max() {
		return Success, nil
	}

	if test.Retries > 0 {
		test.Retries--
		t.test = &test
		t.txComplete = false
		t.response = nil
		return Ongoing, nil
	}

	argSpan := test.Max.Span()
	if measured < test.min() {
		argSpan = test.Min.Span()
	}

	return Ongoing, report.New(report.TestFailure{
		Expression:  t.expression.Span(),
		ArgSpan:     argSpan,
		Measurement: measured,
		Min:         test.min(),
		Max:         test.max(),
		Message:     test.Message,
	})
}

// splitInclusive splits b on every occurrence of sep, keeping sep at the
// end of each part (mirroring Rust's slice::split_inclusive), and dropping
// a final empty part left over from a trailing separator.
func splitInclusive(b []byte, sep byte) [][]byte {
	var parts [][]byte
	start := 0
	for i, c := range b {
		if c == sep {
			parts = append(parts, b[start:i+1])
			start = i + 1
		}
	}
	if start < len(b) {
		parts = append(parts, b[start:])
	}
	return parts
}
