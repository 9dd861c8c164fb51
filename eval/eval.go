// Package eval walks a parsed script, one expression at a time, and turns
// each into exactly one [request.Request] — the one externally visible
// action that expression means. It performs no I/O itself; all device
// communication is deferred to the request the host later drives.
package eval

import (
	"errors"
	"fmt"
	"time"

	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/request"
	"github.com/sullyy9/gallivant/transact"
)

// ErrInternal is wrapped into the error returned when Evaluate is handed a
// tree shape the parser never produces (a bare String/UInt at top level, or
// an argument of the wrong kind reaching evaluation despite the parser's
// own validation). It should never happen outside a bug in this package or
// the parser; it exists so a malformed tree surfaces as an error return
// rather than a panic crossing a package boundary.
var ErrInternal = errors.New("eval: internal invariant violation")

func internalf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInternal}, args...)...)
}

// now is swappable in tests so SETTIME/USBSETTIME output is deterministic.
var now = time.Now

// Evaluate turns one parsed expression into the request it means, updating
// state for commands (currently just HPMODE) that affect how later
// commands are encoded.
func Evaluate(expr ast.ParsedExpr, state *ast.EvalState) (request.Request, error) {
	switch e := expr.Expression().(type) {
	case ast.StringLit, ast.UintLit:
		return nil, internalf("orphaned literal %s reached evaluation", expr.Kind())

	case ast.ScriptComment:
		return request.None{}, nil

	case ast.HPMode:
		state.HPMode = !state.HPMode
		return request.None{}, nil

	case ast.Comment:
		s, err := stringArg(e.Arg)
		if err != nil {
			return nil, err
		}
		return request.GUIPrint{Message: s}, nil

	case ast.Wait:
		ms, err := uintArg(e.Arg)
		if err != nil {
			return nil, err
		}
		return request.Wait{Duration: time.Duration(ms) * time.Millisecond}, nil

	case ast.OpenDialog:
		s, err := stringArg(e.Arg)
		if err != nil {
			return nil, err
		}
		return request.GUIDialogue{Kind: request.Notification, Message: s}, nil

	case ast.WaitDialog:
		s, err := stringArg(e.Arg)
		if err != nil {
			return nil, err
		}
		return request.GUIDialogue{Kind: request.ManualInput, Message: s}, nil

	case ast.Flush:
		return request.TCUFlush{}, nil

	case ast.Protocol:
		return request.None{}, nil

	case ast.Print:
		return evalPrint(expr, e.Args)

	case ast.SetTimeFormat:
		return evalSetTimeFormat(expr, e.Arg, state)

	case ast.SetTime:
		return evalSetTime(expr, state)

	case ast.SetOption:
		return evalSetOption(expr, e.Option, e.Setting, state)

	case ast.TCUClose:
		return evalTCUChannel(expr, 'C', e.Arg)

	case ast.TCUOpen:
		return evalTCUChannel(expr, 'O', e.Arg)

	case ast.TCUTest:
		return evalTCUTest(expr, e)

	case ast.PrinterSet:
		return evalPrinterSet(expr, e.Arg, state)

	case ast.PrinterTest:
		return evalPrinterTest(expr, e, state)

	case ast.IssueTest, ast.TestResult:
		return request.None{}, nil

	case ast.USBOpen:
		return request.PrinterOpen{}, nil

	case ast.USBClose:
		return request.PrinterClose{}, nil

	case ast.USBPrint:
		return evalUSBPrint(expr, e.Args)

	case ast.USBSetTimeFormat:
		return evalUSBSetTimeFormat(expr, e.Arg, state)

	case ast.USBSetTime:
		return evalUSBSetTime(expr, state)

	case ast.USBSetOption:
		return evalUSBSetOption(expr, e.Option, e.Setting, state)

	case ast.USBPrinterSet:
		return evalUSBPrinterSet(expr, e.Arg, state)

	case ast.USBPrinterTest:
		return evalUSBPrinterTest(expr, e, state)

	default:
		return nil, internalf("unhandled expression kind %s", expr.Kind())
	}
}

////////////////////////////////////////////////////////////////
// argument extraction
////////////////////////////////////////////////////////////////

func stringArg(e ast.ParsedExpr) (string, error) {
	s, ok := e.Expression().(ast.StringLit)
	if !ok {
		return "", internalf("expected a string argument, found %s", e.Kind())
	}
	return s.Value, nil
}

func uintArg(e ast.ParsedExpr) (uint32, error) {
	u, ok := e.Expression().(ast.UintLit)
	if !ok {
		return 0, internalf("expected an unsigned integer argument, found %s", e.Kind())
	}
	return u.Value, nil
}

// byteArg is uintArg with the additional invariant (already enforced by
// the parser) that the value fits in a byte.
func byteArg(e ast.ParsedExpr) (byte, error) {
	u, err := uintArg(e)
	if err != nil {
		return 0, err
	}
	return byte(u), nil
}
