package eval

import (
	"fmt"

	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/report"
	"github.com/sullyy9/gallivant/request"
	"github.com/sullyy9/gallivant/transact"
)

// fmt2 renders b as two ASCII uppercase hex digits, the wire encoding every
// TCU command argument uses.
func fmt2(b byte) string {
	return fmt.Sprintf("%02X", b)
}

// hexEncodeASCII expands raw into its ASCII-hex representation: each input
// byte becomes two output bytes. TCU commands that carry opaque payloads
// (PRINT's arguments, SETTIME's formatted clock) send the hex form rather
// than the raw bytes so the whole frame stays within printable ASCII.
func hexEncodeASCII(raw []byte) []byte {
	out := make([]byte, 0, len(raw)*2)
	for _, b := range raw {
		out = append(out, fmt2(b)...)
	}
	return out
}

func evalPrint(self ast.ParsedExpr, args []ast.ParsedExpr) (request.Request, error) {
	var raw []byte
	for _, arg := range args {
		switch v := arg.Expression().(type) {
		case ast.StringLit:
			raw = append(raw, v.Value...)
		case ast.UintLit:
			raw = append(raw, byte(v.Value))
		default:
			return nil, internalf("invalid PRINT argument kind %s", arg.Kind())
		}
	}

	encoded := hexEncodeASCII(raw)
	if len(encoded) > 255 {
		return nil, fmt.Errorf("PRINT argument too long: %d encoded bytes exceeds the 255-byte frame limit: %w", len(encoded),
			report.New(report.ArgValue{Span: self.Span(), Value: uint32(len(encoded)), Min: 0, Max: 255}))
	}

	bytes := []byte{'P'}
	bytes = append(bytes, fmt2(byte(len(encoded)))...)
	bytes = append(bytes, encoded...)
	bytes = append(bytes, '\r')

	return request.TCUTransact{Tx: transact.NewTCU(self, bytes, nil)}, nil
}

func evalSetTimeFormat(self ast.ParsedExpr, arg ast.ParsedExpr, state *ast.EvalState) (request.Request, error) {
	u, err := byteArg(arg)
	if err != nil {
		return nil, err
	}

	var bytes []byte
	if state.HPMode {
		bytes = append(bytes, "P051B007466"...)
	} else {
		bytes = append(bytes, "P051B7466"...)
	}
	bytes = append(bytes, fmt2(u)...)
	bytes = append(bytes, '\r')

	return request.TCUTransact{Tx: transact.NewTCU(self, bytes, nil)}, nil
}

func evalSetTime(self ast.ParsedExpr, state *ast.EvalState) (request.Request, error) {
	clock := now()
	formatted := clockString(clock)

	var bytes []byte
	if state.HPMode {
		bytes = append(bytes, "P151B007473"...)
	} else {
		bytes = append(bytes, "P151B7473"...)
	}
	bytes = append(bytes, hexEncodeASCII([]byte(formatted))...)
	bytes = append(bytes, '\r')

	return request.TCUTransact{Tx: transact.NewTCU(self, bytes, nil)}, nil
}

func evalSetOption(self ast.ParsedExpr, optionArg, settingArg ast.ParsedExpr, state *ast.EvalState) (request.Request, error) {
	option, err := byteArg(optionArg)
	if err != nil {
		return nil, err
	}
	setting, err := byteArg(settingArg)
	if err != nil {
		return nil, err
	}

	var bytes []byte
	if state.HPMode {
		bytes = append(bytes, "P061B00004F"...)
	} else {
		bytes = append(bytes, "P061B004F"...)
	}
	bytes = append(bytes, fmt2(option)...)
	bytes = append(bytes, fmt2(setting)...)
	bytes = append(bytes, '\r')

	return request.TCUTransact{Tx: transact.NewTCU(self, bytes, nil)}, nil
}

// evalTCUChannel builds the TCUCLOSE/TCUOPEN request: a single command
// letter ('C' or 'O') followed by the channel byte. Unlike the commands
// above, these address the TCU itself and so are never affected by
// HPMODE, which only changes how the TCU passes bytes through to the
// printer.
func evalTCUChannel(self ast.ParsedExpr, letter byte, arg ast.ParsedExpr) (request.Request, error) {
	channel, err := byteArg(arg)
	if err != nil {
		return nil, err
	}

	bytes := []byte{letter}
	bytes = append(bytes, fmt2(channel)...)
	bytes = append(bytes, '\r')

	return request.TCUTransact{Tx: transact.NewTCU(self, bytes, nil)}, nil
}

func evalTCUTest(self ast.ParsedExpr, e ast.TCUTest) (request.Request, error) {
	channel, err := byteArg(e.Channel)
	if err != nil {
		return nil, err
	}
	message, err := stringArg(e.Message)
	if err != nil {
		return nil, err
	}
	if _, err := uintArg(e.Min); err != nil {
		return nil, err
	}
	if _, err := uintArg(e.Max); err != nil {
		return nil, err
	}
	retries, err := uintArg(e.Retries)
	if err != nil {
		return nil, err
	}

	bytes := []byte{'M'}
	bytes = append(bytes, fmt2(channel)...)
	bytes = append(bytes, '\r')

	test := &transact.MeasurementTest{Min: e.Min, Max: e.Max, Retries: retries, Message: message}
	return request.TCUTransact{Tx: transact.NewTCU(self, bytes, test)}, nil
}

func evalPrinterSet(self ast.ParsedExpr, arg ast.ParsedExpr, state *ast.EvalState) (request.Request, error) {
	channel, err := byteArg(arg)
	if err != nil {
		return nil, err
	}

	var bytes []byte
	if state.HPMode {
		bytes = append(bytes, "P051B000053"...)
	} else {
		bytes = append(bytes, "P051B0053"...)
	}
	bytes = append(bytes, fmt2(channel)...)
	bytes = append(bytes, '\r')

	return request.TCUTransact{Tx: transact.NewTCU(self, bytes, nil)}, nil
}

func evalPrinterTest(self ast.ParsedExpr, e ast.PrinterTest, state *ast.EvalState) (request.Request, error) {
	channel, err := byteArg(e.Channel)
	if err != nil {
		return nil, err
	}
	message, err := stringArg(e.Message)
	if err != nil {
		return nil, err
	}
	if _, err := uintArg(e.Min); err != nil {
		return nil, err
	}
	if _, err := uintArg(e.Max); err != nil {
		return nil, err
	}
	retries, err := uintArg(e.Retries)
	if err != nil {
		return nil, err
	}

	var bytes []byte
	if state.HPMode {
		bytes = append(bytes, "W051B00004D"...)
	} else {
		bytes = append(bytes, "W051B004D"...)
	}
	bytes = append(bytes, fmt2(channel)...)
	bytes = append(bytes, '\r')

	test := &transact.MeasurementTest{Min: e.Min, Max: e.Max, Retries: retries, Message: message}
	return request.TCUTransact{Tx: transact.NewTCU(self, bytes, test)}, nil
}

// clockString renders t the way SETTIME/USBSETTIME need it:
// "HH:MM:SS,DD/MM/YY", with a two-digit year taken mod 100 the same way
// the original implementation derives it from a four-digit year.
func clockString(t interface{ Format(string) string }) string {
	return t.Format("15:04:05,02/01/06")
}
