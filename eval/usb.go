package eval

import (
	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/request"
	"github.com/sullyy9/gallivant/transact"
)

// The USB* commands talk to the printer directly rather than passing
// through the TCU, so their payloads are raw bytes rather than the
// TCU commands' ASCII-hex frames.

func evalUSBPrint(self ast.ParsedExpr, args []ast.ParsedExpr) (request.Request, error) {
	var raw []byte
	for _, arg := range args {
		switch v := arg.Expression().(type) {
		case ast.StringLit:
			raw = append(raw, v.Value...)
		case ast.UintLit:
			raw = append(raw, byte(v.Value))
		default:
			return nil, internalf("invalid USBPRINT argument kind %s", arg.Kind())
		}
	}
	return request.PrinterTransact{Tx: transact.NewPrinter(self, raw, nil)}, nil
}

func evalUSBSetTimeFormat(self ast.ParsedExpr, arg ast.ParsedExpr, state *ast.EvalState) (request.Request, error) {
	u, err := byteArg(arg)
	if err != nil {
		return nil, err
	}

	var bytes []byte
	if state.HPMode {
		bytes = []byte{0x1B, 0x00, 't', 'f', u}
	} else {
		bytes = []byte{0x1B, 't', 'f', u}
	}
	return request.PrinterTransact{Tx: transact.NewPrinter(self, bytes, nil)}, nil
}

func evalUSBSetTime(self ast.ParsedExpr, state *ast.EvalState) (request.Request, error) {
	var bytes []byte
	if state.HPMode {
		bytes = []byte{0x1B, 0x00, 't', 's'}
	} else {
		bytes = []byte{0x1B, 't', 's'}
	}
	bytes = append(bytes, clockString(now())...)
	return request.PrinterTransact{Tx: transact.NewPrinter(self, bytes, nil)}, nil
}

func evalUSBSetOption(self ast.ParsedExpr, optionArg, settingArg ast.ParsedExpr, state *ast.EvalState) (request.Request, error) {
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
		bytes = []byte{0x1B, 0x00, 0x00, 'O', option, setting}
	} else {
		bytes = []byte{0x1B, 0x00, 'O', option, setting}
	}
	return request.PrinterTransact{Tx: transact.NewPrinter(self, bytes, nil)}, nil
}

func evalUSBPrinterSet(self ast.ParsedExpr, arg ast.ParsedExpr, state *ast.EvalState) (request.Request, error) {
	channel, err := byteArg(arg)
	if err != nil {
		return nil, err
	}

	var bytes []byte
	if state.HPMode {
		bytes = []byte{0x1B, 0x00, 0x00, 'S', channel}
	} else {
		bytes = []byte{0x1B, 0x00, 'S', channel}
	}
	return request.PrinterTransact{Tx: transact.NewPrinter(self, bytes, nil)}, nil
}

func evalUSBPrinterTest(self ast.ParsedExpr, e ast.USBPrinterTest, state *ast.EvalState) (request.Request, error) {
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
		bytes = []byte{0x1B, 0x00, 0x00, 'M', channel}
	} else {
		bytes = []byte{0x1B, 0x00, 'M', channel}
	}

	test := &transact.MeasurementTest{Min: e.Min, Max: e.Max, Retries: retries, Message: message}
	return request.PrinterTransact{Tx: transact.NewPrinter(self, bytes, test)}, nil
}
