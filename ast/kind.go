// Package ast defines the script language's abstract syntax tree: the
// closed set of expression kinds, span-tagged nodes, and the interpreter's
// process-wide evaluation state.
package ast

// Kind identifies the concrete variant of an [Expr] without requiring a type
// assertion. It exists for the same reason the original implementation kept
// a separate ExprKind alongside Expr: diagnostics need to name an argument's
// expected/found kind without constructing (or copying) a full expression.
type Kind int

const (
	KindString Kind = iota
	KindUInt

	KindScriptComment

	KindHPMode
	KindComment
	KindWait
	KindOpenDialog
	KindWaitDialog
	KindFlush
	KindProtocol
	KindPrint
	KindSetTimeFormat
	KindSetTime
	KindSetOption
	KindTCUClose
	KindTCUOpen
	KindTCUTest
	KindPrinterSet
	KindPrinterTest
	KindIssueTest
	KindTestResult
	KindUSBOpen
	KindUSBClose
	KindUSBPrint
	KindUSBSetTimeFormat
	KindUSBSetTime
	KindUSBSetOption
	KindUSBPrinterSet
	KindUSBPrinterTest
)

var kindNames = map[Kind]string{
	KindString: "String",
	KindUInt:   "Unsigned Integer",

	KindScriptComment: "Script Comment",

	KindHPMode:           "command 'HPMODE'",
	KindComment:          "command 'COMMENT'",
	KindWait:             "command 'WAIT'",
	KindOpenDialog:       "command 'OPENDIALOG'",
	KindWaitDialog:       "command 'WAITDIALOG'",
	KindFlush:            "command 'FLUSH'",
	KindProtocol:         "command 'PROTOCOL'",
	KindPrint:            "command 'PRINT'",
	KindSetTimeFormat:    "command 'SETTIMEFORMAT'",
	KindSetTime:          "command 'SETTIME'",
	KindSetOption:        "command 'SETOPTION'",
	KindTCUClose:         "command 'TCUCLOSE'",
	KindTCUOpen:          "command 'TCUOPEN'",
	KindTCUTest:          "command 'TCUTEST'",
	KindPrinterSet:       "command 'PRINTERSET'",
	KindPrinterTest:      "command 'PRINTERTEST'",
	KindIssueTest:        "command 'ISSUETEST'",
	KindTestResult:       "command 'TESTRESULT'",
	KindUSBOpen:          "command 'USBOPEN'",
	KindUSBClose:         "command 'USBCLOSE'",
	KindUSBPrint:         "command 'USBPRINT'",
	KindUSBSetTimeFormat: "command 'USBSETTIMEFORMAT'",
	KindUSBSetTime:       "command 'USBSETTIME'",
	KindUSBSetOption:     "command 'USBSETOPTION'",
	KindUSBPrinterSet:    "command 'USBPRINTERSET'",
	KindUSBPrinterTest:   "command 'USBPRINTERTEST'",
}

// Name returns a human-readable description of k, used in diagnostics to
// describe an argument's expected or found kind.
func (k Kind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) String() string { return k.Name() }
