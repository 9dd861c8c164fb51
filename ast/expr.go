package ast

// StringLit is a quoted string literal.
type StringLit struct {
	Value string
}

func (StringLit) isExpr()    {}
func (StringLit) Kind() Kind { return KindString }

// UintLit is an unsigned integer literal. The grammar never produces
// negative numbers, so the parser rejects a leading '-' outright.
type UintLit struct {
	Value uint32
}

func (UintLit) isExpr()    {}
func (UintLit) Kind() Kind { return KindUInt }

// ScriptComment is a ';'-introduced line comment: parsed into the tree so
// round-tripping diagnostics and tooling can see it, but it produces no
// request when evaluated.
type ScriptComment struct {
	Text string
}

func (ScriptComment) isExpr()    {}
func (ScriptComment) Kind() Kind { return KindScriptComment }

// HPMode is the HPMODE command. It has no arguments; it toggles the
// interpreter's HP-mode flag, which changes how later ESC-carrying TCU and
// USB commands are encoded.
type HPMode struct{}

func (HPMode) isExpr()    {}
func (HPMode) Kind() Kind { return KindHPMode }

// Flush is the FLUSH command: discard whatever the TCU has buffered.
type Flush struct{}

func (Flush) isExpr()    {}
func (Flush) Kind() Kind { return KindFlush }

// Protocol is the PROTOCOL command. Takes no arguments and evaluates to no
// request.
type Protocol struct{}

func (Protocol) isExpr()    {}
func (Protocol) Kind() Kind { return KindProtocol }

// SetTime is the SETTIME command. The wall-clock value isn't known until
// the command actually runs, so unlike SETTIMEFORMAT it carries no operand.
type SetTime struct{}

func (SetTime) isExpr()    {}
func (SetTime) Kind() Kind { return KindSetTime }

// USBOpen is the USBOPEN command: open the printer's direct USB channel.
type USBOpen struct{}

func (USBOpen) isExpr()    {}
func (USBOpen) Kind() Kind { return KindUSBOpen }

// USBClose is the USBCLOSE command: close the printer's direct USB channel.
type USBClose struct{}

func (USBClose) isExpr()    {}
func (USBClose) Kind() Kind { return KindUSBClose }

// USBSetTime is the USBSETTIME command, the USB-channel counterpart of
// [SetTime].
type USBSetTime struct{}

func (USBSetTime) isExpr()    {}
func (USBSetTime) Kind() Kind { return KindUSBSetTime }

////////////////////////////////////////////////////////////////
// single-argument commands
////////////////////////////////////////////////////////////////

// Comment is the COMMENT command: log a message without sending anything
// over the wire.
type Comment struct {
	Arg ParsedExpr // String
}

func (Comment) isExpr()    {}
func (Comment) Kind() Kind { return KindComment }

// Wait is the WAIT command: pause for the given number of milliseconds.
type Wait struct {
	Arg ParsedExpr // UInt
}

func (Wait) isExpr()    {}
func (Wait) Kind() Kind { return KindWait }

// OpenDialog is the OPENDIALOG command: ask the host to show a dialog with
// the given message and continue without waiting for a response.
type OpenDialog struct {
	Arg ParsedExpr // String
}

func (OpenDialog) isExpr()    {}
func (OpenDialog) Kind() Kind { return KindOpenDialog }

// WaitDialog is the WAITDIALOG command: show a dialog and block the script
// until the host reports it closed.
type WaitDialog struct {
	Arg ParsedExpr // String
}

func (WaitDialog) isExpr()    {}
func (WaitDialog) Kind() Kind { return KindWaitDialog }

// SetTimeFormat is the SETTIMEFORMAT command: send a time-format byte to
// the printer. It does not change the clock string SETTIME itself builds.
type SetTimeFormat struct {
	Arg ParsedExpr // UInt
}

func (SetTimeFormat) isExpr()    {}
func (SetTimeFormat) Kind() Kind { return KindSetTimeFormat }

// TCUClose is the TCUCLOSE command: close a TCU channel by number.
type TCUClose struct {
	Arg ParsedExpr // UInt
}

func (TCUClose) isExpr()    {}
func (TCUClose) Kind() Kind { return KindTCUClose }

// TCUOpen is the TCUOPEN command: open a TCU channel by number.
type TCUOpen struct {
	Arg ParsedExpr // UInt
}

func (TCUOpen) isExpr()    {}
func (TCUOpen) Kind() Kind { return KindTCUOpen }

// PrinterSet is the PRINTERSET command: set a printer channel's output
// state by number.
type PrinterSet struct {
	Arg ParsedExpr // UInt
}

func (PrinterSet) isExpr()    {}
func (PrinterSet) Kind() Kind { return KindPrinterSet }

// IssueTest is the ISSUETEST command. Neither implementation revision ever
// issued one in practice, but the grammar still parses it, so the tree
// keeps it as a faithful no-op rather than rejecting the syntax outright.
type IssueTest struct {
	Arg ParsedExpr // UInt
}

func (IssueTest) isExpr()    {}
func (IssueTest) Kind() Kind { return KindIssueTest }

// USBSetTimeFormat is USBSETTIMEFORMAT, the USB-channel counterpart of
// [SetTimeFormat].
type USBSetTimeFormat struct {
	Arg ParsedExpr // UInt
}

func (USBSetTimeFormat) isExpr()    {}
func (USBSetTimeFormat) Kind() Kind { return KindUSBSetTimeFormat }

// USBPrinterSet is USBPRINTERSET, the USB-channel counterpart of
// [PrinterSet].
type USBPrinterSet struct {
	Arg ParsedExpr // UInt
}

func (USBPrinterSet) isExpr()    {}
func (USBPrinterSet) Kind() Kind { return KindUSBPrinterSet }

////////////////////////////////////////////////////////////////
// two-argument commands
////////////////////////////////////////////////////////////////

// SetOption is the SETOPTION command: set a numbered TCU option to a value.
type SetOption struct {
	Option  ParsedExpr // UInt
	Setting ParsedExpr // UInt
}

func (SetOption) isExpr()    {}
func (SetOption) Kind() Kind { return KindSetOption }

// USBSetOption is USBSETOPTION, the USB-channel counterpart of [SetOption].
type USBSetOption struct {
	Option  ParsedExpr // UInt
	Setting ParsedExpr // UInt
}

func (USBSetOption) isExpr()    {}
func (USBSetOption) Kind() Kind { return KindUSBSetOption }

////////////////////////////////////////////////////////////////
// measurement-test commands
////////////////////////////////////////////////////////////////

// TCUTest is the TCUTEST command: issue a measurement test over a TCU
// channel, retrying up to the given count until the result falls within
// [Min, Max].
type TCUTest struct {
	Channel ParsedExpr // UInt
	Min     ParsedExpr // UInt
	Max     ParsedExpr // UInt
	Retries ParsedExpr // UInt
	Message ParsedExpr // String, reported if every retry fails
}

func (TCUTest) isExpr()    {}
func (TCUTest) Kind() Kind { return KindTCUTest }

// PrinterTest is the PRINTERTEST command, the printer-channel counterpart
// of [TCUTest].
type PrinterTest struct {
	Channel ParsedExpr
	Min     ParsedExpr
	Max     ParsedExpr
	Retries ParsedExpr
	Message ParsedExpr
}

func (PrinterTest) isExpr()    {}
func (PrinterTest) Kind() Kind { return KindPrinterTest }

// USBPrinterTest is USBPRINTERTEST, the USB-channel counterpart of
// [PrinterTest].
type USBPrinterTest struct {
	Channel ParsedExpr
	Min     ParsedExpr
	Max     ParsedExpr
	Retries ParsedExpr
	Message ParsedExpr
}

func (USBPrinterTest) isExpr()    {}
func (USBPrinterTest) Kind() Kind { return KindUSBPrinterTest }

// TestResult is the TESTRESULT command. Like [IssueTest], kept only so the
// grammar accepts it; it evaluates to nothing.
type TestResult struct {
	Min     ParsedExpr
	Max     ParsedExpr
	Message ParsedExpr
}

func (TestResult) isExpr()    {}
func (TestResult) Kind() Kind { return KindTestResult }

////////////////////////////////////////////////////////////////
// variadic commands
////////////////////////////////////////////////////////////////

// Print is the PRINT command: send zero or more string/uint arguments to
// the printer, concatenated in order.
type Print struct {
	Args []ParsedExpr
}

func (Print) isExpr()    {}
func (Print) Kind() Kind { return KindPrint }

// USBPrint is USBPRINT, the USB-channel counterpart of [Print].
type USBPrint struct {
	Args []ParsedExpr
}

func (USBPrint) isExpr()    {}
func (USBPrint) Kind() Kind { return KindUSBPrint }
