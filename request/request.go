// Package request defines the frontend requests the evaluator produces:
// the complete, closed set of external actions a script can ask the host
// to perform. The interpreter itself never touches a serial port or a
// dialog box directly — it only builds these values.
package request

import (
	"time"

	"github.com/sullyy9/gallivant/transact"
)

// Request is a tagged variant of "one action the host should perform".
//
// isRequest is an unexported marker method sealing the interface to this
// package's concrete types, the same closed-sum idiom used by [ast.Expr]
// and [report.Reason].
type Request interface {
	isRequest()
}

// None is produced by statements with no externally visible effect
// (comments, HPMODE, PROTOCOL, and the unused ISSUETEST/TESTRESULT
// commands).
type None struct{}

func (None) isRequest() {}

// Wait asks the host to pause script execution for the given duration.
type Wait struct {
	Duration time.Duration
}

func (Wait) isRequest() {}

// GUIPrint asks the host to display a message without blocking.
type GUIPrint struct {
	Message string
}

func (GUIPrint) isRequest() {}

// DialogKind distinguishes the two kinds of dialog a script can request.
type DialogKind int

const (
	// Notification is shown to the user without blocking script execution.
	Notification DialogKind = iota
	// ManualInput blocks script execution until the host reports the
	// dialog was dismissed.
	ManualInput
)

// GUIDialogue asks the host to show a dialog.
type GUIDialogue struct {
	Kind    DialogKind
	Message string
}

func (GUIDialogue) isRequest() {}

// TCUFlush asks the host to discard anything currently buffered on the TCU
// link.
type TCUFlush struct{}

func (TCUFlush) isRequest() {}

// TCUTransact asks the host to drive tx to completion over the TCU port,
// calling (*transact.Transaction).Process repeatedly until it stops
// reporting [transact.Ongoing].
type TCUTransact struct {
	Tx *transact.Transaction
}

func (TCUTransact) isRequest() {}

// PrinterOpen asks the host to open the printer's direct USB channel.
type PrinterOpen struct{}

func (PrinterOpen) isRequest() {}

// PrinterClose asks the host to close the printer's direct USB channel.
type PrinterClose struct{}

func (PrinterClose) isRequest() {}

// PrinterTransact asks the host to drive tx to completion over the
// printer's USB channel, the direct-USB counterpart of [TCUTransact].
type PrinterTransact struct {
	Tx *transact.Transaction
}

func (PrinterTransact) isRequest() {}
