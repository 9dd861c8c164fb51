package ast

// Equal reports whether e and other hold the same expression, ignoring
// source spans. This mirrors the original implementation's PartialEq on
// ParsedExpr, which likewise compares expressions only: it exists so tests
// can build an expected tree with the FromX helpers (default, zero spans)
// and compare it directly against one produced by the parser.
func (e ParsedExpr) Equal(other ParsedExpr) bool {
	return exprEqual(e.Expression(), other.Expression())
}

func exprEqual(a, b Expr) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch a := a.(type) {
	case StringLit:
		return a.Value == b.(StringLit).Value
	case UintLit:
		return a.Value == b.(UintLit).Value
	case ScriptComment:
		return a.Text == b.(ScriptComment).Text

	case HPMode, Flush, Protocol, SetTime, USBOpen, USBClose, USBSetTime:
		return true

	case Comment:
		return a.Arg.Equal(b.(Comment).Arg)
	case Wait:
		return a.Arg.Equal(b.(Wait).Arg)
	case OpenDialog:
		return a.Arg.Equal(b.(OpenDialog).Arg)
	case WaitDialog:
		return a.Arg.Equal(b.(WaitDialog).Arg)
	case SetTimeFormat:
		return a.Arg.Equal(b.(SetTimeFormat).Arg)
	case TCUClose:
		return a.Arg.Equal(b.(TCUClose).Arg)
	case TCUOpen:
		return a.Arg.Equal(b.(TCUOpen).Arg)
	case PrinterSet:
		return a.Arg.Equal(b.(PrinterSet).Arg)
	case IssueTest:
		return a.Arg.Equal(b.(IssueTest).Arg)
	case USBSetTimeFormat:
		return a.Arg.Equal(b.(USBSetTimeFormat).Arg)
	case USBPrinterSet:
		return a.Arg.Equal(b.(USBPrinterSet).Arg)

	case SetOption:
		bb := b.(SetOption)
		return a.Option.Equal(bb.Option) && a.Setting.Equal(bb.Setting)
	case USBSetOption:
		bb := b.(USBSetOption)
		return a.Option.Equal(bb.Option) && a.Setting.Equal(bb.Setting)

	case TCUTest:
		bb := b.(TCUTest)
		return a.Channel.Equal(bb.Channel) && a.Min.Equal(bb.Min) && a.Max.Equal(bb.Max) &&
			a.Retries.Equal(bb.Retries) && a.Message.Equal(bb.Message)
	case PrinterTest:
		bb := b.(PrinterTest)
		return a.Channel.Equal(bb.Channel) && a.Min.Equal(bb.Min) && a.Max.Equal(bb.Max) &&
			a.Retries.Equal(bb.Retries) && a.Message.Equal(bb.Message)
	case USBPrinterTest:
		bb := b.(USBPrinterTest)
		return a.Channel.Equal(bb.Channel) && a.Min.Equal(bb.Min) && a.Max.Equal(bb.Max) &&
			a.Retries.Equal(bb.Retries) && a.Message.Equal(bb.Message)
	case TestResult:
		bb := b.(TestResult)
		return a.Min.Equal(bb.Min) && a.Max.Equal(bb.Max) && a.Message.Equal(bb.Message)

	case Print:
		bb := b.(Print)
		if len(a.Args) != len(bb.Args) {
			return false
		}
		for i := range a.Args {
			if !a.Args[i].Equal(bb.Args[i]) {
				return false
			}
		}
		return true
	case USBPrint:
		bb := b.(USBPrint)
		if len(a.Args) != len(bb.Args) {
			return false
		}
		for i := range a.Args {
			if !a.Args[i].Equal(bb.Args[i]) {
				return false
			}
		}
		return true

	default:
		return false
	}
}
