package parser

import (
	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/report"
)

// commandSpec binds a keyword to the function that parses its argument
// list (if any) and builds the resulting expression. build returns
// ok=false if the argument list was structurally malformed; by that point
// it has already recorded a diagnostic describing why.
type commandSpec struct {
	keyword string
	build   func(p *parser) (ast.Expr, bool)
}

var commands = []commandSpec{
	{"HPMODE", func(p *parser) (ast.Expr, bool) { return ast.HPMode{}, true }},
	{"COMMENT", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argString)
		return ast.Comment{Arg: a}, ok
	}},
	{"WAIT", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argUint)
		return ast.Wait{Arg: a}, ok
	}},
	{"OPENDIALOG", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argString)
		return ast.OpenDialog{Arg: a}, ok
	}},
	{"WAITDIALOG", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argString)
		return ast.WaitDialog{Arg: a}, ok
	}},
	{"FLUSH", func(p *parser) (ast.Expr, bool) { return ast.Flush{}, true }},
	{"PROTOCOL", func(p *parser) (ast.Expr, bool) { return ast.Protocol{}, true }},
	{"PRINT", func(p *parser) (ast.Expr, bool) {
		args, ok := p.variadic()
		return ast.Print{Args: args}, ok
	}},
	{"SETTIMEFORMAT", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argByte)
		return ast.SetTimeFormat{Arg: a}, ok
	}},
	{"SETTIME", func(p *parser) (ast.Expr, bool) { return ast.SetTime{}, true }},
	{"SETOPTION", func(p *parser) (ast.Expr, bool) {
		opt, setting, ok := p.arg2(argByte, argByte)
		return ast.SetOption{Option: opt, Setting: setting}, ok
	}},
	{"TCUCLOSE", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argByte)
		return ast.TCUClose{Arg: a}, ok
	}},
	{"TCUOPEN", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argByte)
		return ast.TCUOpen{Arg: a}, ok
	}},
	{"TCUTEST", func(p *parser) (ast.Expr, bool) {
		channel, min, max, retries, message, ok := p.arg5(argByte, argUint, argUint, argUint, argString)
		return ast.TCUTest{Channel: channel, Min: min, Max: max, Retries: retries, Message: message}, ok
	}},
	{"PRINTERSET", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argByte)
		return ast.PrinterSet{Arg: a}, ok
	}},
	{"PRINTERTEST", func(p *parser) (ast.Expr, bool) {
		channel, min, max, retries, message, ok := p.arg5(argByte, argUint, argUint, argUint, argString)
		return ast.PrinterTest{Channel: channel, Min: min, Max: max, Retries: retries, Message: message}, ok
	}},
	{"ISSUETEST", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argByte)
		return ast.IssueTest{Arg: a}, ok
	}},
	{"TESTRESULT", func(p *parser) (ast.Expr, bool) {
		min, max, message, ok := p.arg3(argUint, argUint, argString)
		return ast.TestResult{Min: min, Max: max, Message: message}, ok
	}},
	{"USBOPEN", func(p *parser) (ast.Expr, bool) { return ast.USBOpen{}, true }},
	{"USBCLOSE", func(p *parser) (ast.Expr, bool) { return ast.USBClose{}, true }},
	{"USBPRINT", func(p *parser) (ast.Expr, bool) {
		args, ok := p.variadic()
		return ast.USBPrint{Args: args}, ok
	}},
	{"USBSETTIMEFORMAT", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argByte)
		return ast.USBSetTimeFormat{Arg: a}, ok
	}},
	{"USBSETTIME", func(p *parser) (ast.Expr, bool) { return ast.USBSetTime{}, true }},
	{"USBSETOPTION", func(p *parser) (ast.Expr, bool) {
		opt, setting, ok := p.arg2(argByte, argByte)
		return ast.USBSetOption{Option: opt, Setting: setting}, ok
	}},
	{"USBPRINTERSET", func(p *parser) (ast.Expr, bool) {
		a, ok := p.arg1(argByte)
		return ast.USBPrinterSet{Arg: a}, ok
	}},
	{"USBPRINTERTEST", func(p *parser) (ast.Expr, bool) {
		channel, min, max, retries, message, ok := p.arg5(argByte, argUint, argUint, argUint, argString)
		return ast.USBPrinterTest{Channel: channel, Min: min, Max: max, Retries: retries, Message: message}, ok
	}},
}

// command attempts to parse one full command statement: a keyword followed
// by whatever argument list it requires. matched is false if no keyword in
// the table starts at the current position, in which case nothing was
// consumed. ok is false if the keyword matched but its argument list did
// not parse; a diagnostic has already been recorded in that case.
func (p *parser) command() (expr ast.ParsedExpr, ok bool, matched bool) {
	for _, cmd := range commands {
		if !p.peekKeyword(cmd.keyword) {
			continue
		}

		start := p.pos
		p.pos += len(cmd.keyword)
		p.skipInlineSpace()

		built, ok := cmd.build(p)
		if !ok {
			return ast.ParsedExpr{}, false, true
		}
		return p.tree.New(built, p.span(start)), true, true
	}

	return ast.ParsedExpr{}, false, false
}

////////////////////////////////////////////////////////////////
// argument-list helpers
////////////////////////////////////////////////////////////////

func expectedName(kind argKind) string {
	switch kind {
	case argString:
		return "a string"
	default:
		return "an unsigned integer"
	}
}

// foundDesc describes whatever is at the scanner's current position, for
// use in "expected X, found Y" diagnostics.
func (p *parser) foundDesc() string {
	if p.eof() {
		return "end of input"
	}
	r, _ := p.peek()
	return "'" + string(r) + "'"
}

// expectValue parses a single required argument, recording an Unexpected
// diagnostic if nothing parseable is there.
func (p *parser) expectValue(kind argKind) (ast.ParsedExpr, bool) {
	v, ok := p.arg(kind)
	if !ok {
		p.errorf(report.New(report.Unexpected{
			Span:     p.span(p.pos),
			Expected: []string{expectedName(kind)},
			Found:    p.foundDesc(),
		}))
	}
	return v, ok
}

// expectComma parses a ',' separator, recording an Unexpected diagnostic if
// it isn't there.
func (p *parser) expectComma() bool {
	if p.comma() {
		return true
	}
	p.errorf(report.New(report.Unexpected{
		Span:     p.span(p.pos),
		Expected: []string{"','"},
		Found:    p.foundDesc(),
	}))
	return false
}

func (p *parser) arg1(kind argKind) (ast.ParsedExpr, bool) {
	return p.expectValue(kind)
}

func (p *parser) arg2(k1, k2 argKind) (ast.ParsedExpr, ast.ParsedExpr, bool) {
	a1, ok := p.expectValue(k1)
	if !ok {
		return ast.ParsedExpr{}, ast.ParsedExpr{}, false
	}
	if !p.expectComma() {
		return a1, ast.ParsedExpr{}, false
	}
	a2, ok := p.expectValue(k2)
	return a1, a2, ok
}

func (p *parser) arg3(k1, k2, k3 argKind) (ast.ParsedExpr, ast.ParsedExpr, ast.ParsedExpr, bool) {
	a1, ok := p.expectValue(k1)
	if !ok {
		return ast.ParsedExpr{}, ast.ParsedExpr{}, ast.ParsedExpr{}, false
	}
	if !p.expectComma() {
		return a1, ast.ParsedExpr{}, ast.ParsedExpr{}, false
	}
	a2, ok := p.expectValue(k2)
	if !ok {
		return a1, a2, ast.ParsedExpr{}, false
	}
	if !p.expectComma() {
		return a1, a2, ast.ParsedExpr{}, false
	}
	a3, ok := p.expectValue(k3)
	return a1, a2, a3, ok
}

func (p *parser) arg5(k1, k2, k3, k4, k5 argKind) (a1, a2, a3, a4, a5 ast.ParsedExpr, ok bool) {
	if a1, ok = p.expectValue(k1); !ok {
		return
	}
	if ok = p.expectComma(); !ok {
		return
	}
	if a2, ok = p.expectValue(k2); !ok {
		return
	}
	if ok = p.expectComma(); !ok {
		return
	}
	if a3, ok = p.expectValue(k3); !ok {
		return
	}
	if ok = p.expectComma(); !ok {
		return
	}
	if a4, ok = p.expectValue(k4); !ok {
		return
	}
	if ok = p.expectComma(); !ok {
		return
	}
	a5, ok = p.expectValue(k5)
	return
}

// variadic parses zero or more comma-separated values. Unlike the typed
// arguments above, PRINT/USBPRINT accept either a string or a uint in any
// position; each uint is checked to fit in a byte, since it is sent as one.
func (p *parser) variadic() ([]ast.ParsedExpr, bool) {
	checkByte := func(v ast.ParsedExpr) {
		if u, isUint := v.Expression().(ast.UintLit); isUint && u.Value > 255 {
			p.errorf(report.New(report.ArgValue{Span: v.Span(), Value: u.Value, Min: 0, Max: 255}))
		}
	}

	first, ok := p.value()
	if !ok {
		return nil, true
	}
	checkByte(first)

	args := []ast.ParsedExpr{first}
	for p.comma() {
		v, ok := p.value()
		if !ok {
			p.errorf(report.New(report.Unexpected{
				Span:     p.span(p.pos),
				Expected: []string{"a string", "an unsigned integer"},
				Found:    p.foundDesc(),
			}))
			return args, false
		}
		checkByte(v)
		args = append(args, v)
	}
	return args, true
}
