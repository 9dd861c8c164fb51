package parser

import (
	"strconv"

	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/report"
)

// Parse parses script source text into a tree of top-level expressions. It
// never stops at the first error: every malformed command or argument it
// finds is recorded as a diagnostic, and parsing resumes at the next line
// so that one bad statement never suppresses feedback on the rest of the
// script. The returned tree holds whatever statements parsed successfully;
// callers should treat a non-empty diagnostic slice as "do not run this",
// even if the tree is non-empty too.
func Parse(path, src string) ([]ast.ParsedExpr, []*report.Diagnostic) {
	p := &parser{
		scanner: newScanner(report.NewFile(path, src)),
		tree:    ast.NewTree(),
	}
	return p.run()
}

type parser struct {
	*scanner
	tree  *ast.Tree
	exprs []ast.ParsedExpr
	diags []*report.Diagnostic
}

func (p *parser) errorf(d *report.Diagnostic) {
	p.diags = append(p.diags, d)
}

func (p *parser) run() ([]ast.ParsedExpr, []*report.Diagnostic) {
	for {
		p.skipSeparators()
		if p.eof() {
			break
		}

		start := p.pos
		expr, ok, matched := p.statement()
		if ok {
			p.exprs = append(p.exprs, expr)
			continue
		}

		// Recovery: the statement starting at `start` could not be parsed
		// at all. Blame the run of non-space characters it begins with and
		// skip to the end of the line.
		if p.pos == start {
			p.advance()
		}
		for {
			r, size := p.peek()
			if size == 0 || isInlineSpace(r) || r == '\n' {
				break
			}
			p.pos += size
		}
		blame := p.span(start)
		for {
			r, size := p.peek()
			if size == 0 || r == '\n' {
				break
			}
			p.pos += size
		}

		// A recognised keyword whose arguments were malformed already has
		// its own, more specific diagnostic from command(); piling an
		// UnrecognisedCommand on top of that would be redundant and wrong.
		if !matched {
			p.errorf(report.New(report.UnrecognisedCommand{Span: blame}))
		}
	}

	return p.exprs, p.diags
}

// statement attempts to parse exactly one top-level item: a script
// comment, a bare value, or a command and its arguments. ok is false if
// nothing at the current position parsed successfully; matched is true
// if a command keyword was recognised even when its arguments weren't
// (in which case command() has already reported the specific problem).
func (p *parser) statement() (expr ast.ParsedExpr, ok bool, matched bool) {
	if r, _ := p.peek(); r == ';' {
		return p.scriptComment(), true, true
	}

	if expr, ok, matched := p.command(); matched {
		return expr, ok, true
	}

	if expr, ok := p.value(); ok {
		return expr, true, true
	}

	return ast.ParsedExpr{}, false, false
}

// scriptComment consumes a ';' and everything up to (not including) the
// next newline or end of input.
func (p *parser) scriptComment() ast.ParsedExpr {
	start := p.pos
	p.advance() // ';'

	textStart := p.pos
	for {
		r, size := p.peek()
		if size == 0 || r == '\n' {
			break
		}
		p.pos += size
	}

	text := p.src[textStart:p.pos]
	return p.tree.New(ast.ScriptComment{Text: text}, p.span(start))
}

////////////////////////////////////////////////////////////////
// values
////////////////////////////////////////////////////////////////

// value parses a bare string or (decimal or $-prefixed hex) unsigned
// integer literal.
func (p *parser) value() (ast.ParsedExpr, bool) {
	start := p.pos

	if r, _ := p.peek(); r == '"' {
		return p.stringLit(start)
	}

	if r, _ := p.peek(); r == '$' {
		p.advance()
		digits, ok := p.scanDigits(16)
		if !ok {
			p.pos = start
			return ast.ParsedExpr{}, false
		}
		n, _ := strconv.ParseUint(digits, 16, 32)
		return p.tree.New(ast.UintLit{Value: uint32(n)}, p.span(start)), true
	}

	if digits, ok := p.scanDigits(10); ok {
		n, _ := strconv.ParseUint(digits, 10, 32)
		return p.tree.New(ast.UintLit{Value: uint32(n)}, p.span(start)), true
	}

	return ast.ParsedExpr{}, false
}

// stringLit parses a "-delimited string. The opening quote has not yet
// been consumed. There are no escape sequences: the body is every byte up
// to the next '"'.
func (p *parser) stringLit(start int) (ast.ParsedExpr, bool) {
	p.advance() // opening '"'
	bodyStart := p.pos
	for {
		r, size := p.peek()
		if size == 0 {
			// Unterminated string: treat as a fatal parse error at the
			// statement's start so recovery can skip it cleanly.
			p.pos = start
			return ast.ParsedExpr{}, false
		}
		if r == '"' {
			break
		}
		p.pos += size
	}
	text := p.src[bodyStart:p.pos]
	p.advance() // closing '"'
	return p.tree.New(ast.StringLit{Value: text}, p.span(start)), true
}

////////////////////////////////////////////////////////////////
// argument validation
////////////////////////////////////////////////////////////////

type argKind int

const (
	argString argKind = iota
	argUint
	argByte
)

// arg parses one value and validates it against kind, emitting a
// diagnostic (and continuing to return the parsed value) if validation
// fails. ok is false only when no value could be parsed at all.
func (p *parser) arg(kind argKind) (ast.ParsedExpr, bool) {
	start := p.pos
	v, ok := p.value()
	if !ok {
		return ast.ParsedExpr{}, false
	}
	span := p.span(start)

	switch expr := v.Expression().(type) {
	case ast.StringLit:
		if kind == argString {
			return v, true
		}
		help := ""
		if allDecimalDigits(expr.Value) {
			help = `If the argument was intended to be an unsigned integer, try removing the enclosing ""`
		} else if len(expr.Value) > 1 && expr.Value[0] == '$' && allHexDigits(expr.Value[1:]) {
			help = `If the argument was intended to be a hex unsigned integer, try removing the enclosing ""`
		}
		d := report.New(report.ArgType{Span: span, Expected: []string{"Unsigned Integer"}, Found: "String"})
		if help != "" {
			d = d.WithHelp(help)
		}
		p.errorf(d)
		return v, true

	case ast.UintLit:
		if kind != argString {
			if kind == argByte && expr.Value > 255 {
				p.errorf(report.New(report.ArgValue{Span: span, Value: expr.Value, Min: 0, Max: 255}))
			}
			return v, true
		}
		p.errorf(report.New(report.ArgType{Span: span, Expected: []string{"String"}, Found: "Unsigned Integer"}).
			WithHelp(`If the argument was intended to be a string it should be delimited by ""`))
		return v, true
	}

	return v, true
}

func allDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r, 16) {
			return false
		}
	}
	return true
}

// comma parses a ',' surrounded by inline whitespace, reporting ok=false
// (without consuming anything) if one isn't there.
func (p *parser) comma() bool {
	save := p.pos
	p.skipInlineSpace()
	if r, size := p.peek(); size == 0 || r != ',' {
		p.pos = save
		return false
	}
	p.advance()
	p.skipInlineSpace()
	return true
}
