// Package gallivant ties the parser, evaluator and transaction engine
// together into a single sequence a host can drive: parse a script once,
// then pull one [request.Request] at a time until the script is exhausted.
package gallivant

import (
	"github.com/sullyy9/gallivant/ast"
	"github.com/sullyy9/gallivant/eval"
	"github.com/sullyy9/gallivant/parser"
	"github.com/sullyy9/gallivant/report"
	"github.com/sullyy9/gallivant/request"
)

// Interpreter holds a parsed script, a cursor into it, and the evaluation
// state (currently just HPMODE) that commands mutate as they run.
type Interpreter struct {
	exprs []ast.ParsedExpr
	index int
	state ast.EvalState
}

// New parses script and returns an Interpreter ready to run it. If the
// script has any syntax errors, New returns the diagnostics describing
// them instead; the caller should not run a script that failed to parse.
func New(path, script string) (*Interpreter, []*report.Diagnostic) {
	exprs, diags := parser.Parse(path, script)
	if len(diags) > 0 {
		return nil, diags
	}
	return &Interpreter{exprs: exprs}, nil
}

// Next evaluates the next statement and returns the request it produced.
// ok is false once the script is exhausted, at which point req and err are
// both zero. A non-nil err means the statement could not be evaluated (a
// PRINT payload too long for its frame, or an internal invariant violation
// — see [eval.ErrInternal]); the iteration ends there, and every later call
// returns ok=false until [Interpreter.Restart].
func (i *Interpreter) Next() (req request.Request, err error, ok bool) {
	if i.index >= len(i.exprs) {
		return nil, nil, false
	}

	expr := i.exprs[i.index]
	i.index++

	req, err = eval.Evaluate(expr, &i.state)
	if err != nil {
		i.index = len(i.exprs)
	}
	return req, err, true
}

// Restart rewinds the interpreter to the first statement and resets
// evaluation state, as if it had just been constructed with New.
func (i *Interpreter) Restart() {
	i.index = 0
	i.state = ast.EvalState{}
}
