package ast

import (
	"github.com/sullyy9/gallivant/internal/arena"
	"github.com/sullyy9/gallivant/report"
)

// Expr is a tagged variant of the script language's expression grammar.
//
// isExpr is an unexported marker method: it seals the interface so that only
// the concrete kinds declared in this package can implement it, giving the
// closed sum the spec calls for. Code outside this package can hold and pass
// around an Expr, and can always recover its concrete kind with [Expr.Kind],
// but cannot add new variants.
type Expr interface {
	Kind() Kind
	isExpr()
}

// Node is the arena-resident payload for one tree position: an expression
// together with its source span. A compound expression's children are
// themselves [ParsedExpr] values (see e.g. (Comment).Arg); as long as a
// single parse allocates every node of its tree from one [Tree] (as the
// parser does), those children's nodes live in the same backing arena as
// their parent, so a whole parsed script remains a handful of contiguous
// slices rather than one heap allocation per node.
type Node struct {
	Expr Expr
	Span report.Span
}

// Tree owns every node produced while parsing one script. It is never
// mutated once parsing completes.
type Tree struct {
	nodes arena.Arena[Node]
}

// NewTree returns an empty tree, ready to have nodes allocated into it.
func NewTree() *Tree {
	return &Tree{}
}

// New allocates expr into the tree and returns a [ParsedExpr] view of it.
func (t *Tree) New(expr Expr, span report.Span) ParsedExpr {
	ptr := t.nodes.New(Node{Expr: expr, Span: span})
	return ParsedExpr{tree: t, ptr: ptr}
}

// ParsedExpr is an expression together with its source span.
//
// Ownership: a compound expression holds its children as ParsedExpr values
// directly (see e.g. (Comment).Arg); the expression tree is acyclic. The
// zero ParsedExpr is invalid; construct one via [Tree.New] or the FromX test
// helpers below.
type ParsedExpr struct {
	tree *Tree
	ptr  arena.Pointer[Node]
}

func (e ParsedExpr) node() *Node {
	return e.ptr.In(&e.tree.nodes)
}

// Expression returns the expression this node holds.
func (e ParsedExpr) Expression() Expr {
	return e.node().Expr
}

// Span returns the source span this node was parsed from.
func (e ParsedExpr) Span() report.Span {
	return e.node().Span
}

// Kind returns the kind of the expression this node holds.
func (e ParsedExpr) Kind() Kind {
	return e.Expression().Kind()
}

// FromStringDefault returns a String-kind ParsedExpr with a zero span,
// intended for use in tests that don't care about source positions.
func FromStringDefault(s string) ParsedExpr {
	return NewTree().New(StringLit{Value: s}, report.Span{})
}

// FromUintDefault returns a UInt-kind ParsedExpr with a zero span, intended
// for use in tests that don't care about source positions.
func FromUintDefault(u uint32) ParsedExpr {
	return NewTree().New(UintLit{Value: u}, report.Span{})
}
