package derivre

import "fmt"

// Kind is the variant tag of an expression.
type Kind int8

// The six shapes of the regular-expression algebra.
const (
	EmptySetKind Kind = iota
	EmptyStringKind
	SymbolKind
	StarKind
	SequenceKind
	AlternationKind
)

func (k Kind) String() string {
	switch k {
	case EmptySetKind:
		return "empty-set"
	case EmptyStringKind:
		return "empty-string"
	case SymbolKind:
		return "symbol"
	case StarKind:
		return "star"
	case SequenceKind:
		return "sequence"
	case AlternationKind:
		return "alternation"
	}
	return fmt.Sprintf("<illegal kind: %d>", k)
}

// --- Expr ------------------------------------------------------------------

// Expr is a regular expression node. Expressions are created exclusively by
// a Pool and are never mutated afterwards; two expressions of the same pool
// describe the same shape if and only if they are the same pointer.
type Expr struct {
	kind     Kind
	sym      rune  // SymbolKind only
	left     *Expr // child of a star, first operand of sequence/alternation
	right    *Expr // second operand of sequence/alternation
	nullable bool  // cached at intern time
	id       uint32
	pool     *Pool
}

// Kind returns the variant tag of e.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Symbol returns the rune matched by a symbol expression, or 0 for all
// other kinds.
func (e *Expr) Symbol() rune {
	if e.kind != SymbolKind {
		return 0
	}
	return e.sym
}

// Child returns the repeated sub-expression of a star, or nil.
func (e *Expr) Child() *Expr {
	if e.kind != StarKind {
		return nil
	}
	return e.left
}

// Left returns the first operand of a sequence or alternation, or nil.
func (e *Expr) Left() *Expr {
	if e.kind != SequenceKind && e.kind != AlternationKind {
		return nil
	}
	return e.left
}

// Right returns the second operand of a sequence or alternation, or nil.
func (e *Expr) Right() *Expr {
	if e.kind != SequenceKind && e.kind != AlternationKind {
		return nil
	}
	return e.right
}

// ID is the serial number of e within its pool. IDs are assigned in
// interning order, starting with 0 for the empty set.
func (e *Expr) ID() uint32 {
	return e.id
}

func (e *Expr) String() string {
	return Render(e)
}

// pair is the interning key for sequences and alternations.
type pair struct {
	a, b *Expr
}
