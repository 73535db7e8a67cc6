package derivre

import "strings"

// Render returns a regex-like rendering of e for logs and tests:
//
//	∅  ε  c  (a)*  ab  a|b
//
// An alternation is parenthesized where it is an operand of a sequence.
// The output is not meant to be parsed back.
func Render(e *Expr) string {
	var b strings.Builder
	render(&b, e)
	return b.String()
}

func render(b *strings.Builder, e *Expr) {
	switch e.kind {
	case EmptySetKind:
		b.WriteString("∅")
	case EmptyStringKind:
		b.WriteString("ε")
	case SymbolKind:
		b.WriteRune(e.sym)
	case StarKind:
		b.WriteByte('(')
		render(b, e.left)
		b.WriteString(")*")
	case SequenceKind:
		renderOperand(b, e.left)
		renderOperand(b, e.right)
	case AlternationKind:
		render(b, e.left)
		b.WriteByte('|')
		render(b, e.right)
	}
}

func renderOperand(b *strings.Builder, e *Expr) {
	if e.kind == AlternationKind {
		b.WriteByte('(')
		render(b, e)
		b.WriteByte(')')
		return
	}
	render(b, e)
}
