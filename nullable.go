package derivre

// Nullable reports whether e accepts the empty input.
//
//	∅       → false
//	ε       → true
//	c       → false
//	a*      → true
//	a·b     → nullable(a) ∧ nullable(b)
//	a|b     → nullable(a) ∨ nullable(b)
//
// The rule is evaluated once per node when it is interned; children are
// always interned before their parents.
func Nullable(e *Expr) bool {
	return e.nullable
}

func nullableShape(kind Kind, a, b *Expr) bool {
	switch kind {
	case EmptyStringKind, StarKind:
		return true
	case SequenceKind:
		return a.nullable && b.nullable
	case AlternationKind:
		return a.nullable || b.nullable
	}
	return false // empty set, symbol
}
