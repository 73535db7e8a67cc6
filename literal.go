package derivre

// Literal returns the expression matching exactly the string s:
//
//	Literal("")  = ε
//	Literal(cs)  = c · Literal(s)
//
// The sequence chain is folded from the right, without recursion.
func (p *Pool) Literal(s string) *Expr {
	runes := []rune(s)
	e := p.emptyString
	for i := len(runes) - 1; i >= 0; i-- {
		e = p.Sequence(p.Symbol(runes[i]), e)
	}
	return e
}

// Concat returns the right-nested sequence e1·(e2·(…·en)). It returns ε for
// no operands and the operand itself for exactly one.
func (p *Pool) Concat(es ...*Expr) *Expr {
	if len(es) == 0 {
		return p.emptyString
	}
	e := es[len(es)-1]
	p.checkOwned(e, "sequence")
	for i := len(es) - 2; i >= 0; i-- {
		e = p.Sequence(es[i], e)
	}
	return e
}

// Union returns the right-nested alternation e1|(e2|(…|en)). It returns ∅
// for no operands and the operand itself for exactly one.
func (p *Pool) Union(es ...*Expr) *Expr {
	if len(es) == 0 {
		return p.emptySet
	}
	e := es[len(es)-1]
	p.checkOwned(e, "alternation")
	for i := len(es) - 2; i >= 0; i-- {
		e = p.Alternation(es[i], e)
	}
	return e
}
