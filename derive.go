package derivre

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Derive returns the Brzozowski derivative of e with respect to c, i.e. the
// expression accepting exactly { w | c·w is accepted by e }.
//
//	D(∅)   = ∅
//	D(ε)   = ∅
//	D(s)   = ε if s = c, ∅ otherwise
//	D(a*)  = D(a)·a*
//	D(a·b) = D(a)·b            if a is not nullable
//	       = D(a)·b | D(b)     if a is nullable
//	D(a|b) = D(a) | D(b)
//
// All intermediate results are interned in p. Derive walks e with an explicit
// stack, so the depth of e is not limited by the goroutine stack, and derives
// every shared sub-term only once per call.
func (p *Pool) Derive(e *Expr, c rune) *Expr {
	p.checkOwned(e, "derivative")
	d := deriver{
		pool:  p,
		c:     c,
		memo:  make(map[*Expr]*Expr),
		stack: arraystack.New(),
	}
	return d.derive(e)
}

type deriver struct {
	pool  *Pool
	c     rune
	memo  map[*Expr]*Expr // node → derivative, for this call only
	stack *arraystack.Stack
}

// frame is a pending node on the work stack. A node is visited twice: first
// to schedule the derivatives of its operands, then (expanded) to combine
// them.
type frame struct {
	e        *Expr
	expanded bool
}

func (d *deriver) derive(root *Expr) *Expr {
	d.stack.Push(frame{e: root})
	for !d.stack.Empty() {
		top, _ := d.stack.Pop()
		f := top.(frame)
		if _, done := d.memo[f.e]; done {
			continue
		}
		if r, ok := d.leaf(f.e); ok {
			d.memo[f.e] = r
			continue
		}
		if f.expanded {
			d.memo[f.e] = d.combine(f.e)
			continue
		}
		d.stack.Push(frame{e: f.e, expanded: true})
		for _, op := range d.operands(f.e) {
			if _, done := d.memo[op]; !done {
				d.stack.Push(frame{e: op})
			}
		}
	}
	return d.memo[root]
}

// leaf handles the kinds whose derivative needs no operand derivatives.
func (d *deriver) leaf(e *Expr) (*Expr, bool) {
	switch e.kind {
	case EmptySetKind, EmptyStringKind:
		return d.pool.emptySet, true
	case SymbolKind:
		if e.sym == d.c {
			return d.pool.emptyString, true
		}
		return d.pool.emptySet, true
	}
	return nil, false
}

// operands lists the sub-expressions whose derivatives combine needs.
func (d *deriver) operands(e *Expr) []*Expr {
	switch e.kind {
	case StarKind:
		return []*Expr{e.left}
	case SequenceKind:
		if e.left.nullable {
			return []*Expr{e.left, e.right}
		}
		return []*Expr{e.left}
	case AlternationKind:
		return []*Expr{e.left, e.right}
	}
	return nil
}

func (d *deriver) combine(e *Expr) *Expr {
	p := d.pool
	switch e.kind {
	case StarKind:
		// unroll one iteration, re-using the star node itself
		return p.Sequence(d.memo[e.left], e)
	case SequenceKind:
		r := p.Sequence(d.memo[e.left], e.right)
		if !e.left.nullable {
			return r
		}
		// a match may end right at the boundary between left and right
		return p.Alternation(r, d.memo[e.right])
	case AlternationKind:
		return p.Alternation(d.memo[e.left], d.memo[e.right])
	}
	panic("derivre: combine called for leaf " + e.kind.String())
}
