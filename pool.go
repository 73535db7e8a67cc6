package derivre

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Pool is an interning arena for expressions. Every constructor returns the
// canonical instance for its arguments, so expression equality is pointer
// equality for all expressions of one pool.
//
// A pool only grows. Matching one input touches a bounded set of derivative
// terms, but many unrelated patterns sharing a pool will accumulate shapes;
// drop the pool to release them.
//
// All methods are safe for concurrent use. Each variant has its own table
// guarded by its own lock, which is held only while a new shape is interned.
type Pool struct {
	emptySet    *Expr
	emptyString *Expr
	symbols     internTable[rune]
	stars       internTable[*Expr]
	sequences   internTable[pair]
	alts        internTable[pair]
	serial      uint32
}

// NewPool creates an empty pool with the empty-set and empty-string
// sentinels preloaded.
func NewPool() *Pool {
	p := &Pool{}
	p.emptySet = p.newExpr(EmptySetKind, 0, nil, nil)
	p.emptyString = p.newExpr(EmptyStringKind, 0, nil, nil)
	return p
}

// EmptySet returns ∅, which matches nothing.
func (p *Pool) EmptySet() *Expr {
	return p.emptySet
}

// EmptyString returns ε, which matches only the empty input.
func (p *Pool) EmptyString() *Expr {
	return p.emptyString
}

// Symbol returns the expression matching exactly the one-rune input c.
func (p *Pool) Symbol(c rune) *Expr {
	return p.symbols.intern(c, func() *Expr {
		return p.newExpr(SymbolKind, c, nil, nil)
	})
}

// Star returns the expression matching zero or more repetitions of e.
//
// Star of the empty set is the empty set itself, not ε. Callers relying on
// the textbook identity ∅* = ε have to special-case it.
func (p *Pool) Star(e *Expr) *Expr {
	p.checkOwned(e, "star")
	if e == p.emptySet {
		return e
	}
	return p.stars.intern(e, func() *Expr {
		return p.newExpr(StarKind, 0, e, nil)
	})
}

// Sequence returns the expression matching a immediately followed by b.
func (p *Pool) Sequence(a, b *Expr) *Expr {
	p.checkOwned(a, "sequence")
	p.checkOwned(b, "sequence")
	return p.sequences.intern(pair{a, b}, func() *Expr {
		return p.newExpr(SequenceKind, 0, a, b)
	})
}

// Alternation returns the expression matching a or b.
func (p *Pool) Alternation(a, b *Expr) *Expr {
	p.checkOwned(a, "alternation")
	p.checkOwned(b, "alternation")
	return p.alts.intern(pair{a, b}, func() *Expr {
		return p.newExpr(AlternationKind, 0, a, b)
	})
}

// PoolStats reports the number of interned shapes per variant. The two
// sentinels are not counted.
type PoolStats struct {
	Symbols      int
	Stars        int
	Sequences    int
	Alternations int
}

// Total is the number of interned shapes, sentinels excluded.
func (s PoolStats) Total() int {
	return s.Symbols + s.Stars + s.Sequences + s.Alternations
}

// Stats returns a snapshot of the pool's table sizes.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Symbols:      p.symbols.size(),
		Stars:        p.stars.size(),
		Sequences:    p.sequences.size(),
		Alternations: p.alts.size(),
	}
}

// --- Internals -------------------------------------------------------------

func (p *Pool) newExpr(kind Kind, c rune, a, b *Expr) *Expr {
	return &Expr{
		kind:     kind,
		sym:      c,
		left:     a,
		right:    b,
		nullable: nullableShape(kind, a, b),
		id:       atomic.AddUint32(&p.serial, 1) - 1,
		pool:     p,
	}
}

// checkOwned panics if e has not been created by p. Sharing is only
// guaranteed within one pool, so mixing pools is a programming error.
func (p *Pool) checkOwned(e *Expr, op string) {
	if e == nil {
		panic(fmt.Sprintf("derivre: nil operand for %s", op))
	}
	if e.pool != p {
		panic(fmt.Sprintf("derivre: operand of %s belongs to a different pool", op))
	}
}

// internTable maps a structural key to its canonical expression.
type internTable[K comparable] struct {
	mu sync.Mutex
	m  map[K]*Expr
}

// intern returns the expression stored for key, creating it with mk if
// absent. Lookup and insertion happen under one lock acquisition, so
// concurrent callers always observe the same instance.
func (t *internTable[K]) intern(key K, mk func() *Expr) *Expr {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.m[key]; ok {
		return e
	}
	if t.m == nil {
		t.m = make(map[K]*Expr)
	}
	e := mk()
	t.m[key] = e
	return e
}

func (t *internTable[K]) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.m)
}
