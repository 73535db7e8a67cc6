package derivre

import "github.com/npillmayer/schuko/tracing"

// Step is one derivative step of a match: Expr is the term left after the
// rune Symbol at rune position Index has been consumed.
type Step struct {
	Index  int
	Symbol rune
	Expr   *Expr
}

// Matches reports whether e accepts the whole of input. The input is consumed
// rune by rune, deriving e by each rune in turn; input is accepted if the
// final term is nullable.
func (p *Pool) Matches(e *Expr, input string) bool {
	return p.fold(e, input, nil)
}

// Trace matches like Matches, but records every intermediate term. Matching
// stops early when a term collapses to the empty set, so the number of steps
// may be smaller than the number of runes in input.
func (p *Pool) Trace(e *Expr, input string) ([]Step, bool) {
	var steps []Step
	// terms are rendered for debug output only
	debug := tracer().GetTraceLevel() >= tracing.LevelDebug
	if debug {
		tracer().Debugf("regex: %s", Render(e))
	}
	ok := p.fold(e, input, func(s Step) {
		if debug {
			tracer().Debugf("derivative %d by %q: %s", s.Index+1, s.Symbol, Render(s.Expr))
		}
		steps = append(steps, s)
	})
	if debug {
		tracer().Debugf("match %q: %v", input, ok)
	}
	return steps, ok
}

func (p *Pool) fold(e *Expr, input string, visit func(Step)) bool {
	p.checkOwned(e, "match")
	current := e
	i := 0
	for _, c := range input {
		current = p.Derive(current, c)
		if visit != nil {
			visit(Step{Index: i, Symbol: c, Expr: current})
		}
		if current == p.emptySet {
			return false // nothing can follow
		}
		i++
	}
	return Nullable(current)
}
