package cli

import (
	"github.com/npillmayer/derivre"
	"github.com/spf13/cobra"
)

// patternFlags describe a pattern on the command line: a literal, optional
// alternative literals, optionally repeated.
type patternFlags struct {
	alts []string
	star bool
}

func (pf *patternFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&pf.alts, "alt", "a", nil, "alternative literal (repeatable)")
	cmd.Flags().BoolVarP(&pf.star, "star", "s", false, "match zero or more repetitions of the pattern")
}

// build creates the pattern expression in p.
func (pf patternFlags) build(p *derivre.Pool, literal string) *derivre.Expr {
	lits := make([]*derivre.Expr, 0, len(pf.alts)+1)
	lits = append(lits, p.Literal(literal))
	for _, a := range pf.alts {
		lits = append(lits, p.Literal(a))
	}
	e := p.Union(lits...)
	if pf.star {
		e = p.Star(e)
	}
	tracer().Debugf("pattern: %s", derivre.Render(e))
	return e
}
