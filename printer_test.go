package derivre

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.core")
	defer teardown()
	//
	p := NewPool()
	a, b, c := p.Symbol('a'), p.Symbol('b'), p.Symbol('c')
	for i, x := range []struct {
		e    *Expr
		want string
	}{
		{p.EmptySet(), "∅"},
		{p.EmptyString(), "ε"},
		{a, "a"},
		{p.Star(a), "(a)*"},
		{p.Sequence(a, b), "ab"},
		{p.Alternation(a, b), "a|b"},
		{p.Literal("bob"), "bobε"},
		{p.Sequence(p.Alternation(a, b), c), "(a|b)c"},
		{p.Alternation(p.Sequence(a, b), c), "ab|c"},
		{p.Star(p.Alternation(a, b)), "(a|b)*"},
		{p.Derive(p.Literal("bob"), 'b'), "εobε"},
	} {
		if s := Render(x.e); s != x.want {
			t.Errorf("test %d: expected %q, rendered %q", i, x.want, s)
		}
		if x.e.String() != x.want {
			t.Errorf("test %d: expected String() to equal Render()", i)
		}
	}
}

func TestKindString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.core")
	defer teardown()
	//
	p := NewPool()
	if k := p.Star(p.Symbol('x')).Kind(); k.String() != "star" {
		t.Errorf("expected kind 'star', is %q", k)
	}
	if s := Kind(42).String(); s != "<illegal kind: 42>" {
		t.Errorf("unexpected rendering of illegal kind: %q", s)
	}
}
