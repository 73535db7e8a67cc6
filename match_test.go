package derivre_test

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/derivre"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMatchScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.core")
	defer teardown()
	//
	p := derivre.NewPool()
	bob := p.Literal("bob")
	astar := p.Star(p.Symbol('a'))
	pets := p.Alternation(p.Literal("cat"), p.Literal("dog"))
	for i, x := range []struct {
		e     *derivre.Expr
		input string
		match bool
	}{
		{bob, "bob", true},
		{bob, "bo", false},
		{bob, "boby", false},
		{bob, "", false},
		{astar, "aaaa", true},
		{astar, "", true},
		{astar, "aab", false},
		{pets, "dog", true},
		{pets, "cat", true},
		{pets, "cats", false},
		{pets, "do", false},
		{p.Star(pets), "catdogcat", true},
		{p.Star(pets), "catdo", false},
		{p.Concat(p.Literal("ab"), astar, p.Literal("c")), "abaaac", true},
		{p.Concat(p.Literal("ab"), astar, p.Literal("c")), "abc", true},
		{p.Concat(p.Literal("ab"), astar, p.Literal("c")), "abab", false},
		{p.Union(), "", false},
		{p.Concat(), "", true},
	} {
		if m := p.Matches(x.e, x.input); m != x.match {
			t.Errorf("test %d: match(%s, %q) = %v, expected %v", i, x.e, x.input, m, x.match)
		}
	}
}

var words = []string{"", "a", "b", "bob", "bo", "boby", "über", "ab", "ba", "aaa", "日本語"}

func TestLiteralRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.core")
	defer teardown()
	//
	p := derivre.NewPool()
	for _, s := range words {
		if !p.Matches(p.Literal(s), s) {
			t.Errorf("expected literal %q to match itself", s)
		}
	}
}

func TestLiteralExactness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.core")
	defer teardown()
	//
	p := derivre.NewPool()
	for _, s := range words {
		for _, w := range words {
			if s != w && p.Matches(p.Literal(s), w) {
				t.Errorf("expected literal %q not to match %q", s, w)
			}
		}
	}
}

func TestEmptyInputIsNullability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.core")
	defer teardown()
	//
	p := derivre.NewPool()
	a := p.Symbol('a')
	for _, e := range []*derivre.Expr{
		p.EmptySet(), p.EmptyString(), a, p.Star(a), p.Literal("xy"),
		p.Sequence(p.Star(a), p.Star(a)), p.Alternation(a, p.EmptyString()),
	} {
		if p.Matches(e, "") != derivre.Nullable(e) {
			t.Errorf("expected match(%s, \"\") to equal nullable", e)
		}
	}
}

func TestLongLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.core")
	defer teardown()
	//
	p := derivre.NewPool()
	s := strings.Repeat("ab", 50000)
	e := p.Literal(s)
	if got := p.Stats().Sequences; got != len(s) {
		t.Fatalf("expected %d sequence nodes, have %d", len(s), got)
	}
	if p.Matches(e, "b"+s[1:]) {
		t.Error("expected long literal not to match input differing in first rune")
	}
	// terms are not simplified, so a matching run grows the term by one
	// alternation per step; keep this one short
	s = s[:2000]
	if !p.Matches(p.Literal(s), s) {
		t.Error("expected literal to match itself")
	}
	if p.Matches(p.Literal(s), s[:len(s)-1]) {
		t.Error("expected literal not to match its prefix")
	}
}

func TestTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.core")
	defer teardown()
	//
	p := derivre.NewPool()
	steps, ok := p.Trace(p.Literal("bob"), "bob")
	if !ok {
		t.Error("expected trace of bob/bob to match")
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 derivative steps, have %d", len(steps))
	}
	if want := p.Sequence(p.EmptyString(), p.Literal("ob")); steps[0].Expr != want {
		t.Errorf("expected first step to be %s, is %s", want, steps[0].Expr)
	}
	for i, s := range steps {
		if s.Index != i || s.Symbol != rune("bob"[i]) {
			t.Errorf("step %d out of order: %+v", i, s)
		}
	}
	if !derivre.Nullable(steps[2].Expr) {
		t.Error("expected last step to be nullable")
	}
}

func TestTraceStopsAtEmptySet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.core")
	defer teardown()
	//
	p := derivre.NewPool()
	steps, ok := p.Trace(p.Symbol('a'), "bab")
	if ok {
		t.Error("expected 'a' not to match \"bab\"")
	}
	if len(steps) != 1 || steps[0].Expr != p.EmptySet() {
		t.Errorf("expected trace to stop after collapsing to ∅, have %d steps", len(steps))
	}
}

// countingTrace counts debug messages, whatever its level.
type countingTrace struct {
	level  tracing.TraceLevel
	debugs int
}

func (ct *countingTrace) Errorf(string, ...interface{})       {}
func (ct *countingTrace) Infof(string, ...interface{})        {}
func (ct *countingTrace) Debugf(string, ...interface{})       { ct.debugs++ }
func (ct *countingTrace) P(string, interface{}) tracing.Trace { return ct }
func (ct *countingTrace) SetTraceLevel(l tracing.TraceLevel)  { ct.level = l }
func (ct *countingTrace) GetTraceLevel() tracing.TraceLevel   { return ct.level }
func (ct *countingTrace) SetOutput(io.Writer)                 {}
func (ct *countingTrace) Select(string) tracing.Trace         { return ct }

func TestTraceRendersOnlyWhenDebugging(t *testing.T) {
	ct := &countingTrace{level: tracing.LevelInfo}
	tracing.SetTraceSelector(ct)
	defer tracing.SetTraceSelector(nil)
	//
	p := derivre.NewPool()
	if steps, ok := p.Trace(p.Literal("bob"), "bob"); !ok || len(steps) != 3 {
		t.Fatalf("expected 3 steps and a match, have %d steps, match %v", len(steps), ok)
	}
	if ct.debugs != 0 {
		t.Errorf("expected no debug output at level info, have %d messages", ct.debugs)
	}
	ct.SetTraceLevel(tracing.LevelDebug)
	p.Trace(p.Literal("bob"), "bob")
	if ct.debugs != 5 {
		t.Errorf("expected 5 debug messages at level debug, have %d", ct.debugs)
	}
}
