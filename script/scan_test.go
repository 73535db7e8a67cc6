package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.script")
	defer teardown()
	//
	toks, err := Scan(`let pets = (alt "cat" "dog") # pets`)
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Type: Ident, Text: "let"},
		{Type: Ident, Text: "pets"},
		{Type: Assign, Text: "="},
		{Type: LParen, Text: "("},
		{Type: Ident, Text: "alt"},
		{Type: String, Text: "cat"},
		{Type: String, Text: "dog"},
		{Type: RParen, Text: ")"},
	}
	if diff := cmp.Diff(want, toks, cmpopts.IgnoreFields(Token{}, "Col")); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
	if toks[1].Col >= toks[2].Col {
		t.Errorf("expected columns to increase, have %d and %d", toks[1].Col, toks[2].Col)
	}
}

func TestScanStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.script")
	defer teardown()
	//
	for i, x := range []struct {
		line string
		text string
	}{
		{`""`, ""},
		{`"a b;c"`, "a b;c"},
		{`"日本語"`, "日本語"},
		{`"#not a comment"`, "#not a comment"},
	} {
		toks, err := Scan(x.line)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if len(toks) != 1 || toks[0].Type != String || toks[0].Text != x.text {
			t.Errorf("test %d: expected single string %q, have %v", i, x.text, toks)
		}
	}
}

func TestScanErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.script")
	defer teardown()
	//
	for _, line := range []string{`show "open`, `show a*`, `match x 'b'`} {
		if _, err := Scan(line); !errors.Is(err, ErrSyntax) {
			t.Errorf("expected syntax error for %q, have %v", line, err)
		}
	}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.script")
	defer teardown()
	//
	stmts, err := Parse(`let x = (star (seq "a" (sym "b"))); match x "abab"; pool`)
	if err != nil {
		t.Fatal(err)
	}
	want := []Statement{
		{Cmd: "let", Name: "x", Term: &Term{Op: "star", Args: []*Term{
			{Op: "seq", Args: []*Term{
				{Op: "lit", Text: "a"},
				{Op: "sym", Text: "b"},
			}},
		}}},
		{Cmd: "match", Term: &Term{Op: "ref", Text: "x"}, Input: "abab"},
		{Cmd: "pool"},
	}
	if diff := cmp.Diff(want, stmts); diff != "" {
		t.Errorf("unexpected statements (-want +got):\n%s", diff)
	}
}

func TestParseTermForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.script")
	defer teardown()
	//
	lit := func(s string) *Term { return &Term{Op: "lit", Text: s} }
	for i, x := range []struct {
		line string
		want *Term
	}{
		{`show "ab"`, lit("ab")},
		{`show (lit "ab")`, lit("ab")},
		{`show (sym "a")`, &Term{Op: "sym", Text: "a"}},
		{`show empty`, &Term{Op: "empty"}},
		{`show eps`, &Term{Op: "eps"}},
		{`show (("ab"))`, lit("ab")},
		{`show (star (sym "a"))`, &Term{Op: "star", Args: []*Term{{Op: "sym", Text: "a"}}}},
		{`show (seq "a" "b")`, &Term{Op: "seq", Args: []*Term{lit("a"), lit("b")}}},
		{`show (alt "a" eps x)`, &Term{Op: "alt", Args: []*Term{lit("a"), {Op: "eps"}, {Op: "ref", Text: "x"}}}},
	} {
		stmts, err := Parse(x.line)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if diff := cmp.Diff(x.want, stmts[0].Term); diff != "" {
			t.Errorf("test %d: unexpected term for %q (-want +got):\n%s", i, x.line, diff)
		}
	}
}

func TestParseBareFormIsRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.script")
	defer teardown()
	//
	_, err := Parse(`show star (sym "a")`)
	if !errors.Is(err, ErrSyntax) || !strings.Contains(err.Error(), "(star ...)") {
		t.Errorf("expected a hint to parenthesize star, have %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derivre.script")
	defer teardown()
	//
	for i, x := range []struct {
		line string
		err  error
	}{
		{`frobnicate x`, ErrSyntax},
		{`match "a"`, ErrSyntax},
		{`show (seq "a"`, ErrSyntax},
		{`show (star "a" "b")`, ErrArity},
		{`show (alt)`, ErrArity},
		{`let star = "a"`, ErrSyntax},
		{`let x "a"`, ErrSyntax},
		{`show "a" "b"`, ErrSyntax},
		{`show (lit x)`, ErrSyntax},
		{`show star (sym "a")`, ErrSyntax},
		{`show lit "ab"`, ErrSyntax},
		{`match seq "a" "b" "ab"`, ErrSyntax},
	} {
		if _, err := Parse(x.line); !errors.Is(err, x.err) {
			t.Errorf("test %d: expected %v for %q, have %v", i, x.err, x.line, err)
		}
	}
}
