package script

import (
	"fmt"
)

// Term is a parsed term. Op is one of "lit", "sym", "star", "seq", "alt",
// "empty", "eps" or "ref" (a bound name, held in Text).
type Term struct {
	Op   string
	Text string
	Args []*Term
}

// Statement is a parsed statement.
type Statement struct {
	Cmd   string // let, match, trace, derive, nullable, show, pool
	Name  string // let only
	Term  *Term
	Input string // match, trace, derive
}

// arity of the constructor forms in parentheses; -1 is "one or more".
var forms = map[string]int{
	"lit":  1,
	"sym":  1,
	"star": 1,
	"seq":  -1,
	"alt":  -1,
}

// Parse parses a line of input into a list of statements.
func Parse(line string) ([]Statement, error) {
	toks, err := Scan(line)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var stmts []Statement
	for p.peek().Type != EOF {
		if p.peek().Type == Semicolon {
			p.next()
			continue
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if t := p.peek(); t.Type != EOF && t.Type != Semicolon {
			return nil, p.errorf(t, "expected end of statement")
		}
	}
	return stmts, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Type: EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) expect(tt TokType) (Token, error) {
	t := p.next()
	if t.Type != tt {
		return t, p.errorf(t, "expected %s", tt)
	}
	return t, nil
}

func (p *parser) errorf(t Token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if t.Type == EOF {
		return fmt.Errorf("%w: %s, found end of input", ErrSyntax, msg)
	}
	return fmt.Errorf("%w: %s at column %d, found %s", ErrSyntax, msg, t.Col, t.Type)
}

func (p *parser) statement() (stmt Statement, err error) {
	t, err := p.expect(Ident)
	if err != nil {
		return stmt, err
	}
	stmt.Cmd = t.Text
	switch t.Text {
	case "let":
		var name Token
		if name, err = p.expect(Ident); err != nil {
			return
		}
		if _, reserved := forms[name.Text]; reserved || isConstant(name.Text) {
			return stmt, p.errorf(name, "cannot bind reserved word %q", name.Text)
		}
		stmt.Name = name.Text
		if _, err = p.expect(Assign); err != nil {
			return
		}
		stmt.Term, err = p.term()
	case "match", "trace", "derive":
		if stmt.Term, err = p.term(); err != nil {
			return
		}
		var in Token
		if in, err = p.expect(String); err != nil {
			return
		}
		stmt.Input = in.Text
	case "nullable", "show":
		stmt.Term, err = p.term()
	case "pool":
	default:
		return stmt, p.errorf(t, "unknown command %q", t.Text)
	}
	return
}

func isConstant(name string) bool {
	return name == "empty" || name == "eps"
}

func (p *parser) term() (*Term, error) {
	t := p.next()
	switch t.Type {
	case String:
		return &Term{Op: "lit", Text: t.Text}, nil
	case Ident:
		if isConstant(t.Text) {
			return &Term{Op: t.Text}, nil
		}
		if _, isForm := forms[t.Text]; isForm {
			return nil, p.errorf(t, "%s has to be parenthesized, as in (%s ...)", t.Text, t.Text)
		}
		return &Term{Op: "ref", Text: t.Text}, nil
	case LParen:
		return p.form()
	}
	return nil, p.errorf(t, "expected term")
}

// form parses the inside of a parenthesized term, after the '('.
func (p *parser) form() (*Term, error) {
	head := p.peek()
	arity, ok := forms[head.Text]
	if head.Type != Ident || !ok { // a parenthesized plain term
		inner, err := p.term()
		if err != nil {
			return nil, err
		}
		_, err = p.expect(RParen)
		return inner, err
	}
	p.next()
	t := &Term{Op: head.Text}
	if head.Text == "lit" || head.Text == "sym" {
		s, err := p.expect(String)
		if err != nil {
			return nil, err
		}
		t.Text = s.Text
		_, err = p.expect(RParen)
		return t, err
	}
	for p.peek().Type != RParen {
		if p.peek().Type == EOF {
			return nil, p.errorf(p.peek(), "expected ')'")
		}
		arg, err := p.term()
		if err != nil {
			return nil, err
		}
		t.Args = append(t.Args, arg)
	}
	p.next()
	if (arity >= 0 && len(t.Args) != arity) || len(t.Args) == 0 {
		return nil, fmt.Errorf("%w: %s at column %d takes %s, has %d",
			ErrArity, head.Text, head.Col, arityString(arity), len(t.Args))
	}
	return t, nil
}

func arityString(arity int) string {
	if arity < 0 {
		return "one or more arguments"
	} else if arity == 1 {
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", arity)
}
